package jobject

import (
	"math"
	"strconv"
	"strings"
)

// Array wraps an ordered sequence of Values with a property table.
//
// Built-in members: the mutators "push", "pop", "shift", "unshift",
// "slice", "splice", the live "length" property, and every canonical
// non-negative decimal index ("0", "1", ...) as an element accessor.
// Writes to "length" and to index names go through to the sequence;
// no Array operation raises, out-of-range access degrades to absent
// results or no-ops.
type Array struct {
	Object
	elems []Value
}

// NewArray creates an Array of size elements, each absent.
func NewArray(size int) *Array {
	if size < 0 {
		size = 0
	}
	a := &Array{elems: make([]Value, size)}
	a.init(a)
	return a
}

// NewArrayOf creates an Array holding the given elements.
func NewArrayOf(elems ...Value) *Array {
	a := &Array{elems: append([]Value(nil), elems...)}
	a.init(a)
	return a
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// String renders the comma-joined element renderings.
func (a *Array) String() string {
	parts := make([]string, len(a.elems))
	for i, e := range a.elems {
		parts[i] = ToString(e)
	}
	return strings.Join(parts, ",")
}

// Len returns the element count.
func (a *Array) Len() int { return len(a.elems) }

// Empty reports whether the array has no elements.
func (a *Array) Empty() bool { return len(a.elems) == 0 }

// Clear removes all elements.
func (a *Array) Clear() { a.elems = nil }

// At returns the element at index i, or absent if out of range.
func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.elems) {
		return Absent()
	}
	return a.elems[i]
}

// Front returns the first element, or absent if empty.
func (a *Array) Front() Value {
	if len(a.elems) == 0 {
		return Absent()
	}
	return a.elems[0]
}

// Back returns the last element, or absent if empty.
func (a *Array) Back() Value {
	if len(a.elems) == 0 {
		return Absent()
	}
	return a.elems[len(a.elems)-1]
}

// Values returns a copy of the element sequence.
func (a *Array) Values() []Value {
	return append([]Value(nil), a.elems...)
}

// SetElem writes the element at index i, absent-filling any gap when
// i is at or beyond the current length. Negative indexes are no-ops.
func (a *Array) SetElem(i int, v Value) {
	if i < 0 {
		return
	}
	for len(a.elems) <= i {
		a.elems = append(a.elems, Absent())
	}
	a.elems[i] = v
}

// Resize truncates or absent-extends the sequence to n elements.
func (a *Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	for len(a.elems) < n {
		a.elems = append(a.elems, Absent())
	}
	a.elems = a.elems[:n]
}

// Push appends the given values and returns the new length.
func (a *Array) Push(vals ...Value) int {
	a.elems = append(a.elems, vals...)
	return len(a.elems)
}

// Pop removes and returns the last element, or absent if empty.
func (a *Array) Pop() Value {
	if len(a.elems) == 0 {
		return Absent()
	}
	v := a.elems[len(a.elems)-1]
	a.elems = a.elems[:len(a.elems)-1]
	return v
}

// Shift removes and returns the first element, or absent if empty.
func (a *Array) Shift() Value {
	if len(a.elems) == 0 {
		return Absent()
	}
	v := a.elems[0]
	a.elems = append(a.elems[:0], a.elems[1:]...)
	return v
}

// Unshift inserts the given values at the front, preserving their
// order, and returns the new length.
func (a *Array) Unshift(vals ...Value) int {
	a.elems = append(append([]Value(nil), vals...), a.elems...)
	return len(a.elems)
}

// Slice returns a new Array holding elements [start, end). Negative
// bounds count from the end (max(0, length+bound)); bounds are clamped
// to the current length. start >= end yields an empty Array.
func (a *Array) Slice(start, end int) *Array {
	n := len(a.elems)
	start = normIndex(start, n)
	end = normIndex(end, n)
	if start >= end {
		return NewArray(0)
	}
	out := make([]Value, end-start)
	copy(out, a.elems[start:end])
	return NewArrayOf(out...)
}

// Splice removes deleteCount elements at start (same negative-index
// normalization as Slice, deleteCount clamped to what remains), then
// inserts the given values at that position. It returns a new Array
// holding exactly the removed elements.
func (a *Array) Splice(start, deleteCount int, insertions ...Value) *Array {
	n := len(a.elems)
	start = normIndex(start, n)
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}
	removed := make([]Value, deleteCount)
	copy(removed, a.elems[start:start+deleteCount])

	out := make([]Value, 0, n-deleteCount+len(insertions))
	out = append(out, a.elems[:start]...)
	out = append(out, insertions...)
	out = append(out, a.elems[start+deleteCount:]...)
	a.elems = out
	return NewArrayOf(removed...)
}

// normIndex maps a possibly negative index into [0, n].
func normIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// indexName reports whether name is a canonical non-negative decimal
// index ("0", "12"; never "+1", "01" or "007").
func indexName(name string) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || strconv.Itoa(i) != name {
		return 0, false
	}
	return i, true
}

// intArg reads the i-th call argument as an int, falling back to def
// when missing or non-numeric. Doubles truncate toward zero.
func intArg(args []Value, i, def int) int {
	if i >= len(args) || !IsNumber(args[i]) {
		return def
	}
	return int(ToNumber(args[i]))
}

func (a *Array) getBuiltin(name string) (Value, bool) {
	switch name {
	case "length":
		return FromUint32(uint32(len(a.elems))), true
	case "push":
		return FromHolder(NewFunction("push", func(args []Value) Value {
			return FromUint32(uint32(a.Push(args...)))
		})), true
	case "pop":
		return FromHolder(NewFunction("pop", func([]Value) Value {
			return a.Pop()
		})), true
	case "shift":
		return FromHolder(NewFunction("shift", func([]Value) Value {
			return a.Shift()
		})), true
	case "unshift":
		return FromHolder(NewFunction("unshift", func(args []Value) Value {
			return FromUint32(uint32(a.Unshift(args...)))
		})), true
	case "slice":
		return FromHolder(NewFunction("slice", func(args []Value) Value {
			start := intArg(args, 0, 0)
			end := intArg(args, 1, len(a.elems))
			return FromHolder(a.Slice(start, end))
		})), true
	case "splice":
		return FromHolder(NewFunction("splice", func(args []Value) Value {
			if len(args) == 0 {
				return FromHolder(NewArray(0))
			}
			start := intArg(args, 0, 0)
			deleteCount := intArg(args, 1, len(a.elems))
			var insertions []Value
			if len(args) > 2 {
				insertions = args[2:]
			}
			return FromHolder(a.Splice(start, deleteCount, insertions...))
		})), true
	}
	if i, ok := indexName(name); ok {
		return a.At(i), true
	}
	return Value{}, false
}

// setBuiltin claims writes to the data-backed names: "length" resizes
// the sequence when given a whole number in uint32 range (anything
// else is claimed but ignored), index names write the element with
// gap fill.
func (a *Array) setBuiltin(name string, value Value) bool {
	if name == "length" {
		if n := ToNumber(value); n >= 0 && n <= math.MaxUint32 && n == math.Trunc(n) {
			a.Resize(int(n))
		}
		return true
	}
	if i, ok := indexName(name); ok {
		a.SetElem(i, value)
		return true
	}
	return false
}
