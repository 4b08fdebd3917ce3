package jobject

import (
	"reflect"
	"strconv"
)

// Kind identifies which member of the Value union is active.
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindInt32
	KindUint32
	KindUint64
	KindDouble
	KindString
	KindArray
	KindObject
	KindFunction
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the kinds the object model supports:
// the absent value, booleans, three integer widths, doubles, and
// handles to String, Array, Object, Function and Date.
//
// The zero Value is the absent value. Handle kinds share the referenced
// payload: copying a Value copies the handle, not the object behind it.
type Value struct {
	data any
}

// Absent returns the absent value.
//
// Absent is what unknown names resolve to and what out-of-range reads
// degrade to. It is distinct from a missing property only through Has.
func Absent() Value {
	return Value{}
}

// FromBool creates a boolean Value.
func FromBool(v bool) Value {
	return Value{data: v}
}

// FromInt32 creates a signed 32-bit integer Value.
func FromInt32(v int32) Value {
	return Value{data: v}
}

// FromUint32 creates an unsigned 32-bit integer Value.
func FromUint32(v uint32) Value {
	return Value{data: v}
}

// FromUint64 creates an unsigned 64-bit integer Value.
func FromUint64(v uint64) Value {
	return Value{data: v}
}

// FromFloat creates a double Value.
func FromFloat(v float64) Value {
	return Value{data: v}
}

// FromHolder creates a handle Value referencing h.
// A nil holder, typed or untyped, yields the absent value.
func FromHolder(h Holder) Value {
	if h == nil {
		return Value{}
	}
	if rv := reflect.ValueOf(h); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return Value{}
	}
	return Value{data: h}
}

// Kind returns the active kind of the value.
func (v Value) Kind() Kind {
	switch v.data.(type) {
	case nil:
		return KindAbsent
	case bool:
		return KindBool
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float64:
		return KindDouble
	case *String:
		return KindString
	case *Array:
		return KindArray
	case *Object:
		return KindObject
	case *Function:
		return KindFunction
	case *Date:
		return KindDate
	default:
		return KindAbsent
	}
}

// IsAbsent returns true if this is the absent value.
func (v Value) IsAbsent() bool {
	return v.data == nil
}

// AsBool returns the boolean if the value is one.
// For truthiness coercion use ToBool instead.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// AsInt32 returns the int32 if the value is one.
func (v Value) AsInt32() (int32, bool) {
	n, ok := v.data.(int32)
	return n, ok
}

// AsUint32 returns the uint32 if the value is one.
func (v Value) AsUint32() (uint32, bool) {
	n, ok := v.data.(uint32)
	return n, ok
}

// AsUint64 returns the uint64 if the value is one.
func (v Value) AsUint64() (uint64, bool) {
	n, ok := v.data.(uint64)
	return n, ok
}

// AsFloat returns the float64 if the value is one.
// For numeric coercion across kinds use ToNumber instead.
func (v Value) AsFloat() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok
}

// AsString returns the String handle if the value holds one.
func (v Value) AsString() (*String, bool) {
	s, ok := v.data.(*String)
	return s, ok
}

// AsArray returns the Array handle if the value holds one.
func (v Value) AsArray() (*Array, bool) {
	a, ok := v.data.(*Array)
	return a, ok
}

// AsObject returns the plain Object handle if the value holds one.
// Variant kinds (String, Array, ...) are not plain objects; use
// AsHolder to accept any handle kind.
func (v Value) AsObject() (*Object, bool) {
	o, ok := v.data.(*Object)
	return o, ok
}

// AsFunction returns the Function handle if the value holds one.
func (v Value) AsFunction() (*Function, bool) {
	f, ok := v.data.(*Function)
	return f, ok
}

// AsDate returns the Date handle if the value holds one.
func (v Value) AsDate() (*Date, bool) {
	d, ok := v.data.(*Date)
	return d, ok
}

// AsHolder returns the property holder if the value is any handle kind.
func (v Value) AsHolder() (Holder, bool) {
	h, ok := v.data.(Holder)
	return h, ok
}

// String returns the rendered form of the value (same as ToString).
func (v Value) String() string {
	return ToString(v)
}

// formatFloat renders a double without trailing zero noise.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
