package jobject

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// ToString renders a value using its kind's display rule: absent
// renders as "null", booleans as "true"/"false", numbers in decimal,
// and handle kinds through their own String method.
func ToString(v Value) string {
	switch d := v.data.(type) {
	case nil:
		return "null"
	case bool:
		if d {
			return "true"
		}
		return "false"
	case int32:
		return strconv.FormatInt(int64(d), 10)
	case uint32:
		return strconv.FormatUint(uint64(d), 10)
	case uint64:
		return strconv.FormatUint(d, 10)
	case float64:
		return formatFloat(d)
	case Holder:
		return d.String()
	}
	return "undefined"
}

// ToNumber coerces a value to float64: absent is 0, booleans are 0/1,
// numbers convert directly, everything else is NaN.
func ToNumber(v Value) float64 {
	switch d := v.data.(type) {
	case nil:
		return 0
	case bool:
		if d {
			return 1
		}
		return 0
	case int32:
		return float64(d)
	case uint32:
		return float64(d)
	case uint64:
		return float64(d)
	case float64:
		return d
	}
	return math.NaN()
}

// ToBool coerces a value to a truth value: absent is false, numbers
// are true when non-zero (NaN is false), a String handle is true when
// non-empty, every other handle is true.
func ToBool(v Value) bool {
	switch d := v.data.(type) {
	case nil:
		return false
	case bool:
		return d
	case int32:
		return d != 0
	case uint32:
		return d != 0
	case uint64:
		return d != 0
	case float64:
		return d != 0 && !math.IsNaN(d)
	case *String:
		return !d.Empty()
	}
	return true
}

// IsNumber reports whether the value holds one of the numeric kinds.
func IsNumber(v Value) bool {
	switch v.data.(type) {
	case int32, uint32, uint64, float64:
		return true
	}
	return false
}

// From converts an arbitrary Go value to a Value:
//
//   - nil -> absent
//   - bool -> bool
//   - signed integers -> int32 (double when out of int32 range)
//   - uint8/16/32 -> uint32; uint/uint64 -> uint64
//   - floats -> double
//   - string -> a new String handle
//   - time.Time -> a new Date handle
//   - Func / func([]Value) Value -> a new anonymous Function handle
//   - slices and arrays -> a new Array handle (recursively)
//   - maps -> a new Object handle (keys stringified, recursively)
//   - Value and Holder pass through
//
// Anything else falls back to its fmt rendering as a String handle.
func From(v any) Value {
	switch val := v.(type) {
	case nil:
		return Absent()
	case Value:
		return val
	case Holder:
		return FromHolder(val)
	case bool:
		return FromBool(val)
	case int:
		return fromSigned(int64(val))
	case int8:
		return FromInt32(int32(val))
	case int16:
		return FromInt32(int32(val))
	case int32:
		return FromInt32(val)
	case int64:
		return fromSigned(val)
	case uint8:
		return FromUint32(uint32(val))
	case uint16:
		return FromUint32(uint32(val))
	case uint32:
		return FromUint32(val)
	case uint:
		return FromUint64(uint64(val))
	case uint64:
		return FromUint64(val)
	case float32:
		return FromFloat(float64(val))
	case float64:
		return FromFloat(val)
	case string:
		return FromHolder(NewString(val))
	case time.Time:
		return FromHolder(NewDateFromTime(val))
	case Func:
		return FromHolder(NewFunction("", val))
	case func(args []Value) Value:
		return FromHolder(NewFunction("", val))
	case []Value:
		return FromHolder(NewArrayOf(val...))
	case map[string]Value:
		o := NewObject()
		for _, k := range sortedKeys(val) {
			o.Set(k, val[k])
		}
		return FromHolder(o)
	}
	return fromReflect(reflect.ValueOf(v))
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fromSigned(n int64) Value {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return FromInt32(int32(n))
	}
	return FromFloat(float64(n))
}

func fromReflect(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Absent()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[i] = From(rv.Index(i).Interface())
		}
		return FromHolder(NewArrayOf(elems...))
	case reflect.Map:
		// Map iteration order is random; sort keys so the resulting
		// property order is deterministic.
		entries := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			var name string
			if key.Kind() == reflect.String {
				name = key.String()
			} else {
				name = fmt.Sprintf("%v", key.Interface())
			}
			entries[name] = From(iter.Value().Interface())
		}
		o := NewObject()
		for _, k := range sortedKeys(entries) {
			o.Set(k, entries[k])
		}
		return FromHolder(o)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Absent()
		}
		return From(rv.Elem().Interface())
	default:
		return FromHolder(NewString(fmt.Sprintf("%v", rv.Interface())))
	}
}
