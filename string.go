package jobject

import "strings"

// String wraps a text payload with a property table.
//
// Built-in members: "concat", "indexOf", "lastIndexOf" and "length".
// Offsets reported by indexOf/lastIndexOf and the length count are
// byte-based.
type String struct {
	Object
	text string
}

// NewString creates a String holding text.
func NewString(text string) *String {
	s := &String{text: text}
	s.init(s)
	return s
}

// Kind returns KindString.
func (s *String) Kind() Kind { return KindString }

// String returns the raw text; a String renders as itself.
func (s *String) String() string { return s.text }

// Text returns the text payload.
func (s *String) Text() string { return s.text }

// SetText replaces the text payload.
func (s *String) SetText(text string) { s.text = text }

// Len returns the payload length in bytes.
func (s *String) Len() int { return len(s.text) }

// Empty reports whether the payload is empty.
func (s *String) Empty() bool { return len(s.text) == 0 }

// Clear resets the payload to the empty string.
func (s *String) Clear() { s.text = "" }

// At returns the byte at index i, or 0 if out of range.
func (s *String) At(i int) byte {
	if i < 0 || i >= len(s.text) {
		return 0
	}
	return s.text[i]
}

// Front returns the first byte, or 0 if empty.
func (s *String) Front() byte {
	if len(s.text) == 0 {
		return 0
	}
	return s.text[0]
}

// Back returns the last byte, or 0 if empty.
func (s *String) Back() byte {
	if len(s.text) == 0 {
		return 0
	}
	return s.text[len(s.text)-1]
}

func (s *String) getBuiltin(name string) (Value, bool) {
	switch name {
	case "length":
		return FromUint32(uint32(len(s.text))), true
	case "concat":
		return FromHolder(NewFunction("concat", func(args []Value) Value {
			out := s.text
			for _, arg := range args {
				out += ToString(arg)
			}
			return FromHolder(NewString(out))
		})), true
	case "indexOf":
		return FromHolder(NewFunction("indexOf", func(args []Value) Value {
			if len(args) == 0 {
				return FromInt32(-1)
			}
			return FromInt32(int32(strings.Index(s.text, ToString(args[0]))))
		})), true
	case "lastIndexOf":
		return FromHolder(NewFunction("lastIndexOf", func(args []Value) Value {
			if len(args) == 0 {
				return FromInt32(-1)
			}
			return FromInt32(int32(strings.LastIndex(s.text, ToString(args[0]))))
		})), true
	}
	return Value{}, false
}
