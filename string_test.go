package jobject_test

import (
	"testing"

	"github.com/jobject-lang/jobject"
)

func TestStringConcat(t *testing.T) {
	s := jobject.NewString("Hello")

	res := callMethod(t, s, "concat", jobject.From(" World"))
	out, ok := res.AsString()
	if !ok || out.Text() != "Hello World" {
		t.Errorf("expected 'Hello World', got %v", res)
	}
	if s.Text() != "Hello" {
		t.Error("concat must not mutate the receiver")
	}

	// Non-string arguments are rendered first.
	res = callMethod(t, s, "concat", jobject.From(" "), jobject.From(42))
	if jobject.ToString(res) != "Hello 42" {
		t.Errorf("got %q", jobject.ToString(res))
	}
}

func TestStringIndexOf(t *testing.T) {
	s := jobject.NewString("Hello World")

	tests := []struct {
		method string
		needle string
		want   int32
	}{
		{"indexOf", "World", 6},
		{"indexOf", "o", 4},
		{"indexOf", "zzz", -1},
		{"lastIndexOf", "o", 7},
		{"lastIndexOf", "Hello", 0},
		{"lastIndexOf", "zzz", -1},
	}
	for _, tt := range tests {
		res := callMethod(t, s, tt.method, jobject.From(tt.needle))
		if n, _ := res.AsInt32(); n != tt.want {
			t.Errorf("%s(%q): expected %d, got %v", tt.method, tt.needle, tt.want, res)
		}
	}

	// Missing argument degrades to -1, not an error.
	if n, _ := callMethod(t, s, "indexOf").AsInt32(); n != -1 {
		t.Error("indexOf without arguments yields -1")
	}
}

func TestStringLength(t *testing.T) {
	s := jobject.NewString("hello")
	if n, _ := s.Get("length").AsUint32(); n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
	s.SetText("hi")
	if n, _ := s.Get("length").AsUint32(); n != 2 {
		t.Error("length tracks the live payload")
	}
}

func TestStringRendersRaw(t *testing.T) {
	s := jobject.NewString("raw text")
	if s.String() != "raw text" {
		t.Errorf("got %q", s.String())
	}

	fn, _ := s.Get("toString").AsFunction()
	if jobject.ToString(fn.Call()) != "raw text" {
		t.Error("toString should render the raw text")
	}
}

func TestStringHelpers(t *testing.T) {
	s := jobject.NewString("abc")

	if s.Len() != 3 || s.Empty() {
		t.Error("Len/Empty disagree with payload")
	}
	if s.At(0) != 'a' || s.At(2) != 'c' || s.At(5) != 0 {
		t.Error("At should return the byte or 0 out of range")
	}
	if s.Front() != 'a' || s.Back() != 'c' {
		t.Error("Front/Back mismatch")
	}

	s.Clear()
	if !s.Empty() || s.Front() != 0 || s.Back() != 0 {
		t.Error("Clear should reset the payload")
	}
}

func TestStringOwnProperties(t *testing.T) {
	s := jobject.NewString("x")
	s.Set("note", jobject.From("annotated"))

	if jobject.ToString(s.Get("note")) != "annotated" {
		t.Error("strings carry ordinary properties too")
	}
	names := s.Names()
	if len(names) != 1 || names[0] != "note" {
		t.Errorf("built-ins are not enumerable, got %v", names)
	}
}
