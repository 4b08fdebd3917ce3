package jobject_test

import (
	"testing"
	"time"

	"github.com/jobject-lang/jobject"
)

func TestDateGetTime(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	d := jobject.NewDateFromTime(instant)

	res := callMethod(t, d, "getTime")
	ms, ok := res.AsUint64()
	if !ok || int64(ms) != instant.UnixMilli() {
		t.Errorf("expected %d, got %v", instant.UnixMilli(), res)
	}
}

func TestDateSetTime(t *testing.T) {
	d := jobject.NewDateFromMillis(0)

	res := callMethod(t, d, "setTime", jobject.FromUint64(1705314600123))
	if ms, _ := res.AsUint64(); ms != 1705314600123 {
		t.Errorf("setTime should return the new timestamp, got %v", res)
	}
	if d.Millis() != 1705314600123 {
		t.Error("millisecond precision must survive the round trip")
	}

	// Non-numeric argument is ignored; the current time is returned.
	res = callMethod(t, d, "setTime", jobject.From("later"))
	if ms, _ := res.AsUint64(); ms != 1705314600123 {
		t.Error("a non-numeric setTime is a no-op")
	}
}

func TestDateMillisRoundTrip(t *testing.T) {
	d := jobject.NewDateFromMillis(1705314600123)
	if d.Millis() != 1705314600123 {
		t.Errorf("got %d", d.Millis())
	}
	d.SetMillis(42)
	if d.Millis() != 42 {
		t.Errorf("got %d", d.Millis())
	}
}

func TestDateRender(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	d := jobject.NewDateFromTime(instant)

	if d.String() != "2024-01-15 10:30:00" {
		t.Errorf("got %q", d.String())
	}
	fn, _ := d.Get("toString").AsFunction()
	if jobject.ToString(fn.Call()) != "2024-01-15 10:30:00" {
		t.Error("toString should use the date format")
	}
}

func TestDateOwnProperties(t *testing.T) {
	d := jobject.NewDate()
	d.Set("label", jobject.From("deadline"))

	if jobject.ToString(d.Get("label")) != "deadline" {
		t.Error("dates carry ordinary properties too")
	}
	if d.Has("getTime") {
		t.Error("built-ins never occupy a stored slot")
	}
}
