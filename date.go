package jobject

import "time"

// Date wraps a calendar instant with a property table.
//
// Built-in members: "getTime" (milliseconds since the Unix epoch as a
// uint64) and "setTime" (replaces the instant from milliseconds and
// returns the new timestamp).
type Date struct {
	Object
	t time.Time
}

// NewDate creates a Date holding the current instant.
func NewDate() *Date {
	return NewDateFromTime(time.Now())
}

// NewDateFromTime creates a Date holding t.
func NewDateFromTime(t time.Time) *Date {
	d := &Date{t: t}
	d.init(d)
	return d
}

// NewDateFromMillis creates a Date from milliseconds since the Unix
// epoch.
func NewDateFromMillis(ms int64) *Date {
	return NewDateFromTime(time.UnixMilli(ms))
}

// Kind returns KindDate.
func (d *Date) Kind() Kind { return KindDate }

// String renders the instant in local time as "2006-01-02 15:04:05".
func (d *Date) String() string {
	return d.t.Format("2006-01-02 15:04:05")
}

// Time returns the instant.
func (d *Date) Time() time.Time { return d.t }

// Millis returns milliseconds since the Unix epoch.
func (d *Date) Millis() int64 { return d.t.UnixMilli() }

// SetMillis replaces the instant from milliseconds since the Unix
// epoch. Millisecond precision is kept.
func (d *Date) SetMillis(ms int64) { d.t = time.UnixMilli(ms) }

func (d *Date) getBuiltin(name string) (Value, bool) {
	switch name {
	case "getTime":
		return FromHolder(NewFunction("getTime", func([]Value) Value {
			return FromUint64(uint64(d.Millis()))
		})), true
	case "setTime":
		return FromHolder(NewFunction("setTime", func(args []Value) Value {
			if len(args) > 0 && IsNumber(args[0]) {
				d.SetMillis(int64(ToNumber(args[0])))
			}
			return FromUint64(uint64(d.Millis()))
		})), true
	}
	return Value{}, false
}
