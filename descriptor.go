package jobject

// PropertyDescriptor is the unit of per-name configuration.
//
// A descriptor either stores a value directly or delegates to an
// accessor pair. If Getter or Setter is set, the accessor wins
// unconditionally on read/write and the stored Value is ignored; the
// two modes are mutually exclusive in effect, not by construction.
//
// The zero descriptor stores the absent value with all flags false.
type PropertyDescriptor struct {
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
	Getter       func() Value
	Setter       func(Value)
}

// DefineAccessor defines a read-write accessor property with all
// flags set. Either accessor may be nil: a nil Setter makes writes
// fall back to the Writable flag, a nil Getter makes reads return the
// stored (absent) value.
func DefineAccessor(h Holder, name string, get func() Value, set func(Value)) {
	h.Define(name, PropertyDescriptor{
		Getter:       get,
		Setter:       set,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})
}

// DefineReadOnly defines a getter-only property. Writes are rejected,
// enumeration and reconfiguration stay allowed.
func DefineReadOnly(h Holder, name string, get func() Value) {
	h.Define(name, PropertyDescriptor{
		Getter:       get,
		Enumerable:   true,
		Configurable: true,
	})
}

// DefineProperty defines an accessor property with explicit flags.
func DefineProperty(h Holder, name string, get func() Value, set func(Value), writable, enumerable, configurable bool) {
	h.Define(name, PropertyDescriptor{
		Getter:       get,
		Setter:       set,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	})
}

// DefineValue defines a plain value property with explicit flags.
func DefineValue(h Holder, name string, value Value, writable, enumerable, configurable bool) {
	h.Define(name, PropertyDescriptor{
		Value:        value,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	})
}
