package jobject

// Func is the native implementation a Function invokes.
type Func func(args []Value) Value

// Function wraps an invocable closure and a display name.
//
// Built-in members: "call" (invokes the closure), "name" and "length"
// (always 0; arity is not tracked for native closures).
type Function struct {
	Object
	name string
	fn   Func
}

// NewFunction creates a Function with the given display name and
// implementation. fn may be nil, in which case calls yield absent.
func NewFunction(name string, fn Func) *Function {
	f := &Function{name: name, fn: fn}
	f.init(f)
	return f
}

// Kind returns KindFunction.
func (f *Function) Kind() Kind { return KindFunction }

// String renders the native-function template with the display name.
func (f *Function) String() string {
	return "function " + f.name + "() { [native code] }"
}

// Name returns the display name.
func (f *Function) Name() string { return f.name }

// SetName replaces the display name.
func (f *Function) SetName(name string) { f.name = name }

// Call invokes the underlying closure. A nil closure yields absent.
func (f *Function) Call(args ...Value) Value {
	if f.fn == nil {
		return Absent()
	}
	return f.fn(args)
}

func (f *Function) getBuiltin(name string) (Value, bool) {
	switch name {
	case "call":
		return FromHolder(NewFunction("call", func(args []Value) Value {
			return f.Call(args...)
		})), true
	case "name":
		return FromHolder(NewString(f.name)), true
	case "length":
		return FromUint32(0), true
	}
	return Value{}, false
}
