package jobject

// Holder is implemented by every kind that carries a property table:
// Object, String, Array, Function and Date.
type Holder interface {
	// Kind returns the kind of the holder (KindObject, KindString, ...).
	Kind() Kind

	// Get resolves a property by name. Unknown names yield the absent
	// value; no operation raises.
	Get(name string) Value

	// Set writes a property by name and reports success. A write to a
	// non-writable stored property is silently rejected with false.
	Set(name string, value Value) bool

	// Has reports whether a stored descriptor exists for name.
	// Built-in members never occupy a stored slot, so Has is false for
	// them until something writes or defines the name.
	Has(name string) bool

	// Define inserts or replaces the descriptor for name. It always
	// succeeds, even over a non-configurable descriptor.
	Define(name string, desc PropertyDescriptor) bool

	// Delete removes the stored descriptor for name if it exists and is
	// configurable; otherwise it reports false and changes nothing.
	Delete(name string) bool

	// Names returns the enumerable stored property names in insertion
	// order. Redefining an existing name keeps its position.
	Names() []string

	// String returns the holder's rendered form.
	String() string
}

// kindBehavior is the hook a variant kind registers with its embedded
// Object so that table misses dispatch to kind-specific built-ins.
// Object itself provides the plain-object defaults.
type kindBehavior interface {
	Kind() Kind
	String() string

	// getBuiltin synthesizes the built-in member for name, if the kind
	// recognizes it. Called only on a stored-table miss; the result is
	// built fresh each time and closes over the live object.
	getBuiltin(name string) (Value, bool)

	// setBuiltin lets a kind claim a write to a data-backed built-in
	// name (Array length and element indexes). Unclaimed writes fall
	// through to implicit descriptor creation, shadowing the built-in.
	setBuiltin(name string, value Value) bool
}

// Object is the base of every kind: a name-to-descriptor table with
// the shared resolution rules. Plain objects have no built-in members
// beyond the universal "toString".
type Object struct {
	props map[string]PropertyDescriptor
	order []string
	self  kindBehavior

	// Data is an arbitrary caller-owned context attached to the object.
	// The engine never touches it.
	Data any
}

// NewObject creates an empty plain object.
func NewObject() *Object {
	o := &Object{}
	o.init(o)
	return o
}

// init wires the property table and the kind dispatch hook. Variant
// kinds pass themselves so misses reach their builtin resolvers.
func (o *Object) init(self kindBehavior) {
	o.props = make(map[string]PropertyDescriptor)
	o.self = self
}

// Get resolves name: stored descriptor first (getter wins over stored
// value), then the kind's synthesized built-ins, then the universal
// "toString", and finally the absent value.
func (o *Object) Get(name string) Value {
	if d, ok := o.props[name]; ok {
		if d.Getter != nil {
			return d.Getter()
		}
		return d.Value
	}
	if v, ok := o.self.getBuiltin(name); ok {
		return v
	}
	if name == "toString" {
		self := o.self
		return FromHolder(NewFunction("toString", func([]Value) Value {
			return FromHolder(NewString(self.String()))
		}))
	}
	return Absent()
}

// Set writes name and reports success. A stored setter is invoked
// unconditionally; a stored value is overwritten only if writable.
// Without a stored descriptor the kind may claim the write (Array
// length and indexes); otherwise a fresh descriptor with default flags
// (writable, enumerable, configurable) is created.
func (o *Object) Set(name string, value Value) bool {
	if d, ok := o.props[name]; ok {
		if d.Setter != nil {
			d.Setter(value)
			return true
		}
		if d.Writable {
			d.Value = value
			o.props[name] = d
			return true
		}
		return false
	}
	if o.self.setBuiltin(name, value) {
		return true
	}
	o.Define(name, PropertyDescriptor{
		Value:        value,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})
	return true
}

// Has reports whether a stored descriptor exists for name.
func (o *Object) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Define upserts the descriptor for name. Always succeeds; explicit
// definition is wider than deletion and ignores Configurable.
func (o *Object) Define(name string, desc PropertyDescriptor) bool {
	if _, ok := o.props[name]; !ok {
		o.order = append(o.order, name)
	}
	o.props[name] = desc
	return true
}

// Delete removes the stored descriptor for name. Fails silently if no
// descriptor exists (built-ins never occupy a slot) or if the
// descriptor is not configurable.
func (o *Object) Delete(name string) bool {
	d, ok := o.props[name]
	if !ok || !d.Configurable {
		return false
	}
	delete(o.props, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the enumerable stored property names in insertion
// order.
func (o *Object) Names() []string {
	names := make([]string, 0, len(o.order))
	for _, n := range o.order {
		if o.props[n].Enumerable {
			names = append(names, n)
		}
	}
	return names
}

// Kind returns KindObject.
func (o *Object) Kind() Kind { return KindObject }

// String returns the plain-object placeholder rendering.
func (o *Object) String() string { return "[object Object]" }

func (o *Object) getBuiltin(string) (Value, bool) { return Value{}, false }

func (o *Object) setBuiltin(string, Value) bool { return false }
