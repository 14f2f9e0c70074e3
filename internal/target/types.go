package target

// refKind discriminates the resolved-reference union.
type refKind int

const (
	refNone refKind = iota
	refFunction
	refURI
)

// Reference is the resolved target control primitive for one binding:
// a symbolic function name, an addressable parameter URI, or nothing.
// The zero value is the "none" reference.
type Reference struct {
	kind  refKind
	value string
}

// FunctionRef returns a reference to a named target-runtime action.
func FunctionRef(name string) Reference {
	return Reference{kind: refFunction, value: name}
}

// URIRef returns a reference to an addressable parameter path.
func URIRef(path string) Reference {
	return Reference{kind: refURI, value: path}
}

// NoRef returns the empty reference. A binding carrying it is a deliberate
// no-op, not an error.
func NoRef() Reference {
	return Reference{}
}

// Function returns the symbolic function name, if this is a function reference.
func (r Reference) Function() (string, bool) {
	return r.value, r.kind == refFunction
}

// URI returns the parameter path, if this is a URI reference.
func (r Reference) URI() (string, bool) {
	return r.value, r.kind == refURI
}

// IsNone returns true if the reference resolves to nothing.
func (r Reference) IsNone() bool {
	return r.kind == refNone
}

// String returns a log-friendly representation.
func (r Reference) String() string {
	switch r.kind {
	case refFunction:
		return "function:" + r.value
	case refURI:
		return "uri:" + r.value
	default:
		return "none"
	}
}

// BindingFlags carries behavior flags orthogonal to the resolved reference.
type BindingFlags struct {
	// Encoder marks a relative (endless rotary) controller.
	Encoder bool
	// Momentary marks a control active only while held.
	Momentary bool
	// Action is an optional named UI action string.
	Action string
	// Threshold is an optional trigger threshold for button-like inputs.
	Threshold *int
}

// numberKind discriminates controller bindings from note bindings.
type numberKind int

const (
	numberController numberKind = iota
	numberNote
)

// Binding is one resolved entry of a target map. A binding is either a
// continuous-controller binding or a note binding, never both; the only way
// to construct one is through the Builder, which sets exactly one number.
// Bindings are immutable once appended.
type Binding struct {
	Channel int
	Flags   BindingFlags

	numKind numberKind
	number  int
	ref     Reference
}

// ControllerNumber returns the CC number, if this is a controller binding.
func (b Binding) ControllerNumber() (int, bool) {
	return b.number, b.numKind == numberController
}

// NoteNumber returns the note number, if this is a note binding.
func (b Binding) NoteNumber() (int, bool) {
	return b.number, b.numKind == numberNote
}

// Reference returns the resolved reference of this binding.
func (b Binding) Reference() Reference {
	return b.ref
}

// DeviceAttr is one attribute of a device-descriptor block.
type DeviceAttr struct {
	Name  string
	Value string
}

// DeviceInfo is a free-form device-descriptor attribute bag, used only by
// controller families that require one. Attribute order is preserved.
type DeviceInfo struct {
	Attrs []DeviceAttr
}

// Set replaces the named attribute, or appends it if absent.
func (d *DeviceInfo) Set(name, value string) {
	for i := range d.Attrs {
		if d.Attrs[i].Name == name {
			d.Attrs[i].Value = value
			return
		}
	}

	d.Attrs = append(d.Attrs, DeviceAttr{Name: name, Value: value})
}

// Map is the accumulated target document. Binding order is emission order.
type Map struct {
	Name     string
	Version  string
	Device   *DeviceInfo
	Bindings []Binding
}
