package target

// Builder accumulates bindings and map-level metadata for one target map.
// It trusts its caller: channels and numbers are accepted without range
// validation, since range checking already happened against the canonical
// model upstream. A Builder is owned by a single conversion task and is not
// safe for concurrent mutation.
type Builder struct {
	name     string
	version  string
	device   *DeviceInfo
	bindings []Binding
}

// NewBuilder returns an empty builder for a map with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// SetName replaces the map name.
func (b *Builder) SetName(name string) {
	b.name = name
}

// SetVersion sets the optional map version.
func (b *Builder) SetVersion(version string) {
	b.version = version
}

// SetDevice attaches a device-descriptor block. Passing nil removes it.
func (b *Builder) SetDevice(device *DeviceInfo) {
	b.device = device
}

// AddControllerBinding appends a continuous-controller binding.
func (b *Builder) AddControllerBinding(channel, cc int, ref Reference, flags BindingFlags) {
	b.bindings = append(b.bindings, Binding{
		Channel: channel,
		Flags:   flags,
		numKind: numberController,
		number:  cc,
		ref:     ref,
	})
}

// AddNoteBinding appends a note binding.
func (b *Builder) AddNoteBinding(channel, note int, ref Reference, flags BindingFlags) {
	b.bindings = append(b.bindings, Binding{
		Channel: channel,
		Flags:   flags,
		numKind: numberNote,
		number:  note,
		ref:     ref,
	})
}

// transportFunctions is the standard transport group, in emission order.
var transportFunctions = []string{
	"transport-roll",
	"transport-stop",
	"toggle-rec-enable",
	"loop-toggle",
}

// AddTransportControls appends the standard transport group as consecutive
// momentary note bindings starting at firstNote.
func (b *Builder) AddTransportControls(channel, firstNote int) {
	for i, fn := range transportFunctions {
		b.AddNoteBinding(channel, firstNote+i, FunctionRef(fn), BindingFlags{Momentary: true})
	}
}

// channelStripFunctions is the standard per-strip control group, in
// emission order.
var channelStripFunctions = []string{
	"track-set-gain",
	"track-set-trim",
	"track-set-mute",
	"track-set-solo",
}

// AddChannelStrip appends the standard per-strip control group as
// consecutive controller bindings starting at baseCC.
func (b *Builder) AddChannelStrip(channel, baseCC int) {
	for i, fn := range channelStripFunctions {
		b.AddControllerBinding(channel, baseCC+i, FunctionRef(fn), BindingFlags{})
	}
}

// Len returns the number of accumulated bindings.
func (b *Builder) Len() int {
	return len(b.bindings)
}

// Clear empties the accumulator. The same builder identity is reusable for
// a new map; previously built snapshots are unaffected.
func (b *Builder) Clear() {
	b.bindings = nil
	b.device = nil
	b.version = ""
}

// Build returns an immutable snapshot of the accumulated map. The binding
// sequence and device descriptor are defensively copied, so later builder
// mutation is invisible to the returned value.
func (b *Builder) Build() Map {
	bindings := make([]Binding, len(b.bindings))
	copy(bindings, b.bindings)

	var device *DeviceInfo
	if b.device != nil {
		attrs := make([]DeviceAttr, len(b.device.Attrs))
		copy(attrs, b.device.Attrs)
		device = &DeviceInfo{Attrs: attrs}
	}

	return Map{
		Name:     b.name,
		Version:  b.version,
		Device:   device,
		Bindings: bindings,
	}
}
