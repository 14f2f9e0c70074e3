package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_NumberExclusivity(t *testing.T) {
	b := NewBuilder("exclusivity")
	b.AddControllerBinding(1, 7, FunctionRef("track-set-gain"), BindingFlags{})
	b.AddNoteBinding(1, 64, FunctionRef("transport-roll"), BindingFlags{})
	b.AddControllerBinding(2, 16, NoRef(), BindingFlags{})

	for _, binding := range b.Build().Bindings {
		_, isCC := binding.ControllerNumber()
		_, isNote := binding.NoteNumber()
		assert.True(t, isCC != isNote, "binding must be exactly one of controller/note")
	}
}

func TestBuilder_ReferenceExclusivity(t *testing.T) {
	b := NewBuilder("refs")
	b.AddControllerBinding(1, 0, FunctionRef("track-set-gain"), BindingFlags{})
	b.AddControllerBinding(1, 1, URIRef("/route/plugin/parameter S1 x"), BindingFlags{})
	b.AddControllerBinding(1, 2, NoRef(), BindingFlags{})

	m := b.Build()
	require.Len(t, m.Bindings, 3)

	for _, binding := range m.Bindings {
		ref := binding.Reference()
		_, isFn := ref.Function()
		_, isURI := ref.URI()
		assert.False(t, isFn && isURI)
	}

	assert.True(t, m.Bindings[2].Reference().IsNone())
}

func TestBuilder_SnapshotIndependence(t *testing.T) {
	b := NewBuilder("snapshot")
	b.AddControllerBinding(1, 7, FunctionRef("track-set-gain"), BindingFlags{})

	device := &DeviceInfo{}
	device.Set("bank-size", "8")
	b.SetDevice(device)

	snapshot := b.Build()
	require.Len(t, snapshot.Bindings, 1)

	// Later mutation of the builder must not leak into the snapshot.
	b.AddNoteBinding(1, 60, FunctionRef("transport-stop"), BindingFlags{})
	b.device.Set("bank-size", "16")

	assert.Len(t, snapshot.Bindings, 1)
	assert.Equal(t, "8", snapshot.Device.Attrs[0].Value)
	assert.Equal(t, 2, b.Len())
}

func TestBuilder_ClearReusesIdentity(t *testing.T) {
	b := NewBuilder("reuse")
	b.SetVersion("1.0.0")
	b.AddControllerBinding(1, 7, FunctionRef("track-set-gain"), BindingFlags{})

	first := b.Build()
	b.Clear()

	assert.Equal(t, 0, b.Len())

	b.AddNoteBinding(2, 36, FunctionRef("loop-toggle"), BindingFlags{})
	second := b.Build()

	assert.Len(t, first.Bindings, 1)
	require.Len(t, second.Bindings, 1)
	assert.Equal(t, "reuse", second.Name)
	assert.Empty(t, second.Version)

	_, isNote := second.Bindings[0].NoteNumber()
	assert.True(t, isNote)
}

func TestBuilder_TransportGroup(t *testing.T) {
	b := NewBuilder("transport")
	b.AddTransportControls(1, 90)

	m := b.Build()
	require.Len(t, m.Bindings, 4)

	wantFuncs := []string{"transport-roll", "transport-stop", "toggle-rec-enable", "loop-toggle"}
	for i, binding := range m.Bindings {
		note, isNote := binding.NoteNumber()
		require.True(t, isNote)
		assert.Equal(t, 90+i, note)
		assert.True(t, binding.Flags.Momentary)

		fn, ok := binding.Reference().Function()
		require.True(t, ok)
		assert.Equal(t, wantFuncs[i], fn)
	}
}

func TestBuilder_ChannelStripGroup(t *testing.T) {
	b := NewBuilder("strip")
	b.AddChannelStrip(3, 20)

	m := b.Build()
	require.Len(t, m.Bindings, 4)

	for i, binding := range m.Bindings {
		cc, isCC := binding.ControllerNumber()
		require.True(t, isCC)
		assert.Equal(t, 20+i, cc)
		assert.Equal(t, 3, binding.Channel)
	}
}

func TestBuilder_AcceptsOutOfRangeWithoutValidation(t *testing.T) {
	// Range checking is the canonical validator's job; the builder trusts
	// its caller.
	b := NewBuilder("trusting")
	b.AddControllerBinding(99, 300, NoRef(), BindingFlags{})
	assert.Equal(t, 1, b.Len())
}
