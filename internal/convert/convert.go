package convert

import (
	"github.com/oletizi/audio-control/internal/canonical"
	"github.com/oletizi/audio-control/internal/resolve"
	"github.com/oletizi/audio-control/internal/target"
)

// Convert translates a validated canonical map into a target map using the
// given controller context. Entries are processed in declaration order; each
// becomes exactly one binding. Channel and number fall back to their
// resolution-time defaults: the entry channel, then the controller's default
// channel, then 1; the number defaults to 0.
func Convert(m *canonical.Map, ctx resolve.ControllerContext) target.Map {
	builder := target.NewBuilder(m.Metadata.Name)
	builder.SetVersion(m.Metadata.Version)
	builder.SetDevice(ctx.DeviceInfo())

	defaultChannel := 1
	if m.Controller.DefaultChannel != nil {
		defaultChannel = *m.Controller.DefaultChannel
	}

	for i := range m.Mappings {
		entry := m.Mappings[i]
		ref := resolve.Resolve(entry, ctx)
		flags := resolve.Flags(entry)

		channel := entry.MIDIInput.ChannelOr(defaultChannel)
		number := entry.MIDIInput.NumberOr(0)

		if entry.MIDIInput.Kind == canonical.InputNote {
			builder.AddNoteBinding(channel, number, ref, flags)
		} else {
			builder.AddControllerBinding(channel, number, ref, flags)
		}
	}

	return builder.Build()
}

// Render is a convenience over Convert + target.Render with default options.
func Render(m *canonical.Map, ctx resolve.ControllerContext) string {
	return target.Render(Convert(m, ctx), target.RenderOptions{})
}
