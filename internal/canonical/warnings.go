package canonical

import (
	"fmt"
	"strings"

	"github.com/oletizi/audio-control/internal/diagnostic"
)

// inputKey groups mapping entries that listen to the same physical input.
// Absent channel and number take their resolution-time defaults here so that
// "channel omitted" and "channel: 1" collide, matching converter behavior.
type inputKey struct {
	kind    InputKind
	channel int
	number  int
}

// computeWarnings appends advisory warnings for a structurally valid map.
// Warnings never affect validity.
func computeWarnings(m *Map, out *diagnostic.Outcome) {
	groups := map[inputKey][]string{}
	order := []inputKey{}

	for i := range m.Mappings {
		e := &m.Mappings[i]
		key := inputKey{
			kind:    e.MIDIInput.Kind,
			channel: e.MIDIInput.ChannelOr(1),
			number:  e.MIDIInput.NumberOr(0),
		}

		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], e.ID)
	}

	for _, key := range order {
		ids := groups[key]
		if len(ids) < 2 {
			continue
		}

		out.AddWarning(
			diagnostic.CodeDuplicateMIDIInput,
			fmt.Sprintf("multiple mappings share MIDI input %s channel %d number %d: %s",
				key.kind, key.channel, key.number, strings.Join(ids, ", ")),
			"mappings",
		)
	}

	if m.Metadata.Description == "" {
		out.AddWarning(diagnostic.CodeMissingDescription,
			"metadata has no description", "metadata.description")
	}

	if m.Metadata.Author == "" {
		out.AddWarning(diagnostic.CodeMissingAuthor,
			"metadata has no author", "metadata.author")
	}
}
