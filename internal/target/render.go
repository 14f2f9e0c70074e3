package target

import (
	"strconv"
	"strings"
)

// formatVersion is the fixed version attribute emitted on the root element.
const formatVersion = "1.0.0"

// RenderOptions controls the indent and line separator of rendered output.
// The zero value selects the defaults (two-space indent, "\n").
type RenderOptions struct {
	Indent  string
	Newline string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Indent == "" {
		o.Indent = "  "
	}

	if o.Newline == "" {
		o.Newline = "\n"
	}

	return o
}

// escapeAttr applies the five standard named character references to a
// free-text attribute value. Purely numeric attributes are never escaped.
var escapeAttr = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
).Replace

// Render produces the final textual form of a target map. It is a pure
// function: bindings are emitted in sequence order with no reordering or
// grouping, and repeated calls on the same map yield identical output.
func Render(m Map, opts RenderOptions) string {
	opts = opts.withDefaults()

	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(opts.Newline)

	sb.WriteString(`<ArdourMIDIBindings version="` + formatVersion + `" name="` + escapeAttr(m.Name) + `"`)

	if m.Version != "" {
		sb.WriteString(` map-version="` + escapeAttr(m.Version) + `"`)
	}

	sb.WriteString(">")
	sb.WriteString(opts.Newline)

	if m.Device != nil {
		sb.WriteString(opts.Indent)
		sb.WriteString("<DeviceInfo")

		for _, attr := range m.Device.Attrs {
			sb.WriteString(" " + attr.Name + `="` + escapeAttr(attr.Value) + `"`)
		}

		sb.WriteString("/>")
		sb.WriteString(opts.Newline)
	}

	for _, binding := range m.Bindings {
		sb.WriteString(opts.Indent)
		sb.WriteString(renderBinding(binding))
		sb.WriteString(opts.Newline)
	}

	sb.WriteString("</ArdourMIDIBindings>")
	sb.WriteString(opts.Newline)

	return sb.String()
}

// renderBinding emits one Binding element. Attribute order is fixed:
// channel, then the controller or note number, then encoder flags, then mode
// flags, then the resolved reference, then action, then threshold.
func renderBinding(b Binding) string {
	var sb strings.Builder

	sb.WriteString(`<Binding channel="` + strconv.Itoa(b.Channel) + `"`)

	if cc, ok := b.ControllerNumber(); ok {
		sb.WriteString(` ctl="` + strconv.Itoa(cc) + `"`)
	} else if note, ok := b.NoteNumber(); ok {
		sb.WriteString(` note="` + strconv.Itoa(note) + `"`)
	}

	if b.Flags.Encoder {
		sb.WriteString(` enc-r="yes"`)
	}

	if b.Flags.Momentary {
		sb.WriteString(` momentary="yes"`)
	}

	if fn, ok := b.ref.Function(); ok {
		sb.WriteString(` function="` + escapeAttr(fn) + `"`)
	} else if uri, ok := b.ref.URI(); ok {
		sb.WriteString(` uri="` + escapeAttr(uri) + `"`)
	}

	if b.Flags.Action != "" {
		sb.WriteString(` action="` + escapeAttr(b.Flags.Action) + `"`)
	}

	if b.Flags.Threshold != nil {
		sb.WriteString(` threshold="` + strconv.Itoa(*b.Flags.Threshold) + `"`)
	}

	sb.WriteString("/>")

	return sb.String()
}
