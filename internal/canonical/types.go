package canonical

// InputKind identifies the physical MIDI message family of a mapping entry.
type InputKind string

const (
	InputCC            InputKind = "cc"
	InputNote          InputKind = "note"
	InputPitchBend     InputKind = "pitch_bend"
	InputAftertouch    InputKind = "aftertouch"
	InputProgramChange InputKind = "program_change"
)

// IsValid returns true if the kind is a recognized value.
func (k InputKind) IsValid() bool {
	switch k {
	case InputCC, InputNote, InputPitchBend, InputAftertouch, InputProgramChange:
		return true
	default:
		return false
	}
}

// InteractionMode describes how a physical control reports movement.
type InteractionMode string

const (
	ModeAbsolute  InteractionMode = "absolute"
	ModeRelative  InteractionMode = "relative"
	ModeToggle    InteractionMode = "toggle"
	ModeMomentary InteractionMode = "momentary"
)

// IsValid returns true if the mode is a recognized value.
func (m InteractionMode) IsValid() bool {
	switch m {
	case ModeAbsolute, ModeRelative, ModeToggle, ModeMomentary:
		return true
	default:
		return false
	}
}

// TargetKind identifies what a mapping entry controls on the plugin side.
type TargetKind string

const (
	TargetParameter TargetKind = "parameter"
	TargetBypass    TargetKind = "bypass"
	TargetPreset    TargetKind = "preset"
	TargetMacro     TargetKind = "macro"
)

// IsValid returns true if the kind is a recognized value.
func (k TargetKind) IsValid() bool {
	switch k {
	case TargetParameter, TargetBypass, TargetPreset, TargetMacro:
		return true
	default:
		return false
	}
}

// PluginFormat is an optional tag naming the plugin packaging format.
type PluginFormat string

const (
	FormatUnspecified PluginFormat = ""
	FormatVST2        PluginFormat = "vst2"
	FormatVST3        PluginFormat = "vst3"
	FormatAU          PluginFormat = "au"
	FormatAAX         PluginFormat = "aax"
	FormatLV2         PluginFormat = "lv2"
)

// IsValid returns true if the format is a recognized value (empty allowed).
func (f PluginFormat) IsValid() bool {
	switch f {
	case FormatUnspecified, FormatVST2, FormatVST3, FormatAU, FormatAAX, FormatLV2:
		return true
	default:
		return false
	}
}

// Map is the validated root of a canonical controller/plugin mapping.
// It is immutable after construction by Parse/Validate.
type Map struct {
	Metadata   Metadata       `yaml:"metadata" json:"metadata"`
	Controller Controller     `yaml:"controller" json:"controller"`
	Plugin     Plugin         `yaml:"plugin" json:"plugin"`
	Mappings   []MappingEntry `yaml:"mappings" json:"mappings"`
}

// Metadata carries map-level documentation fields.
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string `yaml:"author,omitempty" json:"author,omitempty"`
}

// Controller describes the physical control surface the map is authored for.
type Controller struct {
	Manufacturer   string `yaml:"manufacturer" json:"manufacturer"`
	Model          string `yaml:"model" json:"model"`
	DefaultChannel *int   `yaml:"defaultChannel,omitempty" json:"defaultChannel,omitempty"`
}

// Plugin describes the audio plugin the map addresses.
type Plugin struct {
	Manufacturer string       `yaml:"manufacturer" json:"manufacturer"`
	Name         string       `yaml:"name" json:"name"`
	Format       PluginFormat `yaml:"format,omitempty" json:"format,omitempty"`
}

// MappingEntry pairs one physical MIDI input with one plugin target.
//
// IDs are used for diagnostics and duplicate-input reporting; uniqueness is
// recommended but not enforced. Channel and number may legitimately be
// omitted; defaults (channel 1, number 0) are applied by consumers at
// resolution time, never during validation.
type MappingEntry struct {
	ID           string       `yaml:"id" json:"id"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	MIDIInput    MIDIInput    `yaml:"midiInput" json:"midiInput"`
	PluginTarget PluginTarget `yaml:"pluginTarget" json:"pluginTarget"`
	Mapping      *Scaling     `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Enabled      *bool        `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// IsEnabled returns the effective enabled state (default true).
func (e *MappingEntry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// MIDIInput identifies the incoming MIDI message a mapping entry listens to.
type MIDIInput struct {
	Kind     InputKind `yaml:"type" json:"type"`
	Channel  *int      `yaml:"channel,omitempty" json:"channel,omitempty"`
	Number   *int      `yaml:"number,omitempty" json:"number,omitempty"`
	Behavior *Behavior `yaml:"behavior,omitempty" json:"behavior,omitempty"`
}

// ChannelOr returns the channel, or def when absent.
func (in *MIDIInput) ChannelOr(def int) int {
	if in.Channel != nil {
		return *in.Channel
	}

	return def
}

// NumberOr returns the number, or def when absent.
func (in *MIDIInput) NumberOr(def int) int {
	if in.Number != nil {
		return *in.Number
	}

	return def
}

// Behavior describes how control movement is interpreted.
type Behavior struct {
	Mode        InteractionMode `yaml:"mode,omitempty" json:"mode,omitempty"`
	Sensitivity *float64        `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty"`
	Deadzone    *float64        `yaml:"deadzone,omitempty" json:"deadzone,omitempty"`
	Curve       string          `yaml:"curve,omitempty" json:"curve,omitempty"`
	Invert      bool            `yaml:"invert,omitempty" json:"invert,omitempty"`
}

// Mode returns the entry's effective interaction mode (default absolute).
func (e *MappingEntry) Mode() InteractionMode {
	if e.MIDIInput.Behavior == nil || e.MIDIInput.Behavior.Mode == "" {
		return ModeAbsolute
	}

	return e.MIDIInput.Behavior.Mode
}

// PluginTarget identifies what the entry controls on the plugin.
type PluginTarget struct {
	Kind       TargetKind `yaml:"type" json:"type"`
	Identifier string     `yaml:"identifier" json:"identifier"`
	Name       string     `yaml:"name,omitempty" json:"name,omitempty"`
	Category   string     `yaml:"category,omitempty" json:"category,omitempty"`
	Units      string     `yaml:"units,omitempty" json:"units,omitempty"`
	Range      *Range     `yaml:"range,omitempty" json:"range,omitempty"`
}

// Range bounds a parameter's value span in plugin units.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Scaling describes optional value shaping between input and target.
type Scaling struct {
	Curve     string   `yaml:"curve,omitempty" json:"curve,omitempty"`
	Step      *float64 `yaml:"step,omitempty" json:"step,omitempty"`
	Smoothing *float64 `yaml:"smoothing,omitempty" json:"smoothing,omitempty"`
	Bipolar   bool     `yaml:"bipolar,omitempty" json:"bipolar,omitempty"`
}
