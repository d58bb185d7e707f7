package formatter

// Preset is a named status template.
type Preset struct {
	Name        string
	Template    string
	Description string
}

var presets = []Preset{
	{
		Name:        "default",
		Template:    "page ${page}/${total}  x=${x} y=${y}  ${motion}",
		Description: "Page, position and motion state",
	},
	{
		Name:        "compact",
		Template:    "${page}/${total}",
		Description: "Page number only",
	},
	{
		Name:        "position",
		Template:    "x=${x} y=${y}",
		Description: "Content offset in engine pixels",
	},
	{
		Name:        "detailed",
		Template:    "${surface}: page ${page} of ${total} (${progress}) at ${x},${y} ${motion}",
		Description: "Everything, including the surface name",
	},
}

// DefaultPreset returns the preset used when nothing else is configured.
func DefaultPreset() Preset { return presets[0] }

// Presets returns every preset in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset called name.
func Lookup(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve returns the template a format stands for: the preset's template when
// format names one, format itself otherwise, and the default preset when empty.
func Resolve(format string) string {
	if format == "" {
		return DefaultPreset().Template
	}
	if p, ok := Lookup(format); ok {
		return p.Template
	}
	return format
}
