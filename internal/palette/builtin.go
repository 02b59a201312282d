package palette

var builtinSwatches = []struct {
	name     string
	swatches []Swatch
}{
	{"sunset", []Swatch{
		{"coral", "#ff6b6b"}, {"mustard", "#feca57"}, {"orchid", "#ff9ff3"},
		{"plum", "#5f27cd"}, {"peach", "#ffb385"},
	}},
	{"ocean", []Swatch{
		{"deep", "#0077be"}, {"lagoon", "#00a8cc"}, {"foam", "#e0f0ff"},
		{"kelp", "#2e8b57"}, {"sand", "#ffd700"},
	}},
	{"cyberpunk", []Swatch{
		{"magenta", "#ff00ff"}, {"cyan", "#00ffff"}, {"yellow", "#ffff00"},
		{"violet", "#7b2cbf"},
	}},
	{"retro", []Swatch{
		{"phosphor", "#00ff00"}, {"moss", "#00cc00"}, {"mint", "#88ff88"},
		{"amber", "#ffb000"},
	}},
	{"bauhaus", []Swatch{
		{"red", "#d62828"}, {"blue", "#003049"}, {"yellow", "#fcbf49"},
		{"cream", "#eae2b7"}, {"orange", "#f77f00"},
	}},
	{"earth", []Swatch{
		{"clay", "#a0522d"}, {"olive", "#6b8e23"}, {"ochre", "#cc7722"},
		{"stone", "#8b8589"}, {"moss", "#556b2f"},
	}},
	{"pastel", []Swatch{
		{"rose", "#ffd1dc"}, {"sky", "#aec6cf"}, {"lemon", "#fdfd96"},
		{"lilac", "#c3b1e1"}, {"sage", "#b2d8b2"},
	}},
	{"mono", []Swatch{
		{"ink", "#1a1a1a"}, {"graphite", "#555555"}, {"ash", "#999999"},
		{"fog", "#dddddd"},
	}},
}

// Builtin returns the palettes compiled into the binary.
func Builtin() []Selector {
	out := make([]Selector, 0, len(builtinSwatches))
	for _, b := range builtinSwatches {
		p, err := New(b.name, b.swatches)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}
