package chart

// DefaultPalette is the default qualitative palette, cycled when more ids
// than colors are assigned.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ColorsFor assigns a stable color to each id from the default palette.
func ColorsFor(ids []string) map[string]string {
	return ColorsFromPalette(ids, DefaultPalette)
}

// ColorsFromPalette assigns colors in first-occurrence order: the first
// distinct id gets the first palette entry, and so on, cycling when the
// palette runs out. Repeated ids keep their first assignment, so passing the
// same id list always yields the same mapping.
func ColorsFromPalette(ids []string, palette []string) map[string]string {
	colors := make(map[string]string, len(ids))
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	next := 0
	for _, id := range ids {
		if _, assigned := colors[id]; assigned {
			continue
		}
		colors[id] = palette[next%len(palette)]
		next++
	}

	return colors
}
