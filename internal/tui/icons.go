package tui

// iconGlyphs resolves the opaque icon identifiers stored on categories
// to terminal glyphs. Unknown identifiers fall back to a plain marker;
// the core never inspects these strings.
var iconGlyphs = map[string]string{
	"restaurant": "🍜",
	"cart":       "🛒",
	"car":        "🚗",
	"hospital":   "🏥",
	"game":       "🎮",
	"tag":        "🏷",
	"home":       "🏠",
	"gift":       "🎁",
	"coffee":     "☕",
	"book":       "📚",
	"plane":      "✈",
	"music":      "🎵",
}

// IconGlyph returns the glyph for an icon identifier.
func IconGlyph(id string) string {
	if g, ok := iconGlyphs[id]; ok {
		return g
	}
	return "·"
}

// IconIDs lists the identifiers offered by the category form.
func IconIDs() []string {
	return []string{
		"restaurant", "cart", "car", "hospital", "game", "tag",
		"home", "gift", "coffee", "book", "plane", "music",
	}
}
