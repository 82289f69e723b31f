package styles

// Field status glyphs.
var (
	IconError   = "✗"
	IconSuccess = "✓"
	IconClear   = "⌫"
)
