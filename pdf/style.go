package pdf

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Font selects a core font face and size in points.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style is the complete drawing state for one command. Every command carries
// its own Style, so nothing set for one block survives into the next.
type Style struct {
	Fill      Color
	Stroke    Color
	Text      Color
	Font      Font
	LineWidth float64
}

// Tone classifies a table cell for conditional coloring.
type Tone int

const (
	ToneDefault Tone = iota
	ToneMuted
	ToneGood
	ToneWarn
	ToneBad
)

// Theme is the palette and type scale shared by all sections.
type Theme struct {
	Family string

	Primary Color
	Accent  Color
	Ink     Color
	Muted   Color
	Border  Color
	RowAlt  Color
	Paper   Color
	Good    Color
	Warn    Color
	Bad     Color
}

// DefaultTheme is the company palette.
var DefaultTheme = Theme{
	Family:  "Helvetica",
	Primary: Color{30, 58, 95},
	Accent:  Color{224, 231, 240},
	Ink:     Color{33, 37, 41},
	Muted:   Color{108, 117, 125},
	Border:  Color{206, 212, 218},
	RowAlt:  Color{245, 247, 250},
	Paper:   Color{255, 255, 255},
	Good:    Color{22, 128, 61},
	Warn:    Color{202, 111, 4},
	Bad:     Color{200, 35, 51},
}

// Font returns the theme family at size.
func (t Theme) Font(size float64) Font {
	return Font{Family: t.Family, Size: size}
}

// BoldFont returns the bold theme family at size.
func (t Theme) BoldFont(size float64) Font {
	return Font{Family: t.Family, Size: size, Bold: true}
}

// ToneColor maps a cell tone to a text color.
func (t Theme) ToneColor(tone Tone) Color {
	switch tone {
	case ToneMuted:
		return t.Muted
	case ToneGood:
		return t.Good
	case ToneWarn:
		return t.Warn
	case ToneBad:
		return t.Bad
	default:
		return t.Ink
	}
}
