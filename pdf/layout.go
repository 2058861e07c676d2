package pdf

// PaperSize is a page format in points (1" = 72pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4Size     = PaperSize{Name: "A4", Width: 595.28, Height: 841.89} // 210mm x 297mm
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}   // 8.5" x 11"
)

// PageLayout is the page geometry shared by every section of a document.
type PageLayout struct {
	Paper  PaperSize
	Top    float64
	Bottom float64 // reserved below the body, includes the footer area
	Left   float64
	Right  float64

	// FooterOffset is the distance from the page bottom to the first footer
	// baseline.
	FooterOffset float64
}

// DefaultLayout is A4 portrait with 40pt side margins.
var DefaultLayout = PageLayout{
	Paper:        A4Size,
	Top:          40,
	Bottom:       60,
	Left:         40,
	Right:        40,
	FooterOffset: 34,
}

// ContentWidth is the printable width between the side margins.
func (l PageLayout) ContentWidth() float64 {
	return l.Paper.Width - l.Left - l.Right
}

// ContentRight is the x coordinate of the right margin.
func (l PageLayout) ContentRight() float64 {
	return l.Paper.Width - l.Right
}

// Column is one table column: a key naming the cell, a header label code,
// a width in points and the alignment of its values.
type Column struct {
	Key      string
	Label    string
	Width    float64
	Align    Align
	MaxChars int
}

// Grid resolves named columns to x coordinates. Widths are defined once
// per variant; every section that lines up with the table asks the grid.
type Grid struct {
	left    float64
	columns []Column
	offsets map[string]int
}

// NewGrid lays columns out left to right starting at left.
func NewGrid(left float64, columns []Column) Grid {
	offsets := make(map[string]int, len(columns))
	for i, c := range columns {
		offsets[c.Key] = i
	}
	return Grid{left: left, columns: columns, offsets: offsets}
}

// Columns returns the columns in order.
func (g Grid) Columns() []Column { return g.columns }

// Left is the x of the first column.
func (g Grid) Left() float64 { return g.left }

// Width is the sum of all column widths.
func (g Grid) Width() float64 {
	var w float64
	for _, c := range g.columns {
		w += c.Width
	}
	return w
}

// X returns the left edge of the column with key. Unknown keys resolve to
// the grid's left edge.
func (g Grid) X(key string) float64 {
	i, ok := g.offsets[key]
	if !ok {
		return g.left
	}
	return g.xAt(i)
}

func (g Grid) xAt(i int) float64 {
	x := g.left
	for _, c := range g.columns[:i] {
		x += c.Width
	}
	return x
}

// Cell returns the left edge and width of the column with key.
func (g Grid) Cell(key string) (x, w float64) {
	i, ok := g.offsets[key]
	if !ok {
		return g.left, 0
	}
	return g.xAt(i), g.columns[i].Width
}
