package pdf

import "strings"

// CommandKind identifies a drawing primitive.
type CommandKind int

const (
	CmdFillRect CommandKind = iota
	CmdOutlineRect
	CmdText
	CmdLine
)

func (k CommandKind) String() string {
	switch k {
	case CmdFillRect:
		return "fill-rect"
	case CmdOutlineRect:
		return "outline-rect"
	case CmdText:
		return "text"
	case CmdLine:
		return "line"
	}
	return "unknown"
}

// Command is one drawing primitive at explicit page coordinates (points,
// origin top-left). Rectangles use X, Y, W, H; lines run from (X, Y) to
// (X2, Y2); text is anchored at (X, Y) on its baseline.
type Command struct {
	Kind  CommandKind
	X, Y  float64
	W, H  float64
	X2    float64
	Y2    float64
	Text  string
	Align Align
	Style Style
}

// Bottom returns the lowest y coordinate the command touches.
func (c Command) Bottom() float64 {
	switch c.Kind {
	case CmdFillRect, CmdOutlineRect:
		return c.Y + c.H
	case CmdLine:
		return max(c.Y, c.Y2)
	}
	return c.Y
}

// Page is the ordered command list of one page.
type Page struct {
	Commands []Command
}

// Texts returns the text runs of the page in drawing order.
func (p Page) Texts() []string {
	var out []string
	for _, c := range p.Commands {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Contains reports whether any text run on the page contains substr.
func (p Page) Contains(substr string) bool {
	for _, c := range p.Commands {
		if c.Kind == CmdText && strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// RenderedDocument is the output of one composition: pages of drawing
// commands, produced once and replayed once onto a Surface.
type RenderedDocument struct {
	Pages []Page
}

// PageCount returns the number of pages.
func (d *RenderedDocument) PageCount() int {
	return len(d.Pages)
}

// Canvas records drawing commands into pages. It is the page adder behind
// Cursor.EnsureSpace.
type Canvas struct {
	pages   []Page
	current int
}

// NewCanvas returns a canvas with its first page open.
func NewCanvas() *Canvas {
	return &Canvas{pages: []Page{{}}}
}

// AddPage opens a new page and makes it current. It returns the new page
// index.
func (c *Canvas) AddPage() int {
	c.pages = append(c.pages, Page{})
	c.current = len(c.pages) - 1
	return c.current
}

// PageCount returns the number of pages opened so far.
func (c *Canvas) PageCount() int { return len(c.pages) }

// Current returns the index of the page being drawn.
func (c *Canvas) Current() int { return c.current }

// Select makes page i current. Used to draw per-page furniture after the
// body is laid out.
func (c *Canvas) Select(i int) {
	if i >= 0 && i < len(c.pages) {
		c.current = i
	}
}

func (c *Canvas) emit(cmd Command) {
	c.pages[c.current].Commands = append(c.pages[c.current].Commands, cmd)
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, fill Color) {
	c.emit(Command{Kind: CmdFillRect, X: x, Y: y, W: w, H: h, Style: Style{Fill: fill}})
}

// OutlineRect draws a rectangle border.
func (c *Canvas) OutlineRect(x, y, w, h float64, stroke Color, width float64) {
	c.emit(Command{Kind: CmdOutlineRect, X: x, Y: y, W: w, H: h, Style: Style{Stroke: stroke, LineWidth: width}})
}

// Line draws a straight line.
func (c *Canvas) Line(x1, y1, x2, y2 float64, stroke Color, width float64) {
	c.emit(Command{Kind: CmdLine, X: x1, Y: y1, X2: x2, Y2: y2, Style: Style{Stroke: stroke, LineWidth: width}})
}

// Text draws a text run anchored at x on baseline y.
func (c *Canvas) Text(text string, x, y float64, align Align, font Font, color Color) {
	if text == "" {
		return
	}
	c.emit(Command{Kind: CmdText, X: x, Y: y, Text: text, Align: align, Style: Style{Font: font, Text: color}})
}

// Document freezes the recorded pages.
func (c *Canvas) Document() *RenderedDocument {
	pages := make([]Page, len(c.pages))
	copy(pages, c.pages)
	return &RenderedDocument{Pages: pages}
}

// Replay issues every command of doc onto s, one AddPage per page. Style
// state is set before each primitive.
func Replay(doc *RenderedDocument, s Surface) {
	for _, page := range doc.Pages {
		s.AddPage()
		for _, cmd := range page.Commands {
			switch cmd.Kind {
			case CmdFillRect:
				s.SetFillColor(cmd.Style.Fill)
				s.DrawFilledRect(cmd.X, cmd.Y, cmd.W, cmd.H)
			case CmdOutlineRect:
				s.SetDrawColor(cmd.Style.Stroke)
				s.SetLineWidth(cmd.Style.LineWidth)
				s.DrawRectOutline(cmd.X, cmd.Y, cmd.W, cmd.H)
			case CmdLine:
				s.SetDrawColor(cmd.Style.Stroke)
				s.SetLineWidth(cmd.Style.LineWidth)
				s.DrawLine(cmd.X, cmd.Y, cmd.X2, cmd.Y2)
			case CmdText:
				s.SetFont(cmd.Style.Font)
				s.SetTextColor(cmd.Style.Text)
				s.DrawText(cmd.Text, cmd.X, cmd.Y, cmd.Align)
			}
		}
	}
}
