package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Surface is the export sink: it accepts drawing primitives and serializes
// them to a paginated binary document. A Surface serves one render.
type Surface interface {
	Measurer

	AddPage()
	SetFillColor(c Color)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)
	SetFont(f Font)
	DrawFilledRect(x, y, w, h float64)
	DrawRectOutline(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawText(text string, x, y float64, align Align)

	// Serialize writes the finished document to w.
	Serialize(w io.Writer) error
	// Close releases the session. Output not serialized before Close is
	// discarded. Close must be safe to call more than once.
	Close() error
}

// Metadata is written into the document information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
	Created time.Time
}

// FPDFSurface draws with go-pdf/fpdf in point units. UTF-8 text is
// translated to cp1252 for the core fonts.
type FPDFSurface struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	closed    bool
}

// NewFPDFSurface opens a portrait session on paper.
func NewFPDFSurface(paper PaperSize, meta Metadata) *FPDFSurface {
	p := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCatalogSort(true)
	tr := p.UnicodeTranslatorFromDescriptor("")
	if meta.Title != "" {
		p.SetTitle(tr(meta.Title), false)
	}
	if meta.Author != "" {
		p.SetAuthor(tr(meta.Author), false)
	}
	if meta.Subject != "" {
		p.SetSubject(tr(meta.Subject), false)
	}
	if meta.Creator != "" {
		p.SetCreator(tr(meta.Creator), false)
	}
	if !meta.Created.IsZero() {
		p.SetCreationDate(meta.Created)
		p.SetModificationDate(meta.Created)
	}
	return &FPDFSurface{pdf: p, translate: tr}
}

func (s *FPDFSurface) AddPage() { s.pdf.AddPage() }

func (s *FPDFSurface) SetFillColor(c Color) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (s *FPDFSurface) SetTextColor(c Color) {
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (s *FPDFSurface) SetDrawColor(c Color) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (s *FPDFSurface) SetLineWidth(w float64) {
	if w <= 0 {
		w = 0.5
	}
	s.pdf.SetLineWidth(w)
}

func (s *FPDFSurface) SetFont(f Font) {
	s.pdf.SetFont(fontFamily(f), fontStyle(f), f.Size)
}

func (s *FPDFSurface) DrawFilledRect(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *FPDFSurface) DrawRectOutline(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *FPDFSurface) DrawLine(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

// DrawText anchors text at x using the width of the current font.
func (s *FPDFSurface) DrawText(text string, x, y float64, align Align) {
	txt := s.translate(text)
	switch align {
	case AlignCenter:
		x -= s.pdf.GetStringWidth(txt) / 2
	case AlignRight:
		x -= s.pdf.GetStringWidth(txt)
	}
	s.pdf.Text(x, y, txt)
}

// MeasureTextWidth selects font and returns the width of text.
func (s *FPDFSurface) MeasureTextWidth(text string, f Font) float64 {
	s.SetFont(f)
	return s.pdf.GetStringWidth(s.translate(text))
}

// Serialize writes the document. It fails if any earlier primitive failed.
func (s *FPDFSurface) Serialize(w io.Writer) error {
	if s.closed {
		return fmt.Errorf("serialize: surface already closed")
	}
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	s.closed = true
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Close finalizes the session once. A session closed before Serialize
// produces nothing.
func (s *FPDFSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pdf.Close()
	return nil
}

func fontFamily(f Font) string {
	if f.Family == "" {
		return "Helvetica"
	}
	return f.Family
}

func fontStyle(f Font) string {
	switch {
	case f.Bold && f.Italic:
		return "BI"
	case f.Bold:
		return "B"
	case f.Italic:
		return "I"
	}
	return ""
}
