package pdf

import (
	"errors"
	"fmt"
	"time"

	"github.com/diewo77/go-documents/i18n"
)

var (
	// ErrUnknownVariant is returned for records with no layout.
	ErrUnknownVariant = errors.New("pdf: unknown document variant")
	// ErrEmptyDocument is returned when composition produced no page.
	ErrEmptyDocument = errors.New("pdf: document has no pages")
)

// Composer lays records out into pages of drawing commands. A zero
// Composer uses A4, the default theme and French labels. It holds no
// per-render state and may be shared.
type Composer struct {
	Layout   PageLayout
	Theme    Theme
	Issuer   Issuer
	Lang     string
	Currency string
	Measurer Measurer
	Now      func() time.Time
}

func (c Composer) withDefaults() Composer {
	if c.Layout.Paper.Width == 0 {
		c.Layout = DefaultLayout
	}
	if c.Theme.Family == "" {
		c.Theme = DefaultTheme
	}
	if c.Lang == "" {
		c.Lang = i18n.DefaultLang
	}
	if c.Currency == "" {
		c.Currency = "EUR"
	}
	if c.Measurer == nil {
		c.Measurer = approxMeasurer{}
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Compose renders rec into a RenderedDocument. Drawing panics are returned
// as errors and no partial document escapes.
func (c Composer) Compose(rec Record) (doc *RenderedDocument, err error) {
	if rec == nil || rec.Header() == nil {
		return nil, fmt.Errorf("%w: nil record", ErrUnknownVariant)
	}
	cfg, ok := ConfigFor(rec.Variant())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, rec.Variant())
	}
	c = c.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("pdf: compose %s: %v", cfg.Variant, r)
		}
	}()

	t := i18n.Translator(c.Lang)
	body, err := adapt(rec, cfg, labeler{t: t, currency: c.Currency, issuer: c.Issuer})
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas()
	s := &Session{
		Canvas:   canvas,
		Layout:   c.Layout,
		Theme:    c.Theme,
		Grid:     NewGrid(c.Layout.Left, cfg.Columns),
		Measurer: c.Measurer,
		T:        t,
		Currency: c.Currency,
		Now:      c.Now(),
	}
	s.Continue = continuationHeader(s, c.Issuer, documentTitle(s, body.Title, body.ID))

	sections := []Section{
		Letterhead(c.Issuer),
		TitleBanner(body.Title, body.ID, body.Date, body.Status),
		InfoBlocks(body.Info),
		Table(body.Rows, cfg.RowHeight),
	}
	if body.Summary != nil {
		sections = append(sections, SummaryBox(*body.Summary, cfg.SummaryAnchor))
	}
	sections = append(sections, Notes(body.Notes), Signatures(body.Signatures))

	cur := NewCursor(c.Layout, canvas)
	for _, section := range sections {
		cur = section(s, cur)
	}
	Footer(s, c.Issuer)

	doc = canvas.Document()
	if doc.PageCount() == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// approxMeasurer estimates Helvetica widths when no surface is at hand.
type approxMeasurer struct{}

func (approxMeasurer) MeasureTextWidth(text string, f Font) float64 {
	factor := 0.5
	if f.Bold {
		factor = 0.55
	}
	return float64(runeLen(text)) * f.Size * factor
}
