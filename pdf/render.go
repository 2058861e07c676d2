package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diewo77/go-documents/i18n"
)

// Result is a rendered document.
type Result struct {
	Filename string
	Data     []byte
	Pages    int
}

// Notifier tells the user that a render failed.
type Notifier interface {
	RenderFailed(ctx context.Context, variant Variant, documentID string, err error)
}

// SurfaceFactory opens one export session.
type SurfaceFactory func(paper PaperSize, meta Metadata) Surface

// Options configures a Renderer. Zero values fall back to A4, the default
// theme, French labels, EUR and an fpdf surface.
type Options struct {
	Issuer   Issuer
	Lang     string
	Currency string
	Layout   PageLayout
	Theme    Theme

	Logger   *zap.Logger
	Store    Store
	Notifier Notifier

	// Validate re-parses every produced document with pdfcpu and checks
	// its page count.
	Validate bool

	Now        func() time.Time
	NewSurface SurfaceFactory
}

// Renderer renders records to PDF. It is immutable after construction and
// safe for concurrent use; every render opens its own surface.
type Renderer struct {
	composer   Composer
	log        *zap.Logger
	store      Store
	notifier   Notifier
	validate   bool
	newSurface SurfaceFactory
}

// NewRenderer builds a renderer from opts.
func NewRenderer(opts Options) *Renderer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	newSurface := opts.NewSurface
	if newSurface == nil {
		newSurface = func(paper PaperSize, meta Metadata) Surface { return NewFPDFSurface(paper, meta) }
	}
	c := Composer{
		Layout:   opts.Layout,
		Theme:    opts.Theme,
		Issuer:   opts.Issuer,
		Lang:     opts.Lang,
		Currency: opts.Currency,
		Now:      opts.Now,
	}.withDefaults()
	return &Renderer{
		composer:   c,
		log:        log.Named("pdf"),
		store:      opts.Store,
		notifier:   opts.Notifier,
		validate:   opts.Validate,
		newSurface: newSurface,
	}
}

// RenderQuoteOrInvoice renders rec as a quote or an invoice.
func (r *Renderer) RenderQuoteOrInvoice(ctx context.Context, rec *QuoteInvoiceRecord, kind Variant) (*Result, error) {
	if kind != VariantQuote && kind != VariantInvoice {
		return nil, fmt.Errorf("%w: %q is not a quote or invoice", ErrUnknownVariant, kind)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrUnknownVariant)
	}
	cp := *rec
	cp.Kind = kind
	return r.Render(ctx, &cp)
}

// RenderDeliveryNote renders a delivery note.
func (r *Renderer) RenderDeliveryNote(ctx context.Context, rec *DeliveryNoteRecord) (*Result, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrUnknownVariant)
	}
	return r.Render(ctx, rec)
}

// RenderEventReport renders an event report.
func (r *Renderer) RenderEventReport(ctx context.Context, rec *EventReportRecord) (*Result, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrUnknownVariant)
	}
	return r.Render(ctx, rec)
}

// Render renders any record. On failure the error is logged, the notifier
// is told and the result is nil.
func (r *Renderer) Render(ctx context.Context, rec Record) (*Result, error) {
	if rec == nil || rec.Header() == nil {
		return nil, fmt.Errorf("%w: nil record", ErrUnknownVariant)
	}
	variant, docID := rec.Variant(), rec.Header().ID
	log := r.log.With(
		zap.String("render_id", uuid.NewString()),
		zap.String("variant", string(variant)),
		zap.String("document_id", docID),
	)
	start := time.Now()

	res, err := r.render(ctx, rec)
	if err == nil && r.store != nil {
		if serr := r.store.Save(ctx, res.Filename, res.Data); serr != nil {
			res, err = nil, fmt.Errorf("store %s: %w", res.Filename, serr)
		}
	}
	if err != nil {
		log.Error("render failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		if r.notifier != nil {
			r.notifier.RenderFailed(ctx, variant, docID, err)
		}
		return nil, err
	}

	log.Info("document rendered",
		zap.String("filename", res.Filename),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.Data)),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (r *Renderer) render(ctx context.Context, rec Record) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := ConfigFor(rec.Variant())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, rec.Variant())
	}
	c := r.composer
	surface := r.newSurface(c.Layout.Paper, documentMeta(c, cfg, rec.Header()))
	defer surface.Close()

	c.Measurer = surface
	doc, err := c.Compose(rec)
	if err != nil {
		return nil, err
	}

	if err := replay(doc, surface); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := surface.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serialize: %w", err)
	}

	data := buf.Bytes()
	if r.validate {
		if err := Validate(data); err != nil {
			return nil, err
		}
		n, err := PageCount(data)
		if err != nil {
			return nil, err
		}
		if n != doc.PageCount() {
			return nil, fmt.Errorf("pdf: exported %d pages, composed %d", n, doc.PageCount())
		}
	}
	return &Result{Filename: FilenameFor(rec), Data: data, Pages: doc.PageCount()}, nil
}

// replay turns a panicking surface primitive into an error.
func replay(doc *RenderedDocument, s Surface) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf: replay: %v", r)
		}
	}()
	Replay(doc, s)
	return nil
}

func documentMeta(c Composer, cfg VariantConfig, h *RecordHeader) Metadata {
	return Metadata{
		Title:   i18n.T(c.Lang, cfg.TitleLabel) + " " + h.ID,
		Author:  c.Issuer.Name,
		Subject: h.PartyName,
		Creator: "go-documents",
		Created: c.Now(),
	}
}
