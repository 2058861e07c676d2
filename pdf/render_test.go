package pdf

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSurface records primitives and can fail on demand.
type fakeSurface struct {
	pages     int
	texts     []string
	closed    int
	failWrite bool
	panicText string
}

func (f *fakeSurface) MeasureTextWidth(text string, font Font) float64 {
	return float64(len(text)) * font.Size * 0.5
}
func (f *fakeSurface) AddPage()                          { f.pages++ }
func (f *fakeSurface) SetFillColor(Color)                {}
func (f *fakeSurface) SetTextColor(Color)                {}
func (f *fakeSurface) SetDrawColor(Color)                {}
func (f *fakeSurface) SetLineWidth(float64)              {}
func (f *fakeSurface) SetFont(Font)                      {}
func (f *fakeSurface) DrawFilledRect(_, _, _, _ float64) {}
func (f *fakeSurface) DrawRectOutline(_, _, _, _ float64) {}
func (f *fakeSurface) DrawLine(_, _, _, _ float64)       {}

func (f *fakeSurface) DrawText(text string, _, _ float64, _ Align) {
	if f.panicText != "" && strings.Contains(text, f.panicText) {
		panic("cannot encode " + text)
	}
	f.texts = append(f.texts, text)
}
func (f *fakeSurface) Serialize(w io.Writer) error {
	if f.failWrite {
		return errors.New("disk full")
	}
	_, err := io.WriteString(w, "%PDF-fake")
	return err
}
func (f *fakeSurface) Close() error {
	f.closed++
	return nil
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) RenderFailed(_ context.Context, v Variant, id string, err error) {
	n.calls = append(n.calls, string(v)+":"+id)
}

func newTestRenderer(t *testing.T, surface *fakeSurface, opts Options) (*Renderer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	opts.Logger = zap.New(core)
	opts.Now = fixedNow
	opts.NewSurface = func(PaperSize, Metadata) Surface { return surface }
	return NewRenderer(opts), logs
}

func TestRenderSuccess(t *testing.T) {
	surface := &fakeSurface{}
	dir := t.TempDir()
	r, logs := newTestRenderer(t, surface, Options{Store: DirStore{Dir: dir}})

	res, err := r.RenderQuoteOrInvoice(context.Background(), quoteWithItems(40), VariantInvoice)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.Filename != "Facture_DEV-2025-001_Dupont_SARL_12-03-2025.pdf" {
		t.Errorf("filename = %q", res.Filename)
	}
	if res.Pages != 2 || surface.pages != 2 {
		t.Errorf("pages = %d, surface pages = %d", res.Pages, surface.pages)
	}
	if surface.closed != 1 {
		t.Errorf("surface closed %d times", surface.closed)
	}
	if _, err := os.Stat(filepath.Join(dir, res.Filename)); err != nil {
		t.Errorf("document not stored: %v", err)
	}

	entries := logs.FilterMessage("document rendered").All()
	if len(entries) != 1 {
		t.Fatalf("expected one render log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["variant"] != "invoice" || fields["document_id"] != "DEV-2025-001" || fields["render_id"] == "" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestRenderFailures(t *testing.T) {
	tests := []struct {
		name    string
		surface *fakeSurface
		want    string
	}{
		{"serialize error", &fakeSurface{failWrite: true}, "disk full"},
		{"primitive panic", &fakeSurface{panicText: "Enceinte 1"}, "cannot encode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			r, logs := newTestRenderer(t, tt.surface, Options{Notifier: notifier})

			res, err := r.RenderDeliveryNote(context.Background(), &DeliveryNoteRecord{
				RecordHeader: RecordHeader{ID: "BL-1", Items: []LineItem{{Designation: "Enceinte 1", QuantityOrdered: 1}}},
			})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q error, got %v", tt.want, err)
			}
			if res != nil {
				t.Error("failed render returned a result")
			}
			if tt.surface.closed != 1 {
				t.Errorf("surface closed %d times", tt.surface.closed)
			}
			if len(notifier.calls) != 1 || notifier.calls[0] != "delivery-note:BL-1" {
				t.Errorf("notifier calls = %v", notifier.calls)
			}
			if logs.FilterMessage("render failed").Len() != 1 {
				t.Error("failure was not logged")
			}
		})
	}
}

func TestRenderRejectsWrongKind(t *testing.T) {
	r, _ := newTestRenderer(t, &fakeSurface{}, Options{})
	_, err := r.RenderQuoteOrInvoice(context.Background(), quoteWithItems(1), VariantDeliveryNote)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRenderQuoteOrInvoiceDoesNotMutate(t *testing.T) {
	r, _ := newTestRenderer(t, &fakeSurface{}, Options{})
	rec := quoteWithItems(1)
	if _, err := r.RenderQuoteOrInvoice(context.Background(), rec, VariantInvoice); err != nil {
		t.Fatalf("render: %v", err)
	}
	if rec.Kind != VariantQuote {
		t.Errorf("kind changed to %q", rec.Kind)
	}
}

func TestRenderCancelledContext(t *testing.T) {
	surface := &fakeSurface{}
	r, _ := newTestRenderer(t, surface, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderEventReport(ctx, &EventReportRecord{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if surface.pages != 0 {
		t.Error("cancelled render drew pages")
	}
}

func TestRenderFPDFProducesPDF(t *testing.T) {
	r := NewRenderer(Options{
		Issuer:   Issuer{Name: "Sono Événements", SIRET: "123"},
		Now:      fixedNow,
		Validate: true,
	})
	tests := []struct {
		name  string
		rec   Record
		pages int
	}{
		{"quote", quoteWithItems(3), 1},
		{"long quote", quoteWithItems(40), 2},
		{"delivery note", &DeliveryNoteRecord{RecordHeader: RecordHeader{ID: "BL-2", PartyName: "Café Élysée", Items: []LineItem{{Designation: "Câble", QuantityOrdered: 2, QuantityFulfilled: 1}}}}, 1},
		{"empty event report", &EventReportRecord{RecordHeader: RecordHeader{ID: "EV-1"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Render(context.Background(), tt.rec)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.HasPrefix(string(res.Data), "%PDF-") {
				t.Fatalf("output is not a PDF")
			}
			n, err := PageCount(res.Data)
			if err != nil {
				t.Fatalf("PageCount: %v", err)
			}
			if n != tt.pages || res.Pages != tt.pages {
				t.Errorf("pages = %d (result %d), want %d", n, res.Pages, tt.pages)
			}
		})
	}
}

func TestDirStoreRejectsPaths(t *testing.T) {
	s := DirStore{Dir: t.TempDir()}
	if err := s.Save(context.Background(), "../escape.pdf", []byte("x")); err == nil {
		t.Error("expected an error for a path filename")
	}
}

func TestFPDFSurfaceCloseTwice(t *testing.T) {
	s := NewFPDFSurface(A4Size, Metadata{})
	if err := s.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := s.Serialize(io.Discard); err == nil {
		t.Error("serialize after close should fail")
	}
}
