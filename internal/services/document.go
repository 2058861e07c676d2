package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/go-documents/i18n"
	"github.com/diewo77/go-documents/internal/models"
	"github.com/diewo77/go-documents/pdf"
)

// ErrNotFound is returned for unknown document ids.
var ErrNotFound = errors.New("document not found")

const displayDate = "02/01/2006"

// Renderer is the part of *pdf.Renderer the service needs.
type Renderer interface {
	Render(ctx context.Context, rec pdf.Record) (*pdf.Result, error)
}

type DocumentService struct {
	db       *gorm.DB
	renderer Renderer
}

func NewDocumentService(db *gorm.DB, renderer Renderer) *DocumentService {
	return &DocumentService{db: db, renderer: renderer}
}

// DocumentSummary is one entry of the document list.
type DocumentSummary struct {
	ID     uint                  `json:"id"`
	Kind   models.DocumentKind   `json:"kind"`
	Number string                `json:"number"`
	Client string                `json:"client"`
	Date   string                `json:"date"`
	Status models.DocumentStatus `json:"status"`
	Total  *float64              `json:"total,omitempty"`
}

// List returns every document, most recent first. Priced documents carry
// their grand total.
func (s *DocumentService) List(ctx context.Context) ([]DocumentSummary, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Order("issue_date DESC, id DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	out := make([]DocumentSummary, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		sum := DocumentSummary{
			ID:     d.ID,
			Kind:   d.Kind,
			Number: d.Number,
			Date:   d.IssueDate.Format(displayDate),
			Status: d.Status,
		}
		if d.Client != nil {
			sum.Client = d.Client.Name
		}
		if d.IsPriced() {
			total := s.ComputeTotals(d).GrandTotal
			sum.Total = &total
		}
		out = append(out, sum)
	}
	return out, nil
}

// ComputeTotals derives subtotal, discount, VAT and grand total from the items.
func (s *DocumentService) ComputeTotals(doc *models.Document) pdf.Totals {
	return pdf.ComputeTotals(lineItems(doc.Items), pdf.Discount{Amount: doc.DiscountAmount, Percent: doc.DiscountPercent}, doc.TaxRate)
}

// Load returns the document with its client and items in position order.
func (s *DocumentService) Load(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %d: %w", id, err)
	}
	return &doc, nil
}

// Render loads a stored document and renders it.
func (s *DocumentService) Render(ctx context.Context, id uint) (*pdf.Result, error) {
	doc, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, err := ToRecord(doc)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, rec)
}

// LoadIssuer returns the company printed on documents. An empty database
// yields an empty issuer.
func LoadIssuer(ctx context.Context, db *gorm.DB) (pdf.Issuer, error) {
	var c models.CompanySettings
	res := db.WithContext(ctx).Order("id ASC").Limit(1).Find(&c)
	if res.Error != nil {
		return pdf.Issuer{}, fmt.Errorf("load company settings: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pdf.Issuer{}, nil
	}
	return pdf.Issuer{
		Name:      c.Name,
		LegalForm: c.LegalForm,
		Capital:   c.Capital,
		Address:   c.FullAddress(),
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		SIRET:     c.SIRET,
		RCS:       c.RCS,
		VATNumber: c.VATNumber,
	}, nil
}

// ToRecord maps a stored document to the record of its kind.
func ToRecord(doc *models.Document) (pdf.Record, error) {
	var client models.Client
	if doc.Client != nil {
		client = *doc.Client
	}
	party := pdf.Party{
		Name:    client.Name,
		Contact: client.Contact,
		Address: client.FullAddress(),
		Phone:   client.Phone,
		Email:   client.Email,
	}
	header := pdf.RecordHeader{
		ID:        doc.Number,
		PartyName: client.Name,
		Date:      doc.IssueDate.Format(displayDate),
		Items:     lineItems(doc.Items),
		Notes:     doc.Notes,
		Status:    string(doc.Status),
	}

	switch doc.Kind {
	case models.KindQuote, models.KindInvoice:
		kind := pdf.VariantQuote
		if doc.Kind == models.KindInvoice {
			kind = pdf.VariantInvoice
		}
		return &pdf.QuoteInvoiceRecord{
			RecordHeader:    header,
			Kind:            kind,
			Client:          party,
			TaxRate:         doc.TaxRate,
			DiscountAmount:  doc.DiscountAmount,
			DiscountPercent: doc.DiscountPercent,
			PaymentTerms:    doc.PaymentTerms,
			DueDate:         formatDate(doc.DueDate),
			Reference:       doc.Reference,
		}, nil
	case models.KindDeliveryNote:
		rec := &pdf.DeliveryNoteRecord{
			RecordHeader: header,
			Client:       party,
			QuoteRef:     doc.QuoteNumber,
			Deliverer:    doc.Deliverer,
			Recipient:    doc.Recipient,
		}
		if strings.TrimSpace(doc.DeliveryAddress) != "" {
			rec.DeliveryAddress = pdf.Party{Name: client.Name, Address: doc.DeliveryAddress}
		}
		return rec, nil
	case models.KindEventReport:
		return &pdf.EventReportRecord{
			RecordHeader: header,
			Client:       party,
			EventName:    doc.EventName,
			Location:     doc.Location,
			StartDate:    formatDate(doc.StartDate),
			EndDate:      formatDate(doc.EndDate),
			Manager:      doc.Manager,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", pdf.ErrUnknownVariant, doc.Kind)
}

func lineItems(items []models.DocumentItem) []pdf.LineItem {
	out := make([]pdf.LineItem, len(items))
	for i, it := range items {
		out[i] = pdf.LineItem{
			Designation:       it.Designation,
			Description:       it.Description,
			Reference:         it.Reference,
			QuantityOrdered:   it.QuantityOrdered,
			QuantityFulfilled: it.QuantityFulfilled,
			UnitPrice:         it.UnitPrice,
			DiscountPercent:   it.DiscountPercent,
			Condition:         it.Condition,
		}
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDate)
}

// ByLanguage picks the renderer of the request language, falling back to
// the default language.
type ByLanguage map[string]*pdf.Renderer

func (b ByLanguage) Render(ctx context.Context, rec pdf.Record) (*pdf.Result, error) {
	r, ok := b[i18n.LangFromContext(ctx)]
	if !ok {
		r, ok = b[i18n.DefaultLang]
	}
	if !ok {
		return nil, errors.New("no renderer configured")
	}
	return r.Render(ctx, rec)
}
