package pdf

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant names a document layout.
type Variant string

const (
	VariantQuote        Variant = "quote"
	VariantInvoice      Variant = "invoice"
	VariantDeliveryNote Variant = "delivery-note"
	VariantEventReport  Variant = "event-report"
)

// ParseVariant accepts the variant names used in URLs and on the command line.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quote", "devis":
		return VariantQuote, true
	case "invoice", "facture":
		return VariantInvoice, true
	case "delivery-note", "delivery_note", "bl":
		return VariantDeliveryNote, true
	case "event-report", "event_report", "event":
		return VariantEventReport, true
	}
	return "", false
}

// NewRecord returns an empty record of variant v, ready to be decoded into.
func NewRecord(v Variant) Record {
	switch v {
	case VariantDeliveryNote:
		return &DeliveryNoteRecord{}
	case VariantEventReport:
		return &EventReportRecord{}
	}
	return &QuoteInvoiceRecord{Kind: v}
}

// fallback substitutes missing display fields.
const fallback = "N/A"

// Record is a document to render: *QuoteInvoiceRecord, *DeliveryNoteRecord
// or *EventReportRecord.
type Record interface {
	Header() *RecordHeader
	Variant() Variant
}

// RecordHeader holds the fields every document carries.
type RecordHeader struct {
	ID        string     `json:"id"`
	PartyName string     `json:"party_name"`
	Date      string     `json:"date"`
	Items     []LineItem `json:"items"`
	Notes     string     `json:"notes,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// Header returns h itself so embedding types satisfy Record.
func (h *RecordHeader) Header() *RecordHeader { return h }

// normalized returns a copy with missing display fields replaced by
// fallbacks and negative quantities clamped to zero.
func (h RecordHeader) normalized() RecordHeader {
	out := h
	out.ID = orFallback(h.ID)
	out.PartyName = orFallback(h.PartyName)
	out.Date = orFallback(h.Date)
	out.Items = make([]LineItem, len(h.Items))
	for i, it := range h.Items {
		out.Items[i] = it.normalized()
	}
	return out
}

func orFallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Party is a counterparty block: client, delivery site.
type Party struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Lines returns the non-empty detail lines of the party, address lines
// split on newlines.
func (p Party) Lines() []string {
	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	add(p.Name)
	add(p.Contact)
	for _, l := range strings.Split(p.Address, "\n") {
		add(l)
	}
	contact := strings.TrimSpace(strings.Join(nonEmpty(p.Phone, p.Email), " - "))
	add(contact)
	return lines
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LineItem is one row of a document.
type LineItem struct {
	Designation       string  `json:"designation"`
	Description       string  `json:"description,omitempty"`
	Reference         string  `json:"reference,omitempty"`
	QuantityOrdered   int     `json:"quantity_ordered"`
	QuantityFulfilled int     `json:"quantity_fulfilled"`
	UnitPrice         float64 `json:"unit_price,omitempty"`
	DiscountPercent   float64 `json:"discount_percent,omitempty"`
	Condition         string  `json:"condition,omitempty"`
}

func (it LineItem) normalized() LineItem {
	it.Designation = orFallback(it.Designation)
	it.QuantityOrdered = max(it.QuantityOrdered, 0)
	it.QuantityFulfilled = max(it.QuantityFulfilled, 0)
	it.UnitPrice = nonNegative(it.UnitPrice)
	it.DiscountPercent = clampPercent(it.DiscountPercent)
	return it
}

// nonNegative maps negative and non-finite values to 0.
func nonNegative(v float64) float64 {
	if !(v >= 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Remaining is the quantity still to fulfil. Over-fulfilment is negative.
func (it LineItem) Remaining() int {
	return it.QuantityOrdered - it.QuantityFulfilled
}

// LineTotal is quantity x unit price x (1 - discount/100).
func (it LineItem) LineTotal() float64 {
	return it.lineTotal().InexactFloat64()
}

func (it LineItem) lineTotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(max(it.QuantityOrdered, 0)))
	price := decimal.NewFromFloat(nonNegative(it.UnitPrice))
	factor := hundred.Sub(decimal.NewFromFloat(clampPercent(it.DiscountPercent))).Div(hundred)
	return qty.Mul(price).Mul(factor)
}

// Fulfilment classifies the fulfilled quantity against the ordered one.
func (it LineItem) Fulfilment() Tone {
	switch {
	case it.QuantityFulfilled == it.QuantityOrdered:
		return ToneGood
	case it.QuantityFulfilled == 0 || it.QuantityFulfilled > it.QuantityOrdered:
		return ToneBad
	default:
		return ToneWarn
	}
}

// QuoteInvoiceRecord is a quote or an invoice.
type QuoteInvoiceRecord struct {
	RecordHeader

	Kind            Variant `json:"kind"`
	Client          Party   `json:"client"`
	TaxRate         float64 `json:"tax_rate"`
	DiscountAmount  float64 `json:"discount_amount,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	PaymentTerms    string  `json:"payment_terms,omitempty"`
	DueDate         string  `json:"due_date,omitempty"`
	Reference       string  `json:"reference,omitempty"`
}

// Variant returns VariantInvoice for invoices and VariantQuote otherwise.
func (r *QuoteInvoiceRecord) Variant() Variant {
	if r.Kind == VariantInvoice {
		return VariantInvoice
	}
	return VariantQuote
}

// Discount returns the document-level discount rule.
func (r *QuoteInvoiceRecord) Discount() Discount {
	return Discount{Amount: r.DiscountAmount, Percent: r.DiscountPercent}
}

// Totals recomputes the totals from the items.
func (r *QuoteInvoiceRecord) Totals() Totals {
	return ComputeTotals(r.Items, r.Discount(), r.TaxRate)
}

// DeliveryNoteRecord is a delivery note.
type DeliveryNoteRecord struct {
	RecordHeader

	Client          Party  `json:"client"`
	DeliveryAddress Party  `json:"delivery_address"`
	QuoteRef        string `json:"quote_ref,omitempty"`
	Deliverer       string `json:"deliverer,omitempty"`
	Recipient       string `json:"recipient,omitempty"`
}

// Variant returns VariantDeliveryNote.
func (r *DeliveryNoteRecord) Variant() Variant { return VariantDeliveryNote }

// EventReportRecord lists the equipment planned and confirmed for an event.
type EventReportRecord struct {
	RecordHeader

	Client    Party  `json:"client"`
	EventName string `json:"event_name"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Manager   string `json:"manager,omitempty"`
}

// Variant returns VariantEventReport.
func (r *EventReportRecord) Variant() Variant { return VariantEventReport }

// QuantityTotals sums ordered, fulfilled and remaining quantities.
type QuantityTotals struct {
	Ordered   int
	Fulfilled int
	Remaining int
}

// SumQuantities totals the quantity columns of items.
func SumQuantities(items []LineItem) QuantityTotals {
	var q QuantityTotals
	for _, it := range items {
		q.Ordered += it.QuantityOrdered
		q.Fulfilled += it.QuantityFulfilled
		q.Remaining += it.Remaining()
	}
	return q
}
