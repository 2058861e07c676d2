package pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const designationKey = "designation"

// VariantConfig is everything that differs between document layouts:
// title, filename prefix, table columns and which optional blocks apply.
type VariantConfig struct {
	Variant        Variant
	TitleLabel     string
	FilenamePrefix string
	Columns        []Column
	RowHeight      float64
	SummaryAnchor  string
	Signatures     bool
}

// Column widths add up to the A4 content width (515pt).
var variantConfigs = map[Variant]VariantConfig{
	VariantQuote: {
		Variant:        VariantQuote,
		TitleLabel:     "doc.quote",
		FilenamePrefix: "Devis",
		Columns:        priceColumns,
		RowHeight:      18,
		SummaryAnchor:  "unit_price",
		Signatures:     true,
	},
	VariantInvoice: {
		Variant:        VariantInvoice,
		TitleLabel:     "doc.invoice",
		FilenamePrefix: "Facture",
		Columns:        priceColumns,
		RowHeight:      18,
		SummaryAnchor:  "unit_price",
	},
	VariantDeliveryNote: {
		Variant:        VariantDeliveryNote,
		TitleLabel:     "doc.delivery_note",
		FilenamePrefix: "BL",
		Columns: []Column{
			{Key: "ref", Label: "col.ref", Width: 55, MaxChars: 10},
			{Key: designationKey, Label: "col.designation", Width: 200, MaxChars: 36},
			{Key: "ordered", Label: "col.ordered", Width: 55, Align: AlignRight},
			{Key: "fulfilled", Label: "col.delivered", Width: 55, Align: AlignRight},
			{Key: "remaining", Label: "col.remaining", Width: 55, Align: AlignRight},
			{Key: "condition", Label: "col.condition", Width: 95, MaxChars: 18},
		},
		RowHeight:     16,
		SummaryAnchor: "ordered",
		Signatures:    true,
	},
	VariantEventReport: {
		Variant:        VariantEventReport,
		TitleLabel:     "doc.event_report",
		FilenamePrefix: "Rapport",
		Columns: []Column{
			{Key: designationKey, Label: "col.designation", Width: 225, MaxChars: 42},
			{Key: "ref", Label: "col.ref", Width: 60, MaxChars: 11},
			{Key: "planned", Label: "col.planned", Width: 70, Align: AlignRight},
			{Key: "confirmed", Label: "col.confirmed", Width: 80, Align: AlignRight},
			{Key: "remaining", Label: "col.remaining", Width: 80, Align: AlignRight},
		},
		RowHeight:     14,
		SummaryAnchor: "planned",
		Signatures:    true,
	},
}

var priceColumns = []Column{
	{Key: "ref", Label: "col.ref", Width: 55, MaxChars: 10},
	{Key: designationKey, Label: "col.designation", Width: 215, MaxChars: 40},
	{Key: "qty", Label: "col.qty", Width: 45, Align: AlignRight},
	{Key: "unit_price", Label: "col.unit_price", Width: 75, Align: AlignRight},
	{Key: "discount", Label: "col.discount", Width: 45, Align: AlignRight},
	{Key: "total", Label: "col.total", Width: 80, Align: AlignRight},
}

// ConfigFor returns the layout of variant.
func ConfigFor(v Variant) (VariantConfig, bool) {
	cfg, ok := variantConfigs[v]
	return cfg, ok
}

// labeler carries what the adapters need to turn a record into content.
type labeler struct {
	t        func(string) string
	currency string
	issuer   Issuer
}

func (lb labeler) status(s string) string {
	if s == "" {
		return ""
	}
	code := "status." + strings.ToLower(s)
	if label := lb.t(code); label != code {
		return label
	}
	return s
}

// adapt turns rec into content for its variant.
func adapt(rec Record, cfg VariantConfig, lb labeler) (content, error) {
	switch r := rec.(type) {
	case *QuoteInvoiceRecord:
		return quoteInvoiceContent(r, cfg, lb), nil
	case *DeliveryNoteRecord:
		return deliveryNoteContent(r, cfg, lb), nil
	case *EventReportRecord:
		return eventReportContent(r, cfg, lb), nil
	}
	return content{}, fmt.Errorf("%w: %T", ErrUnknownVariant, rec)
}

func baseContent(h RecordHeader, cfg VariantConfig, lb labeler) content {
	return content{
		Title:  lb.t(cfg.TitleLabel),
		ID:     h.ID,
		Date:   h.Date,
		Status: lb.status(h.Status),
	}
}

// partyLines falls back to the record's party name when the party block
// has no name.
func partyLines(p Party, name string) []string {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = name
	}
	return p.Lines()
}

func quoteInvoiceContent(r *QuoteInvoiceRecord, cfg VariantConfig, lb labeler) content {
	h := r.RecordHeader.normalized()
	c := baseContent(h, cfg, lb)

	client := partyLines(r.Client, h.PartyName)
	if r.Reference != "" {
		client = insertAt(client, 1, lb.t("info.ref")+" "+r.Reference)
	}
	c.Info = [2]InfoBox{
		{Title: lb.t("info.issuer"), Lines: lb.issuer.Party().Lines()},
		{Title: lb.t("info.client"), Lines: client},
	}

	for _, it := range h.Items {
		discount := ""
		if it.DiscountPercent > 0 {
			discount = FormatPercent(it.DiscountPercent)
		}
		c.Rows = append(c.Rows, Row{
			"ref":          {Text: it.Reference, Tone: ToneMuted},
			designationKey: {Text: it.Designation, Sub: it.Description},
			"qty":          {Text: strconv.Itoa(it.QuantityOrdered)},
			"unit_price":   {Text: FormatNumber(it.UnitPrice, 2)},
			"discount":     {Text: discount, Tone: ToneWarn},
			"total":        {Text: FormatNumber(it.LineTotal(), 2), Bold: true},
		})
	}

	t := ComputeTotals(h.Items, r.Discount(), r.TaxRate)
	sum := Summary{Lines: []SummaryLine{{Label: lb.t("sum.subtotal"), Value: FormatCurrency(t.Subtotal, lb.currency)}}}
	if t.HasDiscount() {
		label := lb.t("sum.discount")
		if r.DiscountAmount <= 0 && r.DiscountPercent > 0 {
			label += " (" + FormatPercent(r.DiscountPercent) + ")"
		}
		sum.Lines = append(sum.Lines, SummaryLine{Label: label, Value: "- " + FormatCurrency(t.DiscountAmount, lb.currency), Tone: ToneWarn})
	}
	sum.Lines = append(sum.Lines, SummaryLine{
		Label: lb.t("sum.tax") + " (" + FormatPercent(math.Round(t.TaxRate*10000)/100) + ")",
		Value: FormatCurrency(t.TaxAmount, lb.currency),
	})
	sum.Total = SummaryLine{Label: lb.t("sum.grand_total"), Value: FormatCurrency(t.GrandTotal, lb.currency)}
	c.Summary = &sum

	terms := r.PaymentTerms
	if r.DueDate != "" {
		terms = strings.TrimSpace(lb.t("info.due") + " : " + r.DueDate + ". " + terms)
	}
	c.Notes = []NoteBlock{
		{Title: lb.t("notes.title"), Text: h.Notes},
		{Title: lb.t("notes.terms"), Text: terms},
	}
	if cfg.Signatures {
		c.Signatures = []Signature{
			{Title: lb.t("sig.issuer"), Name: lb.issuer.Name},
			{Title: lb.t("sig.approval"), Name: r.Client.Contact},
		}
	}
	return c
}

func deliveryNoteContent(r *DeliveryNoteRecord, cfg VariantConfig, lb labeler) content {
	h := r.RecordHeader.normalized()
	c := baseContent(h, cfg, lb)

	client := partyLines(r.Client, h.PartyName)
	if r.QuoteRef != "" {
		client = insertAt(client, 1, lb.t("info.quote")+" "+r.QuoteRef)
	}
	delivery := r.DeliveryAddress.Lines()
	if len(delivery) == 0 {
		delivery = client
	}
	c.Info = [2]InfoBox{
		{Title: lb.t("info.client"), Lines: client},
		{Title: lb.t("info.delivery"), Lines: delivery},
	}

	for _, it := range h.Items {
		cond := it.Condition
		if cond == "" {
			cond = "-"
		}
		c.Rows = append(c.Rows, Row{
			"ref":          {Text: it.Reference, Tone: ToneMuted},
			designationKey: {Text: it.Designation, Sub: it.Description},
			"ordered":      {Text: strconv.Itoa(it.QuantityOrdered)},
			"fulfilled":    {Text: strconv.Itoa(it.QuantityFulfilled), Tone: it.Fulfilment(), Bold: true},
			"remaining":    remainingCell(it),
			"condition":    {Text: cond, Tone: ToneMuted},
		})
	}

	q := SumQuantities(h.Items)
	c.Summary = &Summary{
		Lines: []SummaryLine{
			{Label: lb.t("sum.ordered"), Value: strconv.Itoa(q.Ordered)},
			{Label: lb.t("sum.delivered"), Value: strconv.Itoa(q.Fulfilled), Tone: quantityTone(q.Ordered, q.Fulfilled)},
		},
		Total: SummaryLine{Label: lb.t("sum.remaining"), Value: strconv.Itoa(q.Remaining)},
	}
	c.Notes = []NoteBlock{{Title: lb.t("notes.title"), Text: h.Notes}}
	if cfg.Signatures {
		c.Signatures = []Signature{
			{Title: lb.t("sig.deliverer"), Name: r.Deliverer},
			{Title: lb.t("sig.recipient"), Name: r.Recipient},
		}
	}
	return c
}

func eventReportContent(r *EventReportRecord, cfg VariantConfig, lb labeler) content {
	h := r.RecordHeader.normalized()
	c := baseContent(h, cfg, lb)

	event := nonEmpty(orFallback(r.EventName))
	if r.Location != "" {
		event = append(event, lb.t("info.location")+" : "+r.Location)
	}
	if period := period(r.StartDate, r.EndDate); period != "" {
		event = append(event, lb.t("info.period")+" : "+period)
	}
	if r.Manager != "" {
		event = append(event, lb.t("info.manager")+" : "+r.Manager)
	}
	c.Info = [2]InfoBox{
		{Title: lb.t("info.client"), Lines: partyLines(r.Client, h.PartyName)},
		{Title: lb.t("info.event"), Lines: event},
	}

	for _, it := range h.Items {
		c.Rows = append(c.Rows, Row{
			designationKey: {Text: it.Designation, Sub: it.Description},
			"ref":          {Text: it.Reference, Tone: ToneMuted},
			"planned":      {Text: strconv.Itoa(it.QuantityOrdered)},
			"confirmed":    {Text: strconv.Itoa(it.QuantityFulfilled), Tone: it.Fulfilment(), Bold: true},
			"remaining":    remainingCell(it),
		})
	}

	q := SumQuantities(h.Items)
	c.Summary = &Summary{
		Lines: []SummaryLine{
			{Label: lb.t("sum.planned"), Value: strconv.Itoa(q.Ordered)},
			{Label: lb.t("sum.confirmed"), Value: strconv.Itoa(q.Fulfilled), Tone: quantityTone(q.Ordered, q.Fulfilled)},
		},
		Total: SummaryLine{Label: lb.t("sum.to_confirm"), Value: strconv.Itoa(q.Remaining)},
	}
	c.Notes = []NoteBlock{{Title: lb.t("notes.title"), Text: h.Notes}}
	if cfg.Signatures {
		c.Signatures = []Signature{
			{Title: lb.t("sig.manager"), Name: r.Manager},
			{Title: lb.t("sig.client"), Name: r.Client.Contact},
		}
	}
	return c
}

// remainingCell shows the signed remaining quantity: green when nothing is
// outstanding, red otherwise. Over-fulfilment stays negative.
func remainingCell(it LineItem) Cell {
	rem := it.Remaining()
	tone := ToneBad
	if rem == 0 {
		tone = ToneGood
	}
	return Cell{Text: strconv.Itoa(rem), Tone: tone}
}

func quantityTone(ordered, fulfilled int) Tone {
	return LineItem{QuantityOrdered: ordered, QuantityFulfilled: fulfilled}.Fulfilment()
}

func period(start, end string) string {
	switch {
	case start != "" && end != "" && start != end:
		return start + " - " + end
	case start != "":
		return start
	}
	return end
}

func insertAt(lines []string, i int, line string) []string {
	if i > len(lines) {
		i = len(lines)
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:i]...)
	out = append(out, line)
	return append(out, lines[i:]...)
}
