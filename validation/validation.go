package validation

import (
	"fmt"
	"strings"

	"github.com/diewo77/go-documents/pdf"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Translate returns the violations with codes replaced by labels in lang.
func (v Violations) Translate(t func(string) string) map[string]string {
	out := make(map[string]string, len(v))
	for field, code := range v {
		out[field] = t(code)
	}
	return out
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeInt(field string, val int, v Violations) {
	if val < 0 {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// Record checks a record posted for rendering. The renderer itself copes with
// missing fields; these rules reject what a caller most likely got wrong.
func Record(rec pdf.Record) Violations {
	v := Violations{}
	if rec == nil || rec.Header() == nil {
		v["record"] = "required"
		return v
	}
	h := rec.Header()
	Required("id", h.ID, v)
	Required("party_name", h.PartyName, v)

	for i, it := range h.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		Required(prefix+"designation", it.Designation, v)
		NonNegativeInt(prefix+"quantity_ordered", it.QuantityOrdered, v)
		NonNegativeInt(prefix+"quantity_fulfilled", it.QuantityFulfilled, v)
		RangeFloat(prefix+"discount_percent", it.DiscountPercent, 0, 100, v)
		if it.UnitPrice < 0 {
			v[prefix+"unit_price"] = "must_be_positive"
		}
	}

	if q, ok := rec.(*pdf.QuoteInvoiceRecord); ok {
		RangeFloat("tax_rate", q.TaxRate, 0, 1, v)
		RangeFloat("discount_percent", q.DiscountPercent, 0, 100, v)
		if q.DiscountAmount < 0 {
			v["discount_amount"] = "must_be_positive"
		}
	}
	return v
}
