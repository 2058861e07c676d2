package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DocumentKind is the type of a business document.
type DocumentKind string

const (
	KindQuote        DocumentKind = "quote"
	KindInvoice      DocumentKind = "invoice"
	KindDeliveryNote DocumentKind = "delivery_note"
	KindEventReport  DocumentKind = "event_report"
)

// numberPrefixes maps kinds to the prefix of their document numbers.
var numberPrefixes = map[DocumentKind]string{
	KindQuote:        "DEV",
	KindInvoice:      "FAC",
	KindDeliveryNote: "BL",
	KindEventReport:  "EV",
}

// Valid reports whether k is a known kind.
func (k DocumentKind) Valid() bool {
	_, ok := numberPrefixes[k]
	return ok
}

// DocumentStatus is stored as-is and printed on the document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusFinal     DocumentStatus = "final"
	StatusPaid      DocumentStatus = "paid"
	StatusCancelled DocumentStatus = "cancelled"
	StatusDelivered DocumentStatus = "delivered"
	StatusPartial   DocumentStatus = "partial"
	StatusConfirmed DocumentStatus = "confirmed"
)

// Document is a quote, invoice, delivery note or event report. Fields that
// do not apply to a kind stay empty.
type Document struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Kind      DocumentKind   `gorm:"size:20;index;not null" json:"kind"`
	Number    string         `gorm:"size:50;uniqueIndex" json:"number"`
	Reference string         `gorm:"size:100" json:"reference,omitempty"`
	Status    DocumentStatus `gorm:"size:20;default:'draft'" json:"status"`

	// Client relationship
	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	IssueDate time.Time  `gorm:"not null" json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	// Quote and invoice
	PaymentTerms    string  `gorm:"size:500" json:"payment_terms,omitempty"`
	TaxRate         float64 `gorm:"type:decimal(5,4);not null;default:0.2" json:"tax_rate"`
	DiscountAmount  float64 `gorm:"type:decimal(10,2);default:0" json:"discount_amount,omitempty"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0" json:"discount_percent,omitempty"`

	// Delivery note
	QuoteNumber     string `gorm:"size:50" json:"quote_number,omitempty"`
	DeliveryAddress string `gorm:"size:500" json:"delivery_address,omitempty"`
	Deliverer       string `gorm:"size:255" json:"deliverer,omitempty"`
	Recipient       string `gorm:"size:255" json:"recipient,omitempty"`

	// Event report
	EventName string     `gorm:"size:255" json:"event_name,omitempty"`
	Location  string     `gorm:"size:255" json:"location,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Manager   string     `gorm:"size:255" json:"manager,omitempty"`

	Items []DocumentItem `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// IsPriced reports whether the document carries prices and totals.
func (d *Document) IsPriced() bool {
	return d.Kind == KindQuote || d.Kind == KindInvoice
}

// DocumentItem is one line of a document.
type DocumentItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Parent document
	DocumentID uint      `gorm:"index;not null" json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"-"`

	Reference   string `gorm:"size:100" json:"reference,omitempty"`
	Designation string `gorm:"size:255;not null" json:"designation"`
	Description string `gorm:"size:500" json:"description,omitempty"`

	// QuantityFulfilled is what was delivered (delivery note) or confirmed
	// (event report).
	QuantityOrdered   int     `gorm:"not null;default:1" json:"quantity_ordered"`
	QuantityFulfilled int     `gorm:"not null;default:0" json:"quantity_fulfilled"`
	UnitPrice         float64 `gorm:"type:decimal(10,2);default:0" json:"unit_price,omitempty"`
	DiscountPercent   float64 `gorm:"type:decimal(5,2);default:0" json:"discount_percent,omitempty"`
	Condition         string  `gorm:"size:100" json:"condition,omitempty"`

	// Position for ordering
	Position int `gorm:"default:0" json:"position"`
}

// GenerateNumber returns the next number of kind for year.
// Format: PREFIX-YYYY-NNNN (e.g., FAC-2025-0001)
func GenerateNumber(db *gorm.DB, kind DocumentKind, year int) (string, error) {
	prefix, ok := numberPrefixes[kind]
	if !ok {
		return "", fmt.Errorf("unknown document kind %q", kind)
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	var count int64
	err := db.Model(&Document{}).
		Where("kind = ? AND issue_date >= ? AND issue_date < ?", kind, from, from.AddDate(1, 0, 0)).
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, count+1), nil
}
