package models

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestClient_FullAddress(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{
			name: "full address",
			client: Client{
				Address:    "123 Main St",
				PostalCode: "75001",
				City:       "Paris",
				Country:    "France",
			},
			want: "123 Main St\n75001 Paris\nFrance",
		},
		{
			name: "only city",
			client: Client{
				City: "Paris",
			},
			want: "Paris",
		},
		{
			name: "address and city",
			client: Client{
				Address: "123 Main St",
				City:    "Paris",
			},
			want: "123 Main St\nParis",
		},
		{
			name:   "empty",
			client: Client{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.FullAddress(); got != tt.want {
				t.Errorf("FullAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompanySettings_FullAddress(t *testing.T) {
	c := &CompanySettings{Address: "4 quai des Chartrons", PostalCode: "33000", City: "Bordeaux"}
	if got := c.FullAddress(); got != "4 quai des Chartrons\n33000 Bordeaux" {
		t.Errorf("FullAddress() = %q", got)
	}
}

func TestDocument_IsPriced(t *testing.T) {
	tests := []struct {
		kind DocumentKind
		want bool
	}{
		{KindQuote, true},
		{KindInvoice, true},
		{KindDeliveryNote, false},
		{KindEventReport, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			d := &Document{Kind: tt.kind}
			if got := d.IsPriced(); got != tt.want {
				t.Errorf("IsPriced() = %v, want %v", got, tt.want)
			}
			if !tt.kind.Valid() {
				t.Errorf("%q should be valid", tt.kind)
			}
		})
	}
	if DocumentKind("receipt").Valid() {
		t.Error("unknown kind reported valid")
	}
}

func TestGenerateNumber(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&Client{}, &Document{}, &DocumentItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	client := Client{Name: "Acme"}
	db.Create(&client)
	db.Create(&Document{Kind: KindInvoice, Number: "FAC-2025-0001", ClientID: client.ID, IssueDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)})
	db.Create(&Document{Kind: KindInvoice, Number: "FAC-2024-0001", ClientID: client.ID, IssueDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)})
	db.Create(&Document{Kind: KindQuote, Number: "DEV-2025-0001", ClientID: client.ID, IssueDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)})

	got, err := GenerateNumber(db, KindInvoice, 2025)
	if err != nil {
		t.Fatalf("GenerateNumber: %v", err)
	}
	if got != "FAC-2025-0002" {
		t.Errorf("GenerateNumber = %q, want FAC-2025-0002", got)
	}
	if got, _ := GenerateNumber(db, KindDeliveryNote, 2025); got != "BL-2025-0001" {
		t.Errorf("GenerateNumber(delivery note) = %q", got)
	}
	if _, err := GenerateNumber(db, "receipt", 2025); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
