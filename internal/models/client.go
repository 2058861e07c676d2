package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a customer documents are addressed to.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Client information
	Name    string `gorm:"size:255;not null" json:"name"`
	Contact string `gorm:"size:255" json:"contact,omitempty"`
	Email   string `gorm:"size:255" json:"email,omitempty"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`

	// Address
	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`

	// Relations
	Documents []Document `gorm:"foreignKey:ClientID" json:"documents,omitempty"`
}

// FullAddress returns the formatted full address.
func (c *Client) FullAddress() string {
	return formatAddress(c.Address, c.PostalCode, c.City, c.Country)
}

func formatAddress(street, postalCode, city, country string) string {
	addr := street
	if postalCode != "" || city != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += postalCode
		if postalCode != "" && city != "" {
			addr += " "
		}
		addr += city
	}
	if country != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += country
	}
	return addr
}
