package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/go-documents/internal/models"
)

// Seed inserts demo data: the company, two clients and one document of
// each kind. Running it twice changes nothing.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		company := models.CompanySettings{
			Name:       "Sono Lumière Événements",
			LegalForm:  "SAS",
			Capital:    "20 000 EUR",
			Email:      "contact@sono-lumiere.fr",
			Phone:      "05 56 00 00 00",
			Website:    "sono-lumiere.fr",
			Address:    "12 rue des Faures",
			PostalCode: "33000",
			City:       "Bordeaux",
			SIRET:      "81234567800015",
			RCS:        "Bordeaux B 812 345 678",
			VATNumber:  "FR12812345678",
		}
		if err := tx.Where(models.CompanySettings{Name: company.Name}).FirstOrCreate(&company).Error; err != nil {
			return fmt.Errorf("seed company: %w", err)
		}

		mairie := models.Client{Name: "Mairie de Talence", Contact: "Service culturel", Address: "Rue du Professeur Arnozan", PostalCode: "33400", City: "Talence"}
		agence := models.Client{Name: "Agence Garonne Events", Contact: "Claire Martin", Email: "claire@garonne-events.fr", Address: "8 cours Victor Hugo", PostalCode: "33000", City: "Bordeaux"}
		for _, c := range []*models.Client{&mairie, &agence} {
			if err := tx.Where(models.Client{Name: c.Name}).FirstOrCreate(c).Error; err != nil {
				return fmt.Errorf("seed client %s: %w", c.Name, err)
			}
		}

		issued := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
		due := issued.AddDate(0, 0, 30)
		start := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		items := func() []models.DocumentItem {
			return []models.DocumentItem{
				{Position: 1, Reference: "ENC-15A", Designation: "Enceinte active 15\"", Description: "1000 W, pied inclus", QuantityOrdered: 4, QuantityFulfilled: 4, UnitPrice: 45},
				{Position: 2, Reference: "CON-X32", Designation: "Console numérique 32 voies", QuantityOrdered: 1, QuantityFulfilled: 1, UnitPrice: 180},
				{Position: 3, Reference: "PAR-LED", Designation: "Projecteur PAR LED", Description: "RGBW, DMX", QuantityOrdered: 12, QuantityFulfilled: 10, UnitPrice: 12, DiscountPercent: 10},
				{Position: 4, Reference: "CAB-XLR", Designation: "Câble XLR 10 m", QuantityOrdered: 20, QuantityFulfilled: 22, UnitPrice: 2, Condition: "Bon état"},
			}
		}

		docs := []models.Document{
			{Kind: models.KindQuote, Number: "DEV-2025-0001", Status: models.StatusFinal, ClientID: agence.ID, IssueDate: issued, TaxRate: 0.2, DiscountPercent: 5, Notes: "Livraison et reprise incluses.", PaymentTerms: "30 % d'acompte à la signature, solde à réception de facture.", Items: items()},
			{Kind: models.KindInvoice, Number: "FAC-2025-0001", Reference: "DEV-2025-0001", Status: models.StatusFinal, ClientID: agence.ID, IssueDate: issued, DueDate: &due, TaxRate: 0.2, DiscountAmount: 50, PaymentTerms: "Virement à 30 jours.", Items: items()},
			{Kind: models.KindDeliveryNote, Number: "BL-2025-0001", QuoteNumber: "DEV-2025-0001", Status: models.StatusPartial, ClientID: agence.ID, IssueDate: start, DeliveryAddress: "Parc Peixotto\n33400 Talence", Deliverer: "Julien", Recipient: "Claire Martin", Items: items()},
			{Kind: models.KindEventReport, Number: "EV-2025-0001", Status: models.StatusConfirmed, ClientID: mairie.ID, IssueDate: start, EventName: "Fête de la musique", Location: "Parc Peixotto", StartDate: &start, EndDate: &end, Manager: "Julien", Items: items()},
		}
		for i := range docs {
			var existing []models.Document
			res := tx.Where("number = ?", docs[i].Number).Limit(1).Find(&existing)
			if res.Error != nil {
				return fmt.Errorf("seed lookup %s: %w", docs[i].Number, res.Error)
			}
			if res.RowsAffected > 0 {
				continue
			}
			if err := tx.Create(&docs[i]).Error; err != nil {
				return fmt.Errorf("seed document %s: %w", docs[i].Number, err)
			}
		}
		return nil
	})
}
