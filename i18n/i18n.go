// Package i18n holds the fr/en labels printed on documents and returned in
// validation errors.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

// DefaultLang is used when no supported language is requested.
const DefaultLang = "fr"

type langKey struct{}

// WithLang stores the language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language stored in ctx, or DefaultLang.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// DetectLanguage picks the first supported language of an Accept-Language
// header value.
func DetectLanguage(header string) string {
	if lang, ok := MatchLanguage(header); ok {
		return lang
	}
	return DefaultLang
}

// MatchLanguage is DetectLanguage without the default: ok is false when the
// header names no supported language.
func MatchLanguage(header string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if _, ok := translations[base.String()]; ok {
			return base.String(), true
		}
	}
	return "", false
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// T translates code. Unknown languages fall back to French, unknown codes
// to the code itself.
func T(lang, code string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[code]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Translator returns T bound to lang.
func Translator(lang string) func(code string) string {
	return func(code string) string { return T(lang, code) }
}

var translations = map[string]map[string]string{
	"fr": {
		// validation
		"required":         "Requis",
		"must_be_positive": "Doit être positif",
		"out_of_range":     "Hors limites",

		// document titles
		"doc.quote":         "DEVIS",
		"doc.invoice":       "FACTURE",
		"doc.delivery_note": "BON DE LIVRAISON",
		"doc.event_report":  "RAPPORT D'ÉVÉNEMENT",
		"doc.number":        "N°",
		"doc.continued":     "(suite)",
		"doc.date":          "Date",

		// info blocks
		"info.issuer":   "ÉMETTEUR",
		"info.client":   "CLIENT",
		"info.delivery": "LIVRAISON",
		"info.event":    "ÉVÉNEMENT",
		"info.quote":    "Devis",
		"info.ref":      "Réf.",
		"info.due":      "Échéance",
		"info.location": "Lieu",
		"info.period":   "Période",
		"info.manager":  "Responsable",

		// table columns
		"col.ref":         "Réf.",
		"col.designation": "Désignation",
		"col.qty":         "Qté",
		"col.unit_price":  "P.U. HT",
		"col.discount":    "Remise",
		"col.total":       "Total HT",
		"col.ordered":     "Commandé",
		"col.delivered":   "Livré",
		"col.remaining":   "Reste",
		"col.condition":   "État",
		"col.planned":     "Prévu",
		"col.confirmed":   "Confirmé",
		"table.empty":     "Aucun article",

		// summary
		"sum.subtotal":       "Total HT",
		"sum.discount":       "Remise",
		"sum.tax":            "TVA",
		"sum.grand_total":    "Total TTC",
		"sum.ordered":        "Total commandé",
		"sum.delivered":      "Total livré",
		"sum.remaining":      "Reste à livrer",
		"sum.planned":        "Total prévu",
		"sum.confirmed":      "Total confirmé",
		"sum.to_confirm":     "Reste à confirmer",
		"notes.title":        "NOTES",
		"notes.terms":        "CONDITIONS DE PAIEMENT",
		"sig.issuer":         "POUR L'ENTREPRISE",
		"sig.approval":       "BON POUR ACCORD (CLIENT)",
		"sig.deliverer":      "LE LIVREUR",
		"sig.recipient":      "LE RÉCEPTIONNAIRE",
		"sig.manager":        "LE RESPONSABLE",
		"sig.client":         "LE CLIENT",
		"sig.name":           "Nom :",
		"sig.date":           "Date :",
		"sig.signature":      "Signature",
		"footer.generated":   "Document généré le %s à %s",
		"footer.page":        "Page %d / %d",
		"issuer.capital":     "au capital de",
		"issuer.siret":       "SIRET",
		"issuer.rcs":         "RCS",
		"issuer.vat":         "TVA intracom.",
		"status.draft":       "Brouillon",
		"status.final":       "Émis",
		"status.paid":        "Payé",
		"status.cancelled":   "Annulé",
		"status.delivered":   "Livré",
		"status.partial":     "Partiel",
		"status.pending":     "En attente",
		"status.confirmed":   "Confirmé",
		"status.in_progress": "En cours",
	},
	"en": {
		"required":         "Required",
		"must_be_positive": "Must be positive",
		"out_of_range":     "Out of range",

		"doc.quote":         "QUOTE",
		"doc.invoice":       "INVOICE",
		"doc.delivery_note": "DELIVERY NOTE",
		"doc.event_report":  "EVENT REPORT",
		"doc.number":        "No.",
		"doc.continued":     "(continued)",
		"doc.date":          "Date",

		"info.issuer":   "FROM",
		"info.client":   "CLIENT",
		"info.delivery": "DELIVERY",
		"info.event":    "EVENT",
		"info.quote":    "Quote",
		"info.ref":      "Ref.",
		"info.due":      "Due",
		"info.location": "Venue",
		"info.period":   "Period",
		"info.manager":  "Manager",

		"col.ref":         "Ref.",
		"col.designation": "Item",
		"col.qty":         "Qty",
		"col.unit_price":  "Unit price",
		"col.discount":    "Disc.",
		"col.total":       "Total",
		"col.ordered":     "Ordered",
		"col.delivered":   "Delivered",
		"col.remaining":   "Remaining",
		"col.condition":   "Condition",
		"col.planned":     "Planned",
		"col.confirmed":   "Confirmed",
		"table.empty":     "No items",

		"sum.subtotal":       "Subtotal",
		"sum.discount":       "Discount",
		"sum.tax":            "VAT",
		"sum.grand_total":    "Total",
		"sum.ordered":        "Total ordered",
		"sum.delivered":      "Total delivered",
		"sum.remaining":      "Left to deliver",
		"sum.planned":        "Total planned",
		"sum.confirmed":      "Total confirmed",
		"sum.to_confirm":     "Left to confirm",
		"notes.title":        "NOTES",
		"notes.terms":        "PAYMENT TERMS",
		"sig.issuer":         "FOR THE COMPANY",
		"sig.approval":       "ACCEPTED BY (CLIENT)",
		"sig.deliverer":      "DELIVERED BY",
		"sig.recipient":      "RECEIVED BY",
		"sig.manager":        "EVENT MANAGER",
		"sig.client":         "CLIENT",
		"sig.name":           "Name:",
		"sig.date":           "Date:",
		"sig.signature":      "Signature",
		"footer.generated":   "Generated on %s at %s",
		"footer.page":        "Page %d / %d",
		"issuer.capital":     "with a capital of",
		"issuer.siret":       "SIRET",
		"issuer.rcs":         "RCS",
		"issuer.vat":         "VAT no.",
		"status.draft":       "Draft",
		"status.final":       "Issued",
		"status.paid":        "Paid",
		"status.cancelled":   "Cancelled",
		"status.delivered":   "Delivered",
		"status.partial":     "Partial",
		"status.pending":     "Pending",
		"status.confirmed":   "Confirmed",
		"status.in_progress": "In progress",
	},
}
