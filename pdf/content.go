package pdf

import "strings"

// Issuer is the letterhead identity of the company issuing documents.
type Issuer struct {
	Name      string `json:"name"`
	LegalForm string `json:"legal_form,omitempty"`
	Capital   string `json:"capital,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	SIRET     string `json:"siret,omitempty"`
	RCS       string `json:"rcs,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
}

// Party returns the issuer as an info-block party.
func (i Issuer) Party() Party {
	return Party{Name: i.Name, Address: i.Address, Phone: i.Phone, Email: i.Email}
}

// legalLine is "SAS au capital de 10 000 EUR".
func (i Issuer) legalLine(t func(string) string) string {
	switch {
	case i.LegalForm != "" && i.Capital != "":
		return i.LegalForm + " " + t("issuer.capital") + " " + i.Capital
	case i.LegalForm != "":
		return i.LegalForm
	}
	return ""
}

// registrations returns the "SIRET : ..." style lines that are set.
func (i Issuer) registrations(t func(string) string) []string {
	var out []string
	if i.SIRET != "" {
		out = append(out, t("issuer.siret")+" : "+i.SIRET)
	}
	if i.RCS != "" {
		out = append(out, t("issuer.rcs")+" : "+i.RCS)
	}
	if i.VATNumber != "" {
		out = append(out, t("issuer.vat")+" : "+i.VATNumber)
	}
	return out
}

// identity is the one-line issuer identity printed in the footer.
func (i Issuer) identity(t func(string) string) string {
	parts := nonEmpty(orFallback(i.Name), i.legalLine(t))
	parts = append(parts, i.registrations(t)...)
	return strings.Join(parts, " - ")
}

// InfoBox is a titled block of at most four detail lines.
type InfoBox struct {
	Title string
	Lines []string
}

// Cell is one table cell. Sub is secondary text drawn after Text in a
// smaller muted face.
type Cell struct {
	Text string
	Sub  string
	Tone Tone
	Bold bool
}

// Row maps column keys to cells.
type Row map[string]Cell

// SummaryLine is one label/value pair of the summary box.
type SummaryLine struct {
	Label string
	Value string
	Tone  Tone
}

// Summary is the totals box: regular lines and an emphasized final line.
type Summary struct {
	Lines []SummaryLine
	Total SummaryLine
}

// NoteBlock is a titled free-text block.
type NoteBlock struct {
	Title string
	Text  string
}

// Signature is one signature box.
type Signature struct {
	Title string
	Name  string
}

// content is a record adapted to what the sections draw. Only the
// variant adapters know record types; sections only see content.
type content struct {
	Title      string
	ID         string
	Date       string
	Status     string
	Info       [2]InfoBox
	Rows       []Row
	Summary    *Summary
	Notes      []NoteBlock
	Signatures []Signature
}
