package i18n

import (
	"context"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en-US,en;q=0.9", "en"},
		{"EN-gb", "en"},
		{"de-DE,en;q=0.5", "en"},
		{"fr-FR,fr;q=0.8", "fr"},
		{"de", "fr"},
		{"", "fr"},
		{";;;", "fr"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.header); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	if lang, ok := MatchLanguage("de-CH,en;q=0.4"); !ok || lang != "en" {
		t.Errorf("MatchLanguage = %q, %v", lang, ok)
	}
	for _, header := range []string{"", "de", ";;;"} {
		if _, ok := MatchLanguage(header); ok {
			t.Errorf("MatchLanguage(%q) reported a match", header)
		}
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("fr", "doc.invoice") != "FACTURE" {
		t.Fatalf("expected FACTURE")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fr
	if T("es", "required") != "Requis" {
		t.Fatalf("expected fr fallback for es lang")
	}
	if Translator("en")("doc.continued") != T("en", "doc.continued") {
		t.Fatalf("Translator disagrees with T")
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for code := range translations[DefaultLang] {
		if _, ok := translations["en"][code]; !ok {
			t.Errorf("en is missing %q", code)
		}
	}
	for code := range translations["en"] {
		if _, ok := translations[DefaultLang][code]; !ok {
			t.Errorf("fr is missing %q", code)
		}
	}
}

func TestLangContext(t *testing.T) {
	if got := LangFromContext(context.Background()); got != DefaultLang {
		t.Errorf("empty context = %q", got)
	}
	if got := LangFromContext(WithLang(context.Background(), "en")); got != "en" {
		t.Errorf("WithLang(en) = %q", got)
	}
	if !Supported("en") || Supported("de") {
		t.Error("Supported reports the wrong languages")
	}
}
