package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const quoteJSON = `{
  "id": "DEV-2025-0042",
  "party_name": "Mairie de Talence",
  "date": "02/06/2025",
  "tax_rate": 0.2,
  "client": {"name": "Mairie de Talence", "address": "Place Alcala de Henares\n33400 Talence"},
  "items": [
    {"reference": "ENC-15A", "designation": "Enceinte active 15 pouces", "quantity_ordered": 4, "unit_price": 45}
  ]
}`

func TestRunWritesPDF(t *testing.T) {
	out := t.TempDir()
	var stdout bytes.Buffer
	err := run([]string{"-variant", "devis", "-out", out, "-validate"}, strings.NewReader(quoteJSON), &stdout)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	name := "Devis_DEV-2025-0042_Mairie_de_Talence_02-06-2025.pdf"
	if !strings.HasPrefix(stdout.String(), name) {
		t.Errorf("stdout = %q", stdout.String())
	}
	f, err := os.Open(filepath.Join(out, name))
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	if n, err := api.PageCount(f, nil); err != nil || n != 1 {
		t.Errorf("PageCount = %d, %v", n, err)
	}
}

func TestRunRejects(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
	}{
		{"unknown variant", []string{"-variant", "receipt"}, quoteJSON},
		{"unsupported language", []string{"-variant", "quote", "-lang", "de"}, quoteJSON},
		{"bad json", []string{"-variant", "quote"}, `{"id":`},
		{"unknown field", []string{"-variant", "event-report"}, quoteJSON},
		{"invalid record", []string{"-variant", "invoice"}, `{"party_name":"Acme"}`},
		{"missing input file", []string{"-variant", "quote", "-in", "does-not-exist.json"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-out", t.TempDir())
			if err := run(args, strings.NewReader(tt.input), &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
