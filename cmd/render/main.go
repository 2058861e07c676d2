// Command render turns a JSON record into a PDF without a database.
//
//	render -variant invoice -in invoice.json -out ./out
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/diewo77/go-documents/i18n"
	"github.com/diewo77/go-documents/internal/config"
	"github.com/diewo77/go-documents/internal/logger"
	"github.com/diewo77/go-documents/pdf"
	"github.com/diewo77/go-documents/validation"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	_ = godotenv.Load()
	cfg := config.Load()

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	variantName := fs.String("variant", "", "quote, invoice, delivery-note or event-report")
	in := fs.String("in", "-", "JSON record, - for stdin")
	out := fs.String("out", ".", "output directory")
	lang := fs.String("lang", cfg.Render.Lang, "document language (fr, en)")
	issuerPath := fs.String("issuer", "", "JSON file with the issuer letterhead")
	validate := fs.Bool("validate", cfg.Render.Validate, "validate the produced PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}

	variant, ok := pdf.ParseVariant(*variantName)
	if !ok {
		return fmt.Errorf("unknown variant %q", *variantName)
	}
	if !i18n.Supported(*lang) {
		return fmt.Errorf("unsupported language %q", *lang)
	}

	log, err := logger.New(cfg.App.Dev)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rec := pdf.NewRecord(variant)
	if err := decodeFile(*in, stdin, rec); err != nil {
		return fmt.Errorf("read record: %w", err)
	}
	if q, ok := rec.(*pdf.QuoteInvoiceRecord); ok {
		q.Kind = variant
	}
	if v := validation.Record(rec); !v.Empty() {
		for field, msg := range v.Translate(i18n.Translator(*lang)) {
			log.Warn("invalid field", zap.String("field", field), zap.String("error", msg))
		}
		return fmt.Errorf("record has %d invalid fields", len(v))
	}

	var issuer pdf.Issuer
	if *issuerPath != "" {
		if err := decodeFile(*issuerPath, nil, &issuer); err != nil {
			return fmt.Errorf("read issuer: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := pdf.NewRenderer(pdf.Options{
		Issuer:   issuer,
		Lang:     *lang,
		Currency: cfg.Render.Currency,
		Logger:   log,
		Store:    pdf.DirStore{Dir: *out},
		Validate: *validate,
	})
	res, err := r.Render(ctx, rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s (%d pages)\n", res.Filename, res.Pages)
	return err
}

func decodeFile(path string, stdin io.Reader, dst any) error {
	var src io.Reader = stdin
	if path != "-" || stdin == nil {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
