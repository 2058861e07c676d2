package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu would otherwise create a config dir under the user's home.
	api.DisableConfigDir()
}

func inspectConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount parses a serialized document and returns its page count.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), inspectConfig())
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return n, nil
}

// Validate checks that data is a well-formed PDF.
func Validate(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), inspectConfig()); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
