package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store receives finished documents.
type Store interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// DirStore writes documents into a directory, creating it when needed.
type DirStore struct {
	Dir string
}

func (s DirStore) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.Dir, err)
	}
	return os.WriteFile(filepath.Join(s.Dir, filename), data, 0o644)
}
