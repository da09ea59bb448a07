package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// DocumentFileRepository keeps the document as a JSON file on local disk.
type DocumentFileRepository struct {
	path string
}

// NewDocumentFileRepository creates a file backend at path. Parent
// directories are created on first save.
func NewDocumentFileRepository(path string) *DocumentFileRepository {
	return &DocumentFileRepository{path: path}
}

// Load reads the file. A missing file is created holding an empty document.
func (r *DocumentFileRepository) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Infow("document file not found, creating", "path", r.path)
		doc := models.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrStoreIO, r.path, err)
	}

	doc, err := models.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", models.ErrStoreIO, r.path, err)
	}
	return doc, nil
}

// Save writes the document to a temporary file and renames it over the
// target, so readers never observe a partially written document.
func (r *DocumentFileRepository) Save(ctx context.Context, doc *models.Document) error {
	data, err := models.EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", models.ErrStoreIO, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", models.ErrStoreIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", models.ErrStoreIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", models.ErrStoreIO, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", models.ErrStoreIO, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: rename to %s: %w", models.ErrStoreIO, r.path, err)
	}

	logger.Log.Debugw("document saved", "path", r.path, "bytes", len(data))
	return nil
}
