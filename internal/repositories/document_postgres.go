package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// DefaultDocumentName is the row key used when none is configured.
const DefaultDocumentName = "database"

// DocumentPostgresRepository keeps the document as one JSONB row.
type DocumentPostgresRepository struct {
	db   *sqlx.DB
	name string
}

func NewDocumentPostgresRepository(db *sqlx.DB, name string) *DocumentPostgresRepository {
	if name == "" {
		name = DefaultDocumentName
	}
	return &DocumentPostgresRepository{db: db, name: name}
}

// Migrate creates the documents table if it does not exist.
func (r *DocumentPostgresRepository) Migrate(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS ledger_documents (
			name TEXT PRIMARY KEY,
			body JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	_, err := r.db.ExecContext(ctx, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: migrate: %w", models.ErrStoreIO, err)
	}
	return nil
}

// Load selects the document row, inserting an empty document when absent.
func (r *DocumentPostgresRepository) Load(ctx context.Context) (*models.Document, error) {
	const query = `
		SELECT body
		FROM ledger_documents
		WHERE name = $1
	`

	var body string
	err := r.db.GetContext(ctx, &body, query, r.name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{r.name},
		"result", len(body),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		doc := models.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select document: %w", models.ErrStoreIO, err)
	}

	doc, err := models.DecodeDocument([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", models.ErrStoreIO, err)
	}
	return doc, nil
}

// Save upserts the document row.
func (r *DocumentPostgresRepository) Save(ctx context.Context, doc *models.Document) error {
	const query = `
		INSERT INTO ledger_documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`

	data, err := models.EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", models.ErrStoreIO, err)
	}

	_, err = r.db.ExecContext(ctx, query, r.name, string(data))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{r.name, len(data)},
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: upsert document: %w", models.ErrStoreIO, err)
	}
	return nil
}
