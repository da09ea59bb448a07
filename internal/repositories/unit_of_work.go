package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// DocumentLoadSaver is a backend holding the whole persisted document.
type DocumentLoadSaver interface {
	Load(ctx context.Context) (*models.Document, error) // Returns the document, creating it on first use
	Save(ctx context.Context, doc *models.Document) error // Overwrites the stored document
}

// UnitOfWork is the single owner of the document. Every read and every
// load/modify/save cycle runs under one mutex, so concurrent requests cannot
// interleave and lose updates.
type UnitOfWork struct {
	mu    sync.Mutex
	store DocumentLoadSaver
}

// NewUnitOfWork creates a UnitOfWork over the given backend.
func NewUnitOfWork(store DocumentLoadSaver) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Do loads the document, runs fn with the document attached to ctx and saves
// it only when fn succeeds. An error from fn discards every change made
// inside the unit. Calls made with a ctx that already carries a document join
// the enclosing unit.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetDocumentFromContext(ctx) != nil {
		return fn(ctx)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load document", "error", err)
		return err
	}

	if err := fn(setDocumentToContext(ctx, doc)); err != nil {
		return err
	}

	if err := u.store.Save(ctx, doc); err != nil {
		logger.Log.Errorw("failed to save document", "error", err)
		return err
	}
	return nil
}

// Update runs fn against the document inside a unit of work.
func (u *UnitOfWork) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	return u.Do(ctx, func(ctx context.Context) error {
		return fn(GetDocumentFromContext(ctx))
	})
}

// View runs fn against the document without saving it afterwards.
func (u *UnitOfWork) View(ctx context.Context, fn func(doc *models.Document) error) error {
	if doc := GetDocumentFromContext(ctx); doc != nil {
		return fn(doc)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load document", "error", err)
		return err
	}
	return fn(doc)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var docKey = contextKey{}

// setDocumentToContext stores the unit's document in the context
func setDocumentToContext(ctx context.Context, doc *models.Document) context.Context {
	return context.WithValue(ctx, docKey, doc)
}

// GetDocumentFromContext retrieves the document of the enclosing unit of work.
// Returns nil outside a unit.
func GetDocumentFromContext(ctx context.Context) *models.Document {
	doc, _ := ctx.Value(docKey).(*models.Document)
	return doc
}
