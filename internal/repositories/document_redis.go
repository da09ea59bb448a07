package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// DefaultDocumentKey is the Redis key used when none is configured.
const DefaultDocumentKey = "rewipay:database"

// DocumentRedisRepository keeps the document under a single Redis key.
type DocumentRedisRepository struct {
	client redis.Cmdable
	key    string
}

func NewDocumentRedisRepository(client redis.Cmdable, key string) *DocumentRedisRepository {
	if key == "" {
		key = DefaultDocumentKey
	}
	return &DocumentRedisRepository{client: client, key: key}
}

// Load reads the key, writing an empty document when it does not exist.
func (r *DocumentRedisRepository) Load(ctx context.Context) (*models.Document, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()

	logger.Log.Infow("redis get",
		"key", r.key,
		"bytes", len(data),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		doc := models.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", models.ErrStoreIO, r.key, err)
	}

	doc, err := models.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", models.ErrStoreIO, r.key, err)
	}
	return doc, nil
}

// Save overwrites the key without expiration.
func (r *DocumentRedisRepository) Save(ctx context.Context, doc *models.Document) error {
	data, err := models.EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", models.ErrStoreIO, err)
	}

	err = r.client.Set(ctx, r.key, data, 0).Err()

	logger.Log.Infow("redis set",
		"key", r.key,
		"bytes", len(data),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: set %s: %w", models.ErrStoreIO, r.key, err)
	}
	return nil
}
