package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// S3API is the subset of the S3 client used by the document backend.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds connection settings for S3 or an S3-compatible server.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds an S3 client. A non-empty endpoint switches to
// path-style addressing as required by MinIO.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// DefaultObjectKey is the object key used when none is configured.
const DefaultObjectKey = "database.json"

// DocumentS3Repository keeps the document as one object in a bucket.
type DocumentS3Repository struct {
	client S3API
	bucket string
	key    string
}

func NewDocumentS3Repository(client S3API, bucket, key string) *DocumentS3Repository {
	if key == "" {
		key = DefaultObjectKey
	}
	return &DocumentS3Repository{client: client, bucket: bucket, key: key}
}

// Load downloads the object, uploading an empty document when it is missing.
func (r *DocumentS3Repository) Load(ctx context.Context) (*models.Document, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})

	logger.Log.Infow("s3 get object",
		"bucket", r.bucket,
		"key", r.key,
		"error", err,
	)

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		doc := models.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get object %s/%s: %w", models.ErrStoreIO, r.bucket, r.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object %s/%s: %w", models.ErrStoreIO, r.bucket, r.key, err)
	}

	doc, err := models.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode object %s/%s: %w", models.ErrStoreIO, r.bucket, r.key, err)
	}
	return doc, nil
}

// Save uploads the document, replacing the previous object.
func (r *DocumentS3Repository) Save(ctx context.Context, doc *models.Document) error {
	data, err := models.EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", models.ErrStoreIO, err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})

	logger.Log.Infow("s3 put object",
		"bucket", r.bucket,
		"key", r.key,
		"bytes", len(data),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: put object %s/%s: %w", models.ErrStoreIO, r.bucket, r.key, err)
	}
	return nil
}
