// Package publish uploads rendered pages to S3.
package publish

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/vango-dev/pagelayout/internal/errors"
)

// ContentTypeHTML is the content type of published pages.
const ContentTypeHTML = "text/html; charset=utf-8"

// ObjectPutter is the subset of the S3 client the publisher needs.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes pages to a bucket.
type Publisher struct {
	client       ObjectPutter
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the key prefix for uploaded objects (e.g., "preview/").
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header of uploaded objects.
func WithCacheControl(v string) Option {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a Publisher for bucket.
func New(client ObjectPutter, bucket string, opts ...Option) (*Publisher, error) {
	if bucket == "" {
		return nil, errors.New("E040").
			WithSuggestion("Pass --bucket or set publish.bucket in pagelayout.json")
	}
	p := &Publisher{
		client:       client,
		bucket:       bucket,
		cacheControl: "no-cache",
		logger:       slog.Default(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Result describes an uploaded object.
type Result struct {
	// ID is stored in the object's publish-id metadata.
	ID     string
	Bucket string
	Key    string
	ETag   string
	Size   int
}

// Publish uploads html under prefix+name.
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (Result, error) {
	key := p.prefix + name
	id := p.newID()

	out, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(html),
		ContentType:  aws.String(ContentTypeHTML),
		CacheControl: aws.String(p.cacheControl),
		Metadata: map[string]string{
			"publish-id":   id,
			"published-at": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Result{}, errors.New("E041").
			WithDetailf("Uploading s3://%s/%s failed.", p.bucket, key).
			Wrap(err)
	}

	res := Result{
		ID:     id,
		Bucket: p.bucket,
		Key:    key,
		ETag:   aws.ToString(out.ETag),
		Size:   len(html),
	}
	p.logger.Info("page published",
		"id", res.ID,
		"bucket", res.Bucket,
		"key", res.Key,
		"bytes", res.Size,
	)
	return res, nil
}

// NewS3Client builds an S3 client from the default AWS credential chain.
// An empty region defers to the environment and shared config.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E041").
			WithDetail("Loading AWS configuration failed.").
			Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}
