package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/promoops/campaigner/pkg/types"
)

// Compile-time interface satisfaction check.
var _ Store = (*S3Store)(nil)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, input *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	HeadBucket(ctx context.Context, input *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Store archives campaign records to S3.
// Key layout:
//
//	{prefix}/items/{itemID}/latest.json
//	{prefix}/boards/{boardID}/{runID}.json
type S3Store struct {
	client     S3API
	bucketName string
	prefix     string
}

// S3Option configures an S3Store.
type S3Option func(*S3Store)

// WithS3Client sets a custom S3 client (useful for testing).
func WithS3Client(c S3API) S3Option {
	return func(s *S3Store) { s.client = c }
}

// NewS3 creates an S3-backed campaign store.
func NewS3(cfg *types.S3Config, opts ...S3Option) (*S3Store, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("S3 bucket name required")
	}
	s := &S3Store{
		bucketName: cfg.BucketName,
		prefix:     strings.TrimRight(cfg.Prefix, "/"),
	}
	for _, o := range opts {
		o(s)
	}
	if s.client == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		s.client = s3.NewFromConfig(awsCfg)
	}
	return s, nil
}

func (s *S3Store) key(parts ...string) string {
	if s.prefix != "" {
		parts = append([]string{s.prefix}, parts...)
	}
	return strings.Join(parts, "/")
}

// PutCampaign writes the truth object and the per-board run copy.
func (s *S3Store) PutCampaign(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling campaign record: %w", err)
	}
	for _, key := range []string{
		s.key("items", rec.ItemID, "latest.json"),
		s.key("boards", rec.BoardID, rec.RunID+".json"),
	} {
		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &s.bucketName,
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}
	return nil
}

// GetCampaign reads the truth object for an item.
func (s *S3Store) GetCampaign(ctx context.Context, itemID string) (*Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucketName,
		Key:    aws.String(s.key("items", itemID, "latest.json")),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading campaign record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding campaign record: %w", err)
	}
	return &rec, nil
}

// ListCampaigns lists a board's run copies, newest first. ULID run
// IDs sort lexicographically by creation time.
func (s *S3Store) ListCampaigns(ctx context.Context, boardID string, limit int) ([]Record, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: &s.bucketName,
		Prefix: aws.String(s.key("boards", boardID) + "/"),
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: &s.bucketName,
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		data, err := io.ReadAll(obj.Body)
		obj.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Start pings the bucket.
func (s *S3Store) Start(ctx context.Context) error { return s.Ping(ctx) }

// Stop is a no-op for S3.
func (s *S3Store) Stop(_ context.Context) error { return nil }

// Ping checks bucket access.
func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &s.bucketName})
	if err != nil {
		return fmt.Errorf("s3 ping failed: %w", err)
	}
	return nil
}
