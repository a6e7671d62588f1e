package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/driftline/buoywatch/internal/config"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageCache archives BuoyCam snapshots in S3, one object per station.
// The archive doubles as a fallback when the live camera endpoint is down.
type S3ImageCache struct {
	client     S3Client
	bucketName string
	ttl        time.Duration
	clock      clock
}

// NewS3ImageCache creates an image cache backed by the bucket named in the
// cache configuration.
func NewS3ImageCache(ctx context.Context, cacheConfig *config.CacheConfig) (*S3ImageCache, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &S3ImageCache{
		client:     s3.NewFromConfig(awsCfg),
		bucketName: cacheConfig.ImageCacheBucket,
		ttl:        cacheConfig.GetImageTTL(),
		clock:      systemClock{},
	}, nil
}

func imageKey(stationID string) string {
	return "buoycam/" + stationID + ".jpg"
}

// GetImage retrieves an archived snapshot if one exists and is still fresh.
// A missing or stale object is a cache miss, not an error.
func (c *S3ImageCache) GetImage(ctx context.Context, stationID string) ([]byte, error) {
	if c.bucketName == "" {
		return nil, fmt.Errorf("empty bucket name")
	}

	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(imageKey(stationID)),
	})
	if err != nil {
		// If object doesn't exist, return nil without error
		return nil, nil
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Error().Err(err).Msg("Error closing S3 object body")
		}
	}(result.Body)

	if result.LastModified != nil && c.clock.Now().Sub(*result.LastModified) > c.ttl {
		log.Debug().Str("station_id", stationID).Msg("Archived snapshot expired")
		return nil, nil
	}

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("reading archived snapshot: %w", err)
	}

	return data, nil
}

// SaveImage archives a snapshot to S3
func (c *S3ImageCache) SaveImage(ctx context.Context, stationID string, data []byte) error {
	if c.bucketName == "" {
		return fmt.Errorf("empty bucket name")
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(imageKey(stationID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("saving to S3: %w", err)
	}

	log.Debug().Str("station_id", stationID).Int("bytes", len(data)).Msg("Archived BuoyCam snapshot to S3")
	return nil
}
