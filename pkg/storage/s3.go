package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"event-checkin-backend/config"
)

// S3Store keeps photos in an S3-compatible bucket (MinIO in the venue
// deployments). The bucket is expected to allow public reads, the
// returned URL is the plain object URL.
type S3Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3Store(cfg *config.AppConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, name), nil
}
