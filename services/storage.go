package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpupo63/portfolio-backend/config"
)

// ObjectStorage is the bucket holding uploaded portfolio images. Uploaded
// objects are publicly readable at the URL returned by Upload.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// S3Storage talks to an S3-compatible bucket. The public base URL is where
// the bucket serves objects from; the site embeds those URLs directly.
type S3Storage struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Storage builds the storage client from config. Expected keys:
// STORAGE_BUCKET (default "portofolio"), STORAGE_REGION, STORAGE_ENDPOINT
// (empty for AWS proper), STORAGE_ACCESS_KEY / STORAGE_SECRET_KEY and
// STORAGE_PUBLIC_BASE_URL.
func NewS3Storage(ctx context.Context, c map[string]string) (*S3Storage, error) {
	bucket := config.GetString(c, "STORAGE_BUCKET", "portofolio")
	region := config.GetString(c, "STORAGE_REGION", "us-east-1")
	endpoint := config.GetString(c, "STORAGE_ENDPOINT", "")
	accessKey := config.GetString(c, "STORAGE_ACCESS_KEY", "")
	secretKey := config.GetString(c, "STORAGE_SECRET_KEY", "")
	publicBase := config.GetString(c, "STORAGE_PUBLIC_BASE_URL", "")

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Storage{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *S3Storage) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}
