package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads objects to a single bucket. A non-empty endpoint points the
// client at an S3-compatible store (MinIO in development).
type S3Store struct {
	client *s3.Client
	bucket string
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewS3Store(cfg S3Config) *S3Store {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		BaseEndpoint: endpointOrNil(cfg.Endpoint),
		UsePathStyle: cfg.Endpoint != "",
	})

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
	}
}

func endpointOrNil(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// Put uploads data under key and returns the object URL.
func (s *S3Store) Put(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
