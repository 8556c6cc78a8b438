package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/docfaq/docfaq/internal/domain"
)

// S3Config holds configuration for an S3Source
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Key             string
	UsePathStyle    bool
}

// S3Source reads the knowledge document from S3-compatible storage
// (e.g., MinIO or RustFS).
type S3Source struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Source creates an S3Source with the given configuration
func NewS3Source(ctx context.Context, cfg S3Config) (*S3Source, error) {
	// Create custom resolver for S3-compatible endpoints
	customResolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			if cfg.Endpoint != "" {
				return aws.Endpoint{
					URL:               cfg.Endpoint,
					HostnameImmutable: true,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		},
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Source{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
	}, nil
}

// Name returns the object key's base name.
func (s *S3Source) Name() string {
	return path.Base(s.key)
}

// Fetch downloads the document object.
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed,
			fmt.Sprintf("failed to fetch s3://%s/%s", s.bucket, s.key), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed,
			fmt.Sprintf("failed to read s3://%s/%s", s.bucket, s.key), err)
	}
	return data, nil
}

// Fingerprint returns the object's ETag, which changes on every
// rewrite. A missing object fingerprints as a stable sentinel, same as
// a missing local file.
func (s *S3Source) Fingerprint(ctx context.Context) (string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			return fingerprintAbsent, nil
		}
		return "", fmt.Errorf("failed to head s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return aws.ToString(out.ETag), nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey" || code == "NoSuchBucket"
	}
	return false
}
