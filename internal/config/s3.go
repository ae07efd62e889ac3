// internal/config/s3.go
package config

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrS3NotConfigured = errors.New("S3_BUCKET_NAME is not set")

// S3Config holds S3 configuration
type S3Config struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

// NewS3Config creates a new S3 configuration. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3Bucket == "" {
		return nil, ErrS3NotConfigured
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(os.Getenv("AWS_REGION")),
	}
	if key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.S3Bucket,
		Prefix: cfg.S3ExportPrefix,
	}, nil
}
