package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"simsea/internal/config"
	"simsea/internal/export"
)

var ErrPublishingDisabled = errors.New("export publishing is not configured")

// ObjectUploader is the part of manager.Uploader the publisher needs.
type ObjectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type PublishedExport struct {
	Bucket   string        `json:"bucket"`
	Key      string        `json:"key"`
	Location string        `json:"location,omitempty"`
	Format   export.Format `json:"format"`
	Size     int           `json:"size"`
	Fallback bool          `json:"fallback"`
}

// ExportPublisher uploads rendered exports to S3.
type ExportPublisher struct {
	uploader ObjectUploader
	bucket   string
	prefix   string
	now      func() time.Time
}

// NewExportPublisher returns nil when S3 is not configured; a nil publisher
// answers ErrPublishingDisabled.
func NewExportPublisher(s3Config *config.S3Config) *ExportPublisher {
	if s3Config == nil || s3Config.Client == nil {
		return nil
	}
	return NewExportPublisherWithUploader(manager.NewUploader(s3Config.Client), s3Config.Bucket, s3Config.Prefix)
}

func NewExportPublisherWithUploader(uploader ObjectUploader, bucket, prefix string) *ExportPublisher {
	return &ExportPublisher{uploader: uploader, bucket: bucket, prefix: prefix, now: time.Now}
}

// Key builds the object key: <prefix>/YYYY/MM/DD/<name>-<uuid>.<ext>.
func (p *ExportPublisher) Key(res *export.Result) string {
	ext := path.Ext(res.Filename)
	base := res.Filename[:len(res.Filename)-len(ext)]
	if res.Fallback() {
		ext = ".csv"
	}
	day := p.now().UTC().Format("2006/01/02")
	return path.Join(p.prefix, day, fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext))
}

func (p *ExportPublisher) Publish(ctx context.Context, res *export.Result) (*PublishedExport, error) {
	if p == nil {
		return nil, ErrPublishingDisabled
	}

	key := p.Key(res)
	out, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(res.Data),
		ContentType: aws.String(res.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	published := &PublishedExport{
		Bucket:   p.bucket,
		Key:      key,
		Format:   res.Format,
		Size:     len(res.Data),
		Fallback: res.Fallback(),
	}
	if out != nil {
		published.Location = out.Location
	}
	return published, nil
}
