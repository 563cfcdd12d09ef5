package bucket

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// Downloader fetches immutable data files (constituency weight databases)
// from an object store into a local cache directory. Files are keyed by name
// and never re-fetched once present.
type Downloader struct {
	client *s3.Client
	bucket string
}

func NewDownloader(ctx context.Context, bucket string) (*Downloader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Downloader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Fetch downloads key into destPath unless the file is already cached, and
// returns the local path.
func (d *Downloader) Fetch(ctx context.Context, key, destPath string) (string, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Stat(destPath); err == nil {
		logger.Debug().Str("path", destPath).Msg("data file already cached")
		return destPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	resp, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("fetch s3://%s/%s: %w", d.bucket, key, err)
	}
	defer resp.Body.Close()

	// Write to a temp file first so a failed download never leaves a
	// truncated cache entry behind.
	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	logger.Info().Str("key", key).Str("path", destPath).Msg("downloaded data file")
	return destPath, nil
}
