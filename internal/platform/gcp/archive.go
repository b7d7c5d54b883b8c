package gcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// ArchiveStore keeps long-term copies of generated documents in a GCS
// bucket, keyed by submission folder and filename.
type ArchiveStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	ObjectURL(key string) string
}

type archiveStore struct {
	log    *logger.Logger
	client *storage.Client
	bucket string
}

func NewArchiveStore(ctx context.Context, log *logger.Logger) (ArchiveStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	bucket := strings.TrimSpace(os.Getenv("ARCHIVE_GCS_BUCKET"))
	if bucket == "" {
		return nil, fmt.Errorf("missing ARCHIVE_GCS_BUCKET")
	}

	opts := clientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	serviceLog := log.With("service", "ArchiveStore")
	serviceLog.Info("document archive initialized", "bucket", bucket)
	return &archiveStore{
		log:    serviceLog,
		client: client,
		bucket: bucket,
	}, nil
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

func (s *archiveStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("write archive object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close archive object %q: %w", key, err)
	}
	return nil
}

func (s *archiveStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open archive object %q: %w", key, err)
	}
	return rc, nil
}

func (s *archiveStore) ObjectURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}
