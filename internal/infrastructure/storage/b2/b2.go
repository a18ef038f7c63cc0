// Package b2 implements the blob store on Backblaze B2 object storage.
package b2

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"

	"github.com/issuetrack/reporting-system/internal/core/domain"
)

// BlobStore implements ports.BlobStore on a single B2 bucket.
type BlobStore struct {
	client *b2.Client
	bucket *b2.Bucket
}

// Connect authorises against B2 and binds the bucket holding report images.
func Connect(ctx context.Context, accountID, appKey, bucketName string) (*BlobStore, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("b2 bucket %q: %w", bucketName, err)
	}

	return &BlobStore{client: client, bucket: bucket}, nil
}

// Upload writes data under name and returns the object name as the blob id
// together with its public retrieval URL.
func (s *BlobStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, string, error) {
	obj := s.bucket.Object(name)
	w := obj.NewWriter(ctx, b2.WithAttrsOption(&b2.Attrs{ContentType: contentType}))

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", "", fmt.Errorf("%w: b2 write: %v", domain.ErrUpstream, err)
	}
	if err := w.Close(); err != nil {
		return "", "", fmt.Errorf("%w: b2 close: %v", domain.ErrUpstream, err)
	}

	url := fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), name)
	return name, url, nil
}

// Delete removes the named object. Used as compensating cleanup when the
// metadata write after an upload fails.
func (s *BlobStore) Delete(ctx context.Context, id string) error {
	if err := s.bucket.Object(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: b2 delete: %v", domain.ErrUpstream, err)
	}
	return nil
}
