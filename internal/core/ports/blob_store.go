package ports

import "context"

// BlobStore abstracts the object store holding uploaded report images.
type BlobStore interface {
	// Upload stores data under a generated name and returns the blob's
	// stable identifier and its retrieval URL.
	Upload(ctx context.Context, name, contentType string, data []byte) (id, url string, err error)
	// Delete removes a previously uploaded blob. Used as compensating
	// cleanup when the metadata write after an upload fails.
	Delete(ctx context.Context, id string) error
}
