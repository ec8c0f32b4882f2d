package service

import (
	"context"
	"encoding/json"
	"time"

	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/storage"
)

const maxListKeys = 1000

// ObjectService exposes the admin browse/preview/update surface over the
// blob store.
type ObjectService struct {
	blob storage.BlobStore
}

func NewObjectService(blob storage.BlobStore) *ObjectService {
	return &ObjectService{blob: blob}
}

// List returns one delimiter level under prefix, directories first, bounded
// to maxListKeys keys per call.
func (o *ObjectService) List(ctx context.Context, prefix, continuationToken string, maxKeys int) (*api.ObjectListing, error) {
	if maxKeys < 1 || maxKeys > maxListKeys {
		maxKeys = maxListKeys
	}

	page, err := o.blob.List(ctx, prefix, continuationToken, maxKeys)
	if err != nil {
		return nil, err
	}

	items := make([]api.ObjectItem, 0, page.KeyCount)
	for _, dir := range page.Directories {
		items = append(items, api.ObjectItem{
			Name: dir.Name,
			Path: dir.Path,
			Type: "directory",
		})
	}
	for _, file := range page.Files {
		size := file.Size
		items = append(items, api.ObjectItem{
			Name:         file.Name,
			Path:         file.Path,
			Type:         "file",
			Size:         &size,
			LastModified: file.LastModified.Format(time.RFC3339),
		})
	}

	listing := &api.ObjectListing{
		Items: items,
		Pagination: api.ObjectPagination{
			IsTruncated: page.IsTruncated,
			KeyCount:    page.KeyCount,
		},
	}
	if page.NextContinuationToken != "" {
		listing.Pagination.NextContinuationToken = &page.NextContinuationToken
	}
	return listing, nil
}

// Preview returns the parsed JSON document stored at key.
func (o *ObjectService) Preview(ctx context.Context, key string) (json.RawMessage, error) {
	return o.blob.FetchJSON(ctx, key)
}

// Update re-stores the document at key with stable indented formatting.
func (o *ObjectService) Update(ctx context.Context, key string, value any) error {
	return o.blob.PutJSON(ctx, key, value)
}
