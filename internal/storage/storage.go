package storage

import (
	"context"
	"encoding/json"
	"time"
)

// BlobStore is the minimal contract this service needs from the object store:
// JSON blobs addressed by path, plus delimiter-aware listing.
type BlobStore interface {
	FetchJSON(ctx context.Context, path string) (json.RawMessage, error)
	PutJSON(ctx context.Context, path string, value any) error
	Head(ctx context.Context, path string) (bool, error)
	List(ctx context.Context, prefix, continuationToken string, maxKeys int) (*ObjectPage, error)
}

// DirectoryEntry is a common prefix under the listing delimiter.
type DirectoryEntry struct {
	Name string
	Path string
}

// FileEntry is a leaf object.
type FileEntry struct {
	Name         string
	Path         string
	Size         int64
	LastModified time.Time
}

// ObjectPage is one page of a prefix listing, split into directories and
// files, with the cursor needed to fetch the next page.
type ObjectPage struct {
	Directories           []DirectoryEntry
	Files                 []FileEntry
	IsTruncated           bool
	NextContinuationToken string
	KeyCount              int
}
