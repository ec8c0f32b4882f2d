package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioOpts func(c *minioConfig)

type minioConfig struct {
	endpoint  string
	bucket    string
	accessKey string
	secretKey string
	region    string
	useSSL    bool
}

func newConfig(opts ...MinioOpts) *minioConfig {
	cfg := &minioConfig{
		useSSL: true,
	}

	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

type minioBlobStore struct {
	cfg    *minioConfig
	client *minio.Client
	core   *minio.Core
}

// Make sure we conform to the BlobStore interface
var _ BlobStore = (*minioBlobStore)(nil)

func NewMinioBlobStore(opts ...MinioOpts) (BlobStore, error) {
	cfg := newConfig(opts...)

	core, err := minio.NewCore(cfg.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.accessKey, cfg.secretKey, ""),
		Secure: cfg.useSSL,
		Region: cfg.region,
	})
	if err != nil {
		return nil, err
	}

	return &minioBlobStore{cfg: cfg, client: core.Client, core: core}, nil
}

// FetchJSON returns the stored document bytes after validating they parse as
// JSON. The raw bytes are handed back so callers can serve the body verbatim.
func (s *minioBlobStore) FetchJSON(ctx context.Context, path string) (json.RawMessage, error) {
	object, err := s.client.GetObject(ctx, s.cfg.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translateError("get", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, s.translateError("get", err)
	}

	if !json.Valid(data) {
		return nil, NewStorageError("get", fmt.Errorf("object %s is not valid JSON", path))
	}
	return json.RawMessage(data), nil
}

// PutJSON stores the value with stable indented formatting, since the
// artifact may be hand-edited by operators through the preview endpoints.
func (s *minioBlobStore) PutJSON(ctx context.Context, path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return NewStorageError("put", err)
	}
	data = append(data, '\n')

	_, err = s.client.PutObject(ctx, s.cfg.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return s.translateError("put", err)
	}
	return nil
}

func (s *minioBlobStore) Head(ctx context.Context, path string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.cfg.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, s.translateError("head", err)
	}
	return true, nil
}

// List walks one delimiter level under prefix, splitting results into
// directory entries (common prefixes) and file entries. The prefix marker
// object and pseudo-directory markers are excluded.
func (s *minioBlobStore) List(ctx context.Context, prefix, continuationToken string, maxKeys int) (*ObjectPage, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	result, err := s.core.ListObjectsV2(s.cfg.bucket, prefix, "", continuationToken, "/", maxKeys)
	if err != nil {
		return nil, s.translateError("list", err)
	}

	page := &ObjectPage{
		IsTruncated:           result.IsTruncated,
		NextContinuationToken: result.NextContinuationToken,
	}

	for _, p := range result.CommonPrefixes {
		name := baseName(strings.TrimSuffix(p.Prefix, "/"))
		if name == "" {
			name = p.Prefix
		}
		page.Directories = append(page.Directories, DirectoryEntry{
			Name: name,
			Path: p.Prefix,
		})
	}

	for _, obj := range result.Contents {
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if prefix != "" && obj.Key == prefix {
			continue
		}
		page.Files = append(page.Files, FileEntry{
			Name:         baseName(obj.Key),
			Path:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	page.KeyCount = len(page.Directories) + len(page.Files)
	return page, nil
}

func (s *minioBlobStore) translateError(op string, err error) error {
	if isNotFound(err) {
		return ErrObjectNotFound
	}
	return NewStorageError(op, err)
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

func baseName(key string) string {
	if idx := strings.LastIndexByte(key, '/'); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

func WithEndpoint(endpoint string) MinioOpts {
	return func(c *minioConfig) {
		c.endpoint = endpoint
	}
}

func WithBucket(bucket string) MinioOpts {
	return func(c *minioConfig) {
		c.bucket = bucket
	}
}

func WithAccessKey(accessKey string) MinioOpts {
	return func(c *minioConfig) {
		c.accessKey = accessKey
	}
}

func WithSecretKey(secretKey string) MinioOpts {
	return func(c *minioConfig) {
		c.secretKey = secretKey
	}
}

func WithRegion(region string) MinioOpts {
	return func(c *minioConfig) {
		c.region = region
	}
}

func WithSSL(useSSL bool) MinioOpts {
	return func(c *minioConfig) {
		c.useSSL = useSSL
	}
}
