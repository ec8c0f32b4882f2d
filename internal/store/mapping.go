package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/kogocampus/course-scraper/internal/store/model"
)

const (
	schoolKeyPrefix = "school:"
	keyDelimiter    = ":"
)

type Mapping interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, objectPath string) error
	SetIfAbsent(ctx context.Context, name, objectPath string) (bool, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.SchoolMapping, error)
}

type MappingStore struct {
	client *redis.Client
}

// Make sure we conform to the Mapping interface
var _ Mapping = (*MappingStore)(nil)

func NewMappingStore(client *redis.Client) Mapping {
	return &MappingStore{client: client}
}

// ValidateSchoolName rejects names that cannot be encoded in the key naming
// convention. A name containing the delimiter would be mis-parsed on listing.
func ValidateSchoolName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: school name is empty", ErrInvalidKey)
	}
	if strings.Contains(name, keyDelimiter) {
		return fmt.Errorf("%w: school name %q contains %q", ErrInvalidKey, name, keyDelimiter)
	}
	return nil
}

func schoolKey(name string) string {
	return schoolKeyPrefix + name
}

func (s *MappingStore) Get(ctx context.Context, name string) (string, error) {
	if err := ValidateSchoolName(name); err != nil {
		return "", err
	}
	objectPath, err := s.client.Get(ctx, schoolKey(name)).Result()
	if err == redis.Nil {
		return "", ErrRecordNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return objectPath, nil
}

func (s *MappingStore) Set(ctx context.Context, name, objectPath string) error {
	if err := ValidateSchoolName(name); err != nil {
		return err
	}
	if err := s.client.Set(ctx, schoolKey(name), objectPath, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// SetIfAbsent performs a conditional write, closing the check-then-write race
// on concurrent creates. Returns false when the mapping already existed.
func (s *MappingStore) SetIfAbsent(ctx context.Context, name, objectPath string) (bool, error) {
	if err := ValidateSchoolName(name); err != nil {
		return false, err
	}
	created, err := s.client.SetNX(ctx, schoolKey(name), objectPath, 0).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return created, nil
}

func (s *MappingStore) Delete(ctx context.Context, name string) error {
	if err := ValidateSchoolName(name); err != nil {
		return err
	}
	deleted, err := s.client.Del(ctx, schoolKey(name)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if deleted == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *MappingStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ValidateSchoolName(name); err != nil {
		return false, err
	}
	count, err := s.client.Exists(ctx, schoolKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

func (s *MappingStore) List(ctx context.Context) ([]model.SchoolMapping, error) {
	keys, err := s.client.Keys(ctx, schoolKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	mappings := make([]model.SchoolMapping, 0, len(keys))
	for _, key := range keys {
		// Split on the first delimiter only, the school name owns the rest.
		parts := strings.SplitN(key, keyDelimiter, 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		objectPath, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			// Deleted between the scan and the read.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		mappings = append(mappings, model.SchoolMapping{Name: parts[1], ObjectPath: objectPath})
	}
	return mappings, nil
}
