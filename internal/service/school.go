package service

import (
	"context"
	"errors"
	"sort"

	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
	"go.uber.org/zap"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// SchoolService implements the administrative school-mapping operations.
type SchoolService struct {
	store store.Store
	blob  storage.BlobStore
}

func NewSchoolService(s store.Store, blob storage.BlobStore) *SchoolService {
	return &SchoolService{store: s, blob: blob}
}

// CreateOrUpdateEntry writes the school mapping after verifying the target
// object exists. Creation without updateExisting uses a conditional write, so
// two concurrent creates cannot both succeed.
func (s *SchoolService) CreateOrUpdateEntry(ctx context.Context, schoolName, objectPath string, updateExisting bool) (string, error) {
	if err := store.ValidateSchoolName(schoolName); err != nil {
		return "", NewErrInvalidSchoolName(err)
	}

	// The mapping store is checked before the blob store so the two external
	// failure modes are never confused in the response.
	if err := s.store.Health(ctx); err != nil {
		return "", err
	}

	exists, err := s.store.Mapping().Exists(ctx, schoolName)
	if err != nil {
		return "", err
	}
	if exists && !updateExisting {
		return "", NewErrMappingExists(schoolName)
	}

	found, err := s.blob.Head(ctx, objectPath)
	if err != nil {
		return "", err
	}
	if !found {
		return "", NewErrCourseDataMissing(objectPath)
	}

	if updateExisting {
		if err := s.store.Mapping().Set(ctx, schoolName, objectPath); err != nil {
			return "", err
		}
		action := ActionCreated
		if exists {
			action = ActionUpdated
		}
		zap.S().Named("school").Infof("school entry %s for %q -> %q", action, schoolName, objectPath)
		return action, nil
	}

	created, err := s.store.Mapping().SetIfAbsent(ctx, schoolName, objectPath)
	if err != nil {
		return "", err
	}
	if !created {
		// Lost the race to a concurrent create.
		return "", NewErrMappingExists(schoolName)
	}
	zap.S().Named("school").Infof("school entry created for %q -> %q", schoolName, objectPath)
	return ActionCreated, nil
}

// ListEntries returns one page of school mappings, filtered by the search
// term and sorted by name ascending.
func (s *SchoolService) ListEntries(ctx context.Context, page, perPage int, search string) (*api.SchoolEntryList, error) {
	if err := s.store.Health(ctx); err != nil {
		return nil, err
	}

	mappings, err := s.store.Mapping().List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]api.SchoolEntry, 0, len(mappings))
	for _, m := range mappings {
		entries = append(entries, api.SchoolEntry{Name: m.Name, CourseDataPath: m.ObjectPath})
	}

	entries = FilterBySearch(entries, search, func(e api.SchoolEntry) string { return e.Name })
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	pageItems, pagination := Paginate(entries, page, perPage)
	return &api.SchoolEntryList{Schools: pageItems, Pagination: pagination}, nil
}

// DeleteEntry removes the mapping for a school.
func (s *SchoolService) DeleteEntry(ctx context.Context, schoolName string) error {
	if err := store.ValidateSchoolName(schoolName); err != nil {
		return NewErrInvalidSchoolName(err)
	}

	if err := s.store.Health(ctx); err != nil {
		return err
	}

	err := s.store.Mapping().Delete(ctx, schoolName)
	if errors.Is(err, store.ErrRecordNotFound) {
		return NewErrSchoolNotFound(schoolName)
	}
	return err
}
