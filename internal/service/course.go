package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
)

// CourseService serves course catalogs to authenticated end users.
type CourseService struct {
	store store.Store
	blob  storage.BlobStore
}

func NewCourseService(s store.Store, blob storage.BlobStore) *CourseService {
	return &CourseService{store: s, blob: blob}
}

// GetCourseListing resolves the school mapping and fetches the stored course
// catalog. The mapping store is consulted first, so a key-value store outage
// is reported before any blob-store access.
func (c *CourseService) GetCourseListing(ctx context.Context, schoolName string) (json.RawMessage, error) {
	objectPath, err := c.store.Mapping().Get(ctx, schoolName)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSchoolNotFound(schoolName)
		}
		return nil, err
	}

	data, err := c.blob.FetchJSON(ctx, objectPath)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ListSchools returns every school with a course-listing endpoint, sorted by
// name ascending.
func (c *CourseService) ListSchools(ctx context.Context) (*api.SchoolList, error) {
	mappings, err := c.store.Mapping().List(ctx)
	if err != nil {
		return nil, err
	}

	schools := make([]api.School, 0, len(mappings))
	for _, m := range mappings {
		schools = append(schools, api.School{
			Name:     m.Name,
			Endpoint: fmt.Sprintf("/api/course-listing/%s", m.Name),
		})
	}
	sort.Slice(schools, func(i, j int) bool { return schools[i].Name < schools[j].Name })

	return &api.SchoolList{Schools: schools, Total: len(schools)}, nil
}
