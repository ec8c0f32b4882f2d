package service_test

import (
	"context"
	"testing"

	"github.com/kogocampus/course-scraper/internal/service"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseListing(t *testing.T) {
	ctx := context.Background()
	dataStore := newFakeStore()
	blob := newFakeBlobStore()

	courseJSON := []byte(`{"courses":[{"code":"CMPT 120","title":"Introduction to Computing"}]}`)
	blob.objects["courses/sfu.json"] = courseJSON
	dataStore.mapping.data["SFU"] = "courses/sfu.json"

	srv := service.NewCourseService(dataStore, blob)

	t.Run("returns the exact stored document", func(t *testing.T) {
		data, err := srv.GetCourseListing(ctx, "SFU")
		require.NoError(t, err)
		assert.Equal(t, courseJSON, []byte(data))
	})

	t.Run("unknown school", func(t *testing.T) {
		_, err := srv.GetCourseListing(ctx, "XYZ")
		require.Error(t, err)
		assert.IsType(t, &service.ErrSchoolNotFound{}, err)
	})

	t.Run("mapping points at a missing object", func(t *testing.T) {
		dataStore.mapping.data["Ghost"] = "courses/ghost.json"
		_, err := srv.GetCourseListing(ctx, "Ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})
}

func TestListSchools(t *testing.T) {
	ctx := context.Background()
	dataStore := newFakeStore()
	blob := newFakeBlobStore()

	dataStore.mapping.data["UBC"] = "courses/ubc.json"
	dataStore.mapping.data["SFU"] = "courses/sfu.json"
	dataStore.mapping.data["McGill"] = "courses/mcgill.json"

	srv := service.NewCourseService(dataStore, blob)

	schools, err := srv.ListSchools(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, schools.Total)

	names := []string{}
	for _, school := range schools.Schools {
		names = append(names, school.Name)
	}
	assert.Equal(t, []string{"McGill", "SFU", "UBC"}, names)
	assert.Equal(t, "/api/course-listing/SFU", schools.Schools[1].Endpoint)
}
