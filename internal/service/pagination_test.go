package service_test

import (
	"fmt"
	"testing"

	"github.com/kogocampus/course-scraper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int
		perPage    int
		totalPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 50, 1},
		{100, 1, 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_items_%d_per_page", tt.totalItems, tt.perPage), func(t *testing.T) {
			items := make([]int, tt.totalItems)
			_, pagination := service.Paginate(items, 1, tt.perPage)
			assert.Equal(t, tt.totalPages, pagination.TotalPages)
			assert.Equal(t, tt.totalItems, pagination.TotalItems)
		})
	}
}

func TestPaginateSlicing(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page1, pagination := service.Paginate(items, 1, 2)
	assert.Equal(t, []string{"a", "b"}, page1)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)

	page3, _ := service.Paginate(items, 3, 2)
	assert.Equal(t, []string{"e"}, page3)
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	pageItems, pagination := service.Paginate(items, 7, 2)
	assert.Empty(t, pageItems)
	assert.Equal(t, 7, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)
}

func TestPaginateIdempotent(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 0}

	first, firstMeta := service.Paginate(items, 2, 2)
	second, secondMeta := service.Paginate(items, 2, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, firstMeta, secondMeta)
}

func TestFilterBySearch(t *testing.T) {
	names := make([]string, 0, 25)
	for i := 0; i < 22; i++ {
		names = append(names, fmt.Sprintf("school-%02d", i))
	}
	names = append(names, "SFU", "sfu-surrey", "UCSF")

	matched := service.FilterBySearch(names, "sf", func(s string) string { return s })
	require.Len(t, matched, 3)
	assert.ElementsMatch(t, []string{"SFU", "sfu-surrey", "UCSF"}, matched)

	unfiltered := service.FilterBySearch(names, "", func(s string) string { return s })
	assert.Len(t, unfiltered, 25)
}

func TestNormalizePage(t *testing.T) {
	page, perPage := service.NormalizePage(0, 0, service.MaxPerPage)
	assert.Equal(t, 1, page)
	assert.Equal(t, service.DefaultPerPage, perPage)

	page, perPage = service.NormalizePage(3, 100, service.MaxPerPage)
	assert.Equal(t, 3, page)
	assert.Equal(t, service.MaxPerPage, perPage)
}
