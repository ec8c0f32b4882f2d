package service

import (
	"strings"

	api "github.com/kogocampus/course-scraper/api/v1alpha1"
	"github.com/thoas/go-funk"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// NormalizePage clamps page and perPage into their valid ranges, applying
// defaults for missing values.
func NormalizePage(page, perPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// FilterBySearch keeps the items whose key contains the search term,
// case-insensitively. An empty search keeps everything. Filtering always
// happens before sorting and pagination.
func FilterBySearch[T any](items []T, search string, keyFn func(T) string) []T {
	if search == "" {
		return items
	}
	needle := strings.ToLower(search)
	return funk.Filter(items, func(item T) bool {
		return strings.Contains(strings.ToLower(keyFn(item)), needle)
	}).([]T)
}

// Paginate slices one 1-based page out of items. Pages beyond the end yield
// an empty slice with the same pagination metadata, never an error.
func Paginate[T any](items []T, page, perPage int) ([]T, api.Pagination) {
	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage

	pagination := api.Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}

	start := (page - 1) * perPage
	if start >= totalItems {
		return []T{}, pagination
	}

	end := start + perPage
	if end > totalItems {
		end = totalItems
	}
	return items[start:end], pagination
}
