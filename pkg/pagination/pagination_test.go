// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velora-app/velora/pkg/pagination"
)

/*
TestFromRequest verifies parsing and clamping of page/limit query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit_values", "?page=3&limit=50", 3, 50},
		{"zero_page_clamped", "?page=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative_page_clamped", "?page=-5", pagination.DefaultPage, pagination.DefaultLimit},
		{"excessive_limit_clamped", "?limit=5000", pagination.DefaultPage, pagination.DefaultLimit},
		{"non_numeric_ignored", "?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/auth/users"+tc.query, nil)

			params := pagination.FromRequest(request)

			assert.Equal(t, tc.wantPage, params.Page)
			assert.Equal(t, tc.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset verifies the SQL OFFSET derivation from page and limit.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, pagination.Params{Page: 10, Limit: 10}.Offset())
}

/*
TestNewMeta verifies total page calculation, including partial final pages.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
	}{
		{"exact_division", 1, 10, 100, 10},
		{"partial_last_page", 1, 10, 101, 11},
		{"empty_result", 1, 10, 0, 0},
		{"single_item", 1, 20, 1, 1},
		{"zero_limit", 1, 0, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := pagination.NewMeta(tc.page, tc.limit, tc.total)

			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.wantTotalPages, meta.TotalPages)
		})
	}
}
