package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginator_NumPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		perPage  int
		expected int
	}{
		{name: "empty collection has one page", count: 0, perPage: 10, expected: 1},
		{name: "partial page", count: 5, perPage: 10, expected: 1},
		{name: "exact multiple", count: 20, perPage: 10, expected: 2},
		{name: "remainder", count: 21, perPage: 10, expected: 3},
		{name: "invalid per page falls back to default", count: 25, perPage: 0, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPaginator(tt.count, tt.perPage).NumPages())
		})
	}
}

func TestPaginator_Page(t *testing.T) {
	p := NewPaginator(25, 10)

	tests := []struct {
		name      string
		raw       string
		allowLast bool
		expected  int
		err       error
	}{
		{name: "empty defaults to first page", raw: "", expected: 1},
		{name: "valid page", raw: "2", expected: 2},
		{name: "last numeric page", raw: "3", expected: 3},
		{name: "beyond last page", raw: "4", err: ErrPageEmpty},
		{name: "zero", raw: "0", err: ErrPageTooSmall},
		{name: "negative", raw: "-1", err: ErrPageTooSmall},
		{name: "not an integer", raw: "abc", err: ErrPageNotInteger},
		{name: "float", raw: "1.5", err: ErrPageNotInteger},
		{name: "last when allowed", raw: "last", allowLast: true, expected: 3},
		{name: "last when not allowed", raw: "last", err: ErrPageNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := p.Page(tt.raw, tt.allowLast)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestPaginator_EmptyCollectionFirstPage(t *testing.T) {
	p := NewPaginator(0, 10)

	page, err := p.Page("1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, int64(0), p.StartIndex(page))
	assert.Equal(t, int64(0), p.EndIndex(page))

	_, err = p.Page("2", false)
	assert.ErrorIs(t, err, ErrPageEmpty)
}

func TestPaginator_Indexes(t *testing.T) {
	p := NewPaginator(25, 10)

	assert.Equal(t, 0, p.Offset(1))
	assert.Equal(t, 20, p.Offset(3))
	assert.Equal(t, 10, p.Limit())

	assert.Equal(t, int64(1), p.StartIndex(1))
	assert.Equal(t, int64(10), p.EndIndex(1))
	assert.Equal(t, int64(21), p.StartIndex(3))
	assert.Equal(t, int64(25), p.EndIndex(3))
}
