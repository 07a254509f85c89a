package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		raw      string
		number   int
		numPages int
		offset   int
	}{
		{"missing page", 13, "", 1, 2, 0},
		{"second page", 13, "2", 2, 2, 9},
		{"beyond last clamps", 13, "99", 2, 2, 9},
		{"non numeric", 13, "abc", 1, 2, 0},
		{"zero gives last", 13, "0", 2, 2, 9},
		{"negative gives last", 13, "-3", 2, 2, 9},
		{"empty list has one page", 0, "5", 1, 1, 0},
		{"exact multiple", 18, "2", 2, 2, 9},
		{"padded number", 30, " 3 ", 3, 4, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.raw)
			assert.Equal(t, tt.number, p.Number)
			assert.Equal(t, tt.numPages, p.NumPages)
			assert.Equal(t, tt.offset, p.Offset())
			assert.Equal(t, PageSize, p.PerPage)
			assert.Equal(t, tt.number > 1, p.HasPrevious)
			assert.Equal(t, tt.number < tt.numPages, p.HasNext)
		})
	}
}

func TestElidedRange(t *testing.T) {
	assert.Equal(t, []int{1}, elidedRange(1, 1, 1, 1))
	assert.Equal(t, []int{1, 2, 3, 4}, elidedRange(2, 4, 1, 1))
	assert.Equal(t, []int{1, 2, 0, 10}, elidedRange(1, 10, 1, 1))
	assert.Equal(t, []int{1, 0, 4, 5, 6, 0, 10}, elidedRange(5, 10, 1, 1))
	assert.Equal(t, []int{1, 0, 9, 10}, elidedRange(10, 10, 1, 1))
	assert.Equal(t, []int{1, 2, 3, 4, 0, 10}, elidedRange(3, 10, 1, 1))
}
