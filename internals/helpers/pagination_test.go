package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 20, Offset: 20, Limit: 20}
	meta := BuildPagination(45, p)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.PerPage)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}
	meta := BuildPagination(0, p)

	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
