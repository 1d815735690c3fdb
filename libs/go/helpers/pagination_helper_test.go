package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    PaginationParams
		wantErr bool
	}{
		{name: "defaults", query: "", want: PaginationParams{Limit: 10, Offset: 0, Page: 1}},
		{name: "page based", query: "page=3&limit=20", want: PaginationParams{Limit: 20, Offset: 40, Page: 3}},
		{name: "offset based", query: "offset=25&limit=5", want: PaginationParams{Limit: 5, Offset: 25, Page: 6}},
		{name: "limit clamped", query: "limit=500", want: PaginationParams{Limit: 100, Offset: 0, Page: 1}},
		{name: "non-positive limit ignored", query: "limit=0&page=2", want: PaginationParams{Limit: 10, Offset: 10, Page: 2}},
		{name: "invalid limit", query: "limit=abc", wantErr: true},
		{name: "overflowing page", query: "page=99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePaginationParams(contextWithQuery(tt.query))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortParams(t *testing.T) {
	allowed := []string{"booking_date", "total_amount", "event_date"}

	sp, err := ParseSortParams(contextWithQuery(""), allowed, "booking_date")
	require.NoError(t, err)
	assert.Equal(t, SortParams{Field: "booking_date", Desc: true}, sp)

	sp, err = ParseSortParams(contextWithQuery("sort=total_amount&order=ASC"), allowed, "booking_date")
	require.NoError(t, err)
	assert.Equal(t, SortParams{Field: "total_amount", Desc: false}, sp)

	_, err = ParseSortParams(contextWithQuery("sort=password"), allowed, "booking_date")
	assert.Error(t, err)

	_, err = ParseSortParams(contextWithQuery("order=sideways"), allowed, "booking_date")
	assert.Error(t, err)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int32(0), TotalPages(0, 10))
	assert.Equal(t, int32(1), TotalPages(10, 10))
	assert.Equal(t, int32(2), TotalPages(11, 10))
	assert.Equal(t, int32(0), TotalPages(5, 0))
}
