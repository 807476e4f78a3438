package invobox_test

import (
	"testing"
	"time"

	"github.com/invobox-io/invobox-client/pkg/invobox"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_Encode(t *testing.T) {
	t.Parallel()

	prague := time.FixedZone("CET", 3600)

	tests := []struct {
		name     string
		params   *invobox.QueryParams
		prefix   string
		expected string
	}{
		{
			name:     "empty params",
			params:   invobox.NewQueryParams(),
			prefix:   "?",
			expected: "",
		},
		{
			name:     "nil params",
			params:   nil,
			prefix:   "?",
			expected: "",
		},
		{
			name:     "single string",
			params:   invobox.NewQueryParams().WithString("custom_id", "crm-42"),
			prefix:   "?",
			expected: "?custom_id=crm-42",
		},
		{
			name: "blank values dropped",
			params: invobox.NewQueryParams().
				WithString("a", "").
				WithString("b", "   ").
				WithString("c", "x"),
			prefix:   "?",
			expected: "?c=x",
		},
		{
			name: "only blank values gives empty string without prefix",
			params: invobox.NewQueryParams().
				WithString("a", "").
				WithString("b", " "),
			prefix:   "&",
			expected: "",
		},
		{
			name: "insertion order preserved",
			params: invobox.NewQueryParams().
				WithString("zeta", "1").
				WithString("alpha", "2").
				WithInt("page_size", 40),
			prefix:   "?",
			expected: "?zeta=1&alpha=2&page_size=40",
		},
		{
			name:     "ampersand prefix extends existing query",
			params:   invobox.NewQueryParams().WithString("status", "open"),
			prefix:   "&",
			expected: "&status=open",
		},
		{
			name:     "utc time keeps trailing Z",
			params:   invobox.NewQueryParams().WithTime("since", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			prefix:   "?",
			expected: "?since=2020-01-01T00%3A00%3A00Z",
		},
		{
			name:     "zoned time keeps offset",
			params:   invobox.NewQueryParams().WithTime("since", time.Date(2020, 6, 1, 12, 30, 0, 0, prague)),
			prefix:   "?",
			expected: "?since=2020-06-01T12%3A30%3A00%2B01%3A00",
		},
		{
			name:     "zero time skipped",
			params:   invobox.NewQueryParams().WithTime("since", time.Time{}),
			prefix:   "?",
			expected: "",
		},
		{
			name:     "nil time pointer skipped",
			params:   invobox.NewQueryParams().WithTimePtr("since", nil).WithString("status", "paid"),
			prefix:   "?",
			expected: "?status=paid",
		},
		{
			name:     "values are url encoded",
			params:   invobox.NewQueryParams().WithString("name", "Alice & Bob s.r.o."),
			prefix:   "?",
			expected: "?name=Alice+%26+Bob+s.r.o.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.Encode(tt.prefix))
		})
	}
}

func TestQueryParams_WithValue(t *testing.T) {
	t.Parallel()

	t.Run("typed values format invariantly", func(t *testing.T) {
		t.Parallel()

		params := invobox.NewQueryParams().
			WithValue("count", 12).
			WithValue("id", int64(99)).
			WithValue("ratio", 1.5).
			WithValue("missing", nil).
			WithValue("active", true)

		assert.Equal(t, "?count=12&id=99&ratio=1.5&active=true", params.Encode("?"))
	})

	t.Run("time value round trips", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)
		params := invobox.NewQueryParams().WithValue("updated_since", at)

		assert.Equal(t, "?updated_since=2021-03-14T15%3A09%3A26Z", params.Encode("?"))
	})

	t.Run("nil time pointer skipped", func(t *testing.T) {
		t.Parallel()

		var at *time.Time
		params := invobox.NewQueryParams().WithValue("updated_since", at)

		assert.Equal(t, "", params.Encode("?"))
		assert.Equal(t, 0, params.Len())
	})
}
