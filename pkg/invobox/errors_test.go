package invobox_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/invobox-io/invobox-client/pkg/invobox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	t.Run("structured body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors":[{"title":"Validation failed","detail":"name can't be blank"}]}`)

		respErr := invobox.ParseResponseError(http.StatusUnprocessableEntity, body)
		assert.Equal(t, http.StatusUnprocessableEntity, respErr.StatusCode)
		require.Len(t, respErr.Errors, 1)
		assert.Equal(t, "Validation failed", respErr.Errors[0].Title)
		assert.Contains(t, respErr.Error(), "422")
		assert.Contains(t, respErr.Error(), "name can't be blank")
	})

	t.Run("unstructured body is carried verbatim", func(t *testing.T) {
		t.Parallel()

		respErr := invobox.ParseResponseError(http.StatusInternalServerError, []byte("boom"))
		assert.Empty(t, respErr.Errors)
		assert.Equal(t, "boom", respErr.Body)
		assert.Contains(t, respErr.Error(), "500")
		assert.Contains(t, respErr.Error(), "boom")
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		respErr := invobox.ParseResponseError(http.StatusNotFound, nil)
		assert.Equal(t, "API request failed with status 404", respErr.Error())
		assert.Nil(t, respErr.FirstError())
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		expected bool
	}{
		{
			name:     "not found",
			err:      &invobox.ResponseError{StatusCode: http.StatusNotFound},
			check:    invobox.IsNotFound,
			expected: true,
		},
		{
			name:     "not found wrapped",
			err:      fmt.Errorf("getting subject: %w", &invobox.ResponseError{StatusCode: http.StatusNotFound}),
			check:    invobox.IsNotFound,
			expected: true,
		},
		{
			name:     "unauthorized",
			err:      &invobox.ResponseError{StatusCode: http.StatusUnauthorized},
			check:    invobox.IsUnauthorized,
			expected: true,
		},
		{
			name:     "unprocessable",
			err:      &invobox.ResponseError{StatusCode: http.StatusUnprocessableEntity},
			check:    invobox.IsUnprocessable,
			expected: true,
		},
		{
			name:     "rate limited",
			err:      &invobox.ResponseError{StatusCode: http.StatusTooManyRequests},
			check:    invobox.IsRateLimited,
			expected: true,
		},
		{
			name:     "status mismatch",
			err:      &invobox.ResponseError{StatusCode: http.StatusInternalServerError},
			check:    invobox.IsNotFound,
			expected: false,
		},
		{
			name:     "other error type",
			err:      invobox.ErrPageOutOfRange,
			check:    invobox.IsNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.check(tt.err))
		})
	}
}

func TestInvalidLocationError(t *testing.T) {
	t.Parallel()

	err := &invobox.InvalidLocationError{Location: "https://example.com/subjects/abc"}

	// The message names both the expected shape and the value received.
	assert.Contains(t, err.Error(), invobox.LocationPattern)
	assert.Contains(t, err.Error(), "https://example.com/subjects/abc")
}
