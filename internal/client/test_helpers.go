package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/invobox-io/invobox-client/internal/http"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// testAccount is the account slug used by all client tests.
const testAccount = "acme"

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without credentials for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		account:    testAccount,
	}

	client.initializeResourceClients()

	return client
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TEntity any] struct {
	Name         string
	Entity       *TEntity
	ExpectedPath string
	StatusCode   int
	Location     string
	Response     interface{} // error response map for failure cases
	WantID       int64
	WantErr      bool
	ErrMessage   string
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TEntity any] struct {
	Name         string
	ID           int64
	ExpectedPath string
	StatusCode   int
	Response     *TEntity
	WantErr      bool
	ErrMessage   string
	WantRequests int
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TEntity any] struct {
	Name         string
	Entity       *TEntity
	ExpectedPath string
	StatusCode   int
	Response     *TEntity
	WantErr      bool
	ErrMessage   string
	WantRequests int
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           int64
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	WantRequests int
}

// RunCreateTests runs a series of create operation tests. The server answers
// POSTs with the configured status, Location header, and optional body.
func RunCreateTests[TEntity any](
	t *testing.T,
	tests []TestCreateOperation[TEntity],
	createFunc func(*Client) func(context.Context, *TEntity) (int64, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)

				var body TEntity

				err := json.NewDecoder(request.Body).Decode(&body)
				assert.NoError(t, err)

				writer.Header().Set("Content-Type", "application/json")

				if testCase.Location != "" {
					writer.Header().Set("Location", testCase.Location)
				}

				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			createFn := createFunc(NewTestClient(server.URL))
			id, err := createFn(context.Background(), testCase.Entity)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.WantID, id)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TEntity any](
	t *testing.T,
	tests []TestGetOperation[TEntity],
	getFunc func(*Client) func(context.Context, int64) (*TEntity, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			requests := 0

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requests++

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			getFn := getFunc(NewTestClient(server.URL))
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}

			assert.Equal(t, testCase.WantRequests, requests)
		})
	}
}

// RunUpdateTests runs a series of update operation tests. The API updates
// with PUT and returns the stored representation.
func RunUpdateTests[TEntity any](
	t *testing.T,
	tests []TestUpdateOperation[TEntity],
	updateFunc func(*Client) func(context.Context, *TEntity) (*TEntity, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			requests := 0

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requests++

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "PUT", request.Method)

				var body TEntity

				err := json.NewDecoder(request.Body).Decode(&body)
				assert.NoError(t, err)

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			updateFn := updateFunc(NewTestClient(server.URL))
			result, err := updateFn(context.Background(), testCase.Entity)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}

			assert.Equal(t, testCase.WantRequests, requests)
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, int64) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			requests := 0

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requests++

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "DELETE", request.Method)

				if testCase.Response != nil {
					writer.Header().Set("Content-Type", "application/json")
				}

				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			deleteFn := deleteFunc(NewTestClient(server.URL))
			err := deleteFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, testCase.WantRequests, requests)
		})
	}
}

// pagedHandler serves a fixed set of pages keyed by the "page" query value,
// answering any other page with an empty JSON array. It also records every
// requested page number.
func pagedHandler(t *testing.T, expectedPath string, pages map[string]string, requestedPages *[]string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		page := request.URL.Query().Get("page")
		*requestedPages = append(*requestedPages, page)

		writer.Header().Set("Content-Type", "application/json")

		body, ok := pages[page]
		if !ok {
			body = "[]"
		}

		_, _ = writer.Write([]byte(body))
	})
}
