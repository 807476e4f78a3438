package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invobox-io/invobox-client/pkg/invobox"
)

func TestSubjectsClient_List(t *testing.T) {
	t.Parallel()

	var requestedPages []string

	pages := map[string]string{
		"1": `[{"id":1,"name":"Apple"},{"id":2,"name":"Banana"}]`,
		"2": `[{"id":3,"name":"Cherry"}]`,
	}

	server := httptest.NewServer(pagedHandler(t, "/api/v2/accounts/acme/subjects.json", pages, &requestedPages))
	defer server.Close()

	client := NewTestClient(server.URL)

	subjects, err := client.Subjects().List(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Apple", subjects[0].Name)
	assert.Equal(t, "Banana", subjects[1].Name)

	subjects, err = client.Subjects().List(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Empty(t, subjects)

	_, err = client.Subjects().List(context.Background(), 0, nil)
	require.ErrorIs(t, err, invobox.ErrPageOutOfRange)

	assert.Equal(t, []string{"1", "3"}, requestedPages)
}

func TestSubjectsClient_ListAll(t *testing.T) {
	t.Parallel()

	var requestedPages []string

	pages := map[string]string{
		"1": `[{"id":1,"name":"Apple"},{"id":2,"name":"Banana"}]`,
		"2": `[{"id":3,"name":"Cherry"}]`,
	}

	server := httptest.NewServer(pagedHandler(t, "/api/v2/accounts/acme/subjects.json", pages, &requestedPages))
	defer server.Close()

	subjects, err := NewTestClient(server.URL).Subjects().ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Cherry", subjects[2].Name)
	assert.Equal(t, []string{"1", "2", "3"}, requestedPages)
}

func TestSubjectsClient_ListWithParams(t *testing.T) {
	t.Parallel()

	var rawQueries []string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		rawQueries = append(rawQueries, request.URL.RawQuery)
		_, _ = writer.Write([]byte("[]"))
	}))
	defer server.Close()

	params := invobox.NewQueryParams().WithString("custom_id", "ext-7")

	_, err := NewTestClient(server.URL).Subjects().List(context.Background(), 2, params)
	require.NoError(t, err)
	assert.Equal(t, []string{"page=2&custom_id=ext-7"}, rawQueries)
}

func TestSubjectsClient_Get(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[invobox.Subject]{
		{
			Name:         "successful get",
			ID:           42,
			ExpectedPath: "/api/v2/accounts/acme/subjects/42.json",
			StatusCode:   http.StatusOK,
			Response:     &invobox.Subject{ID: 42, Name: "Apple s.r.o."},
			WantRequests: 1,
		},
		{
			Name:         "subject not found",
			ID:           99,
			ExpectedPath: "/api/v2/accounts/acme/subjects/99.json",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting subject",
			WantRequests: 1,
		},
		{
			Name:         "non-positive id issues no request",
			ID:           0,
			WantErr:      true,
			ErrMessage:   "id must be 1 or greater",
			WantRequests: 0,
		},
	}, func(client *Client) func(context.Context, int64) (*invobox.Subject, error) {
		return client.Subjects().Get
	})
}

func TestSubjectsClient_Create(t *testing.T) {
	t.Parallel()

	RunCreateTests(t, []TestCreateOperation[invobox.Subject]{
		{
			Name:         "successful create",
			Entity:       &invobox.Subject{Name: "Apple s.r.o."},
			ExpectedPath: "/api/v2/accounts/acme/subjects.json",
			StatusCode:   http.StatusCreated,
			Location:     "https://app.invobox.com/api/v2/accounts/acme/subjects/123456.json",
			WantID:       123456,
		},
		{
			Name:         "validation failure",
			Entity:       &invobox.Subject{},
			ExpectedPath: "/api/v2/accounts/acme/subjects.json",
			StatusCode:   http.StatusUnprocessableEntity,
			Response: map[string]interface{}{
				"errors": []map[string]interface{}{
					{"title": "Invalid subject", "detail": "Name can't be blank"},
				},
			},
			WantErr:    true,
			ErrMessage: "creating subject",
		},
		{
			Name:         "unusable location header",
			Entity:       &invobox.Subject{Name: "Apple s.r.o."},
			ExpectedPath: "/api/v2/accounts/acme/subjects.json",
			StatusCode:   http.StatusCreated,
			Location:     "https://app.invobox.com/api/v2/accounts/acme/subjects/new",
			WantErr:      true,
			ErrMessage:   invobox.LocationPattern,
		},
	}, func(client *Client) func(context.Context, *invobox.Subject) (int64, error) {
		return client.Subjects().Create
	})
}

func TestSubjectsClient_Update(t *testing.T) {
	t.Parallel()

	RunUpdateTests(t, []TestUpdateOperation[invobox.Subject]{
		{
			Name:         "successful update",
			Entity:       &invobox.Subject{ID: 42, Name: "Apple a.s."},
			ExpectedPath: "/api/v2/accounts/acme/subjects/42.json",
			StatusCode:   http.StatusOK,
			Response:     &invobox.Subject{ID: 42, Name: "Apple a.s."},
			WantRequests: 1,
		},
		{
			Name:         "nil entity issues no request",
			Entity:       nil,
			WantErr:      true,
			ErrMessage:   "entity is required",
			WantRequests: 0,
		},
		{
			Name:         "missing id issues no request",
			Entity:       &invobox.Subject{Name: "Apple a.s."},
			WantErr:      true,
			ErrMessage:   "id must be 1 or greater",
			WantRequests: 0,
		},
	}, func(client *Client) func(context.Context, *invobox.Subject) (*invobox.Subject, error) {
		return client.Subjects().Update
	})
}

func TestSubjectsClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           42,
			ExpectedPath: "/api/v2/accounts/acme/subjects/42.json",
			StatusCode:   http.StatusNoContent,
			WantRequests: 1,
		},
		{
			Name:         "subject not found",
			ID:           99,
			ExpectedPath: "/api/v2/accounts/acme/subjects/99.json",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "deleting subject",
			WantRequests: 1,
		},
		{
			Name:         "non-positive id issues no request",
			ID:           -1,
			WantErr:      true,
			ErrMessage:   "id must be 1 or greater",
			WantRequests: 0,
		},
	}, func(client *Client) func(context.Context, int64) error {
		return client.Subjects().Delete
	})
}
