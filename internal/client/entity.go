package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	invoboxhttp "github.com/invobox-io/invobox-client/internal/http"
	"github.com/invobox-io/invobox-client/pkg/invobox"
)

// Generic entity access. Resource clients supply paths and entity types; the
// functions here own URI construction, argument validation, paging traversal,
// and new-entity id extraction. All validation happens before any request is
// issued.

// fetchEntity performs one GET and decodes the JSON body into T.
func fetchEntity[T any](ctx context.Context, httpClient *invoboxhttp.Client, uri string) (T, error) {
	var entity T

	if strings.TrimSpace(uri) == "" {
		return entity, invobox.ErrPathRequired
	}

	resp, err := httpClient.Get(ctx, uri, nil)
	if err != nil {
		return entity, err
	}

	if err := json.Unmarshal(resp.Body, &entity); err != nil {
		return entity, fmt.Errorf("parsing response: %w", err)
	}

	return entity, nil
}

// fetchEntityPage retrieves one page of a paginated collection. Pages are
// 1-based; the page parameter always comes first in the query string and any
// additional parameters extend it.
func fetchEntityPage[T any](ctx context.Context, httpClient *invoboxhttp.Client, basePath string, page int, params *invobox.QueryParams) ([]T, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, invobox.ErrPathRequired
	}

	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", invobox.ErrPageOutOfRange, page)
	}

	uri := basePath + "?page=" + strconv.Itoa(page) + params.Encode("&")

	return fetchEntity[[]T](ctx, httpClient, uri)
}

// fetchAllEntityPages retrieves the whole collection, one page per request,
// strictly sequentially, stopping at the first empty page. Entities created
// or removed by other actors between page requests can be duplicated or
// missed; the server's page size is fixed and not queryable, so this is
// inherent to the API.
func fetchAllEntityPages[T any](ctx context.Context, httpClient *invoboxhttp.Client, basePath string, params *invobox.QueryParams) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		items, err := fetchEntityPage[T](ctx, httpClient, basePath, page, params)
		if err != nil {
			return nil, err
		}

		if len(items) == 0 {
			return all, nil
		}

		all = append(all, items...)
	}
}

// fetchUnpagedEntities retrieves a collection endpoint the API does not
// paginate.
func fetchUnpagedEntities[T any](ctx context.Context, httpClient *invoboxhttp.Client, basePath string, params *invobox.QueryParams) ([]T, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, invobox.ErrPathRequired
	}

	return fetchEntity[[]T](ctx, httpClient, basePath+params.Encode("?"))
}

// createEntity POSTs the entity and returns the identifier the server
// assigned, taken from the creation response's Location header.
func createEntity[T any](ctx context.Context, httpClient *invoboxhttp.Client, basePath string, entity *T) (int64, error) {
	if strings.TrimSpace(basePath) == "" {
		return 0, invobox.ErrPathRequired
	}

	if entity == nil {
		return 0, invobox.ErrEntityRequired
	}

	resp, err := httpClient.Post(ctx, basePath, entity)
	if err != nil {
		return 0, err
	}

	return newEntityID(resp.Location())
}

// updateEntity PUTs the entity and returns the server's representation, which
// may differ from the submitted one.
func updateEntity[T any](ctx context.Context, httpClient *invoboxhttp.Client, entityPath string, entity *T) (*T, error) {
	if strings.TrimSpace(entityPath) == "" {
		return nil, invobox.ErrPathRequired
	}

	if entity == nil {
		return nil, invobox.ErrEntityRequired
	}

	resp, err := httpClient.Put(ctx, entityPath, entity)
	if err != nil {
		return nil, err
	}

	updated := new(T)
	if err := json.Unmarshal(resp.Body, updated); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return updated, nil
}

// deleteEntity removes the entity at the given path.
func deleteEntity(ctx context.Context, httpClient *invoboxhttp.Client, entityPath string) error {
	if strings.TrimSpace(entityPath) == "" {
		return invobox.ErrPathRequired
	}

	_, err := httpClient.Delete(ctx, entityPath)

	return err
}

// newEntityID parses the numeric identifier out of a creation response's
// Location value. The final path segment must be a positive integer, with an
// optional ".json" extension that is stripped before parsing.
func newEntityID(location string) (int64, error) {
	segment := location
	if idx := strings.LastIndex(location, "/"); idx >= 0 {
		segment = location[idx+1:]
	}

	segment = strings.TrimSuffix(segment, ".json")

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id < 1 {
		return 0, &invobox.InvalidLocationError{Location: location}
	}

	return id, nil
}
