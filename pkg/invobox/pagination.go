package invobox

import (
	"context"
)

// PageLister is the subset of a resource client that pagination helpers need:
// fetching one page of a collection. Pages are 1-based and an empty page
// signals the end of the collection; the server's page size is fixed and not
// queryable by the client.
type PageLister[T any] interface {
	List(ctx context.Context, page int, params *QueryParams) ([]T, error)
}

// PaginationOptions configures multi-page fetching.
type PaginationOptions struct {
	// StartPage is the first page to fetch. Defaults to 1.
	StartPage int
	// MaxPages caps how many pages are fetched; 0 means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns options that traverse the whole collection
// from the first page.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{StartPage: 1}
}

// FetchAllPages retrieves pages sequentially starting at StartPage and returns
// the in-order concatenation of their elements, stopping at the first empty
// page or once MaxPages pages were fetched.
//
// Pages are separate requests, so entities inserted or removed by other actors
// mid-traversal can appear twice or be missed. That is a property of the
// backing API; no client-side deduplication is attempted.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], params *QueryParams, options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	page := options.StartPage
	if page < 1 {
		page = 1
	}

	var all []T

	fetched := 0

	for {
		items, err := lister.List(ctx, page, params)
		if err != nil {
			return nil, err
		}

		if len(items) == 0 {
			break
		}

		all = append(all, items...)

		page++
		fetched++

		if options.MaxPages > 0 && fetched >= options.MaxPages {
			break
		}
	}

	return all, nil
}

// PageResult carries one fetched page or the error that ended streaming.
type PageResult[T any] struct {
	Page  int
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and delivers each one on the returned
// channel as soon as it arrives. The channel is closed after the first empty
// page, after MaxPages pages, on error (the error is delivered as the final
// result), or when ctx is done. Requests stay strictly sequential; the next
// page is only fetched after the previous result was consumed.
func StreamPages[T any](ctx context.Context, lister PageLister[T], params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	page := options.StartPage
	if page < 1 {
		page = 1
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		fetched := 0

		for {
			items, err := lister.List(ctx, page, params)
			if err != nil {
				select {
				case results <- PageResult[T]{Page: page, Err: err}:
				case <-ctx.Done():
				}

				return
			}

			if len(items) == 0 {
				return
			}

			select {
			case results <- PageResult[T]{Page: page, Items: items}:
			case <-ctx.Done():
				return
			}

			page++
			fetched++

			if options.MaxPages > 0 && fetched >= options.MaxPages {
				return
			}
		}
	}()

	return results
}

// PaginationIterator walks a paginated collection element by element, fetching
// pages lazily.
type PaginationIterator[T any] struct {
	ctx    context.Context
	lister PageLister[T]
	params *QueryParams

	page    int
	buffer  []T
	index   int
	done    bool
	pending error
}

// NewPaginationIterator creates an iterator over the collection served by
// lister, starting at page 1.
func NewPaginationIterator[T any](ctx context.Context, lister PageLister[T], params *QueryParams) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:    ctx,
		lister: lister,
		params: params,
		page:   1,
	}
}

// fill fetches the next page when the buffer is exhausted.
func (it *PaginationIterator[T]) fill() {
	if it.done || it.pending != nil || it.index < len(it.buffer) {
		return
	}

	items, err := it.lister.List(it.ctx, it.page, it.params)
	if err != nil {
		it.pending = err

		return
	}

	if len(items) == 0 {
		it.done = true

		return
	}

	it.buffer = items
	it.index = 0
	it.page++
}

// HasNext reports whether Next will produce another element or a pending
// fetch error. It may issue a request to find out.
func (it *PaginationIterator[T]) HasNext() bool {
	it.fill()

	return it.pending != nil || it.index < len(it.buffer)
}

// Next returns the next element. It returns ErrNoMoreItems once the
// collection is exhausted.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	it.fill()

	if it.pending != nil {
		err := it.pending
		it.pending = nil

		return zero, err
	}

	if it.index >= len(it.buffer) {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining elements.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to each remaining element, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}
