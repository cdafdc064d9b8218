package crm

import (
	"context"
)

// Page is a single page of items plus the server's continuation token. An
// empty token signals the end of results.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// PageFunc fetches one page of results for the given continuation token. An
// empty token fetches the first page. Implementations perform exactly one
// round trip per invocation.
type PageFunc[T any] func(ctx context.Context, pageToken string) (*Page[T], error)

// PageSettings bounds auto-pagination. Zero values mean unbounded.
type PageSettings struct {
	// MaxCalls caps the number of page fetches.
	MaxCalls int

	// MaxResults caps the total number of accumulated items.
	MaxResults int
}

// PageIterator lazily walks pages of results item by item, fetching the next
// page only when the current one is exhausted.
type PageIterator[T any] struct {
	ctx       context.Context
	fetch     PageFunc[T]
	buffer    []T
	nextToken string
	done      bool
	err       error
}

// NewPageIterator creates an iterator over the pages produced by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether another item is available, fetching pages as
// needed. Fetch errors are surfaced by the following Next call.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	for len(it.buffer) == 0 {
		if it.done {
			return false
		}

		if it.fill() != nil {
			return true
		}
	}

	return true
}

// Next returns the next item, or an error when the underlying fetch failed
// or the results are exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator[T]) fill() error {
	page, err := it.fetch(it.ctx, it.nextToken)
	if err != nil {
		it.err = err
		it.done = true

		return err
	}

	it.buffer = append(it.buffer, page.Items...)
	it.nextToken = page.NextPageToken

	if page.NextPageToken == "" {
		it.done = true
	}

	return nil
}

// FetchAllPages accumulates items across pages until the results are
// exhausted or a settings ceiling is hit.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], settings *PageSettings) ([]T, error) {
	var (
		items []T
		token string
		calls int
	)

	for {
		page, err := fetch(ctx, token)
		if err != nil {
			return items, err
		}

		items = append(items, page.Items...)
		calls++

		if settings != nil && settings.MaxResults > 0 && len(items) >= settings.MaxResults {
			return items[:settings.MaxResults], nil
		}

		if page.NextPageToken == "" {
			return items, nil
		}

		if settings != nil && settings.MaxCalls > 0 && calls >= settings.MaxCalls {
			return items, nil
		}

		token = page.NextPageToken
	}
}

// PageResult is one streamed page of items, or the error that ended the
// stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages lazily and delivers them on the returned channel
// in server order. The channel is closed after the last page, a settings
// ceiling, an error, or context cancellation; cancelling the context stops
// further fetches.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T], settings *PageSettings) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		var (
			token   string
			calls   int
			yielded int
		)

		for {
			page, err := fetch(ctx, token)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			items := page.Items
			if settings != nil && settings.MaxResults > 0 && yielded+len(items) > settings.MaxResults {
				items = items[:settings.MaxResults-yielded]
			}

			select {
			case results <- PageResult[T]{Items: items}:
			case <-ctx.Done():
				return
			}

			yielded += len(items)
			calls++

			if page.NextPageToken == "" {
				return
			}

			if settings != nil && settings.MaxCalls > 0 && calls >= settings.MaxCalls {
				return
			}

			if settings != nil && settings.MaxResults > 0 && yielded >= settings.MaxResults {
				return
			}

			token = page.NextPageToken
		}
	}()

	return results
}
