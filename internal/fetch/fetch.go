// Package fetch provides remote candidate sources.
package fetch

import (
	"context"

	"tuicomplete/internal/domain"
)

// Fetcher looks up at most n candidates matching query
type Fetcher interface {
	Fetch(ctx context.Context, query string, n int) (domain.ResultSet, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, query string, n int) (domain.ResultSet, error)

func (f FetcherFunc) Fetch(ctx context.Context, query string, n int) (domain.ResultSet, error) {
	return f(ctx, query, n)
}
