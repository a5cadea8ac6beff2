// Package source resolves a query string into a result set, either from an
// in-memory dataset or from a remote fetcher.
package source

import (
	"context"
	"fmt"
	"log"

	"tuicomplete/internal/domain"
	"tuicomplete/internal/eventbus"
	"tuicomplete/internal/fetch"
)

// QuerySource produces the candidates for one query.
// Resolve never fails; problems degrade to an empty result set.
type QuerySource interface {
	Resolve(ctx context.Context, query string) domain.ResultSet
}

// Static filters a fixed dataset
type Static struct {
	data domain.Dataset
}

func NewStatic(data domain.Dataset) *Static {
	return &Static{data: data}
}

func (s *Static) Resolve(ctx context.Context, query string) domain.ResultSet {
	if query == "" {
		return domain.ResultSet{}
	}
	return s.data.Filter(query)
}

// Remote delegates to a fetcher and swallows its failures
type Remote struct {
	fetcher      fetch.Fetcher
	numOfResults int
	bus          eventbus.EventBus
}

// NewRemote creates a remote source. bus may be nil.
func NewRemote(fetcher fetch.Fetcher, numOfResults int, bus eventbus.EventBus) *Remote {
	return &Remote{fetcher: fetcher, numOfResults: numOfResults, bus: bus}
}

func (r *Remote) Resolve(ctx context.Context, query string) domain.ResultSet {
	if query == "" {
		return domain.ResultSet{}
	}

	fetched, err := r.fetch(ctx, query)
	if err != nil {
		log.Printf("Fetch for %q failed, showing no results: %v", query, err)
		if r.bus != nil {
			r.bus.Publish(eventbus.FetchFailedEvent{Query: query, Err: err})
		}
		return domain.ResultSet{}
	}

	return domain.Dataset(fetched).Filter(query)
}

func (r *Remote) fetch(ctx context.Context, query string) (results domain.ResultSet, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			results, err = nil, fmt.Errorf("fetcher panicked: %v", rec)
		}
	}()
	return r.fetcher.Fetch(ctx, query, r.numOfResults)
}

// New picks the source variant once: a non-nil dataset wins over the fetcher
func New(data domain.Dataset, fetcher fetch.Fetcher, numOfResults int, bus eventbus.EventBus) (QuerySource, error) {
	switch {
	case data != nil:
		return NewStatic(data), nil
	case fetcher != nil:
		return NewRemote(fetcher, numOfResults, bus), nil
	default:
		return nil, fmt.Errorf("a dataset or a fetcher is required")
	}
}
