package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusgate/campusgate-go/internal/dataset"
)

// Fetcher retrieves the raw dataset text. Implemented by dataset.Client.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// SearchService runs the fetch, parse, filter pipeline over the remote
// dataset. Every search fetches fresh data; nothing is cached between
// requests.
type SearchService struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(fetcher Fetcher, log zerolog.Logger) *SearchService {
	return &SearchService{fetcher: fetcher, log: log}
}

// Search returns the dataset records whose field matches the query as a
// case-insensitive substring. An empty result is not an error.
func (s *SearchService) Search(ctx context.Context, field dataset.Field, query string) ([]dataset.Record, error) {
	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fetching dataset")
		return nil, err
	}

	matched := dataset.Filter(dataset.Parse(raw), field, query)
	s.log.Debug().
		Str("field", string(field)).
		Str("query", query).
		Int("matches", len(matched)).
		Msg("dataset search")

	return matched, nil
}
