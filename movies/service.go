package movies

import (
	"context"
	"math"
)

// MovieService provides the read-only catalog operations.
type MovieService struct {
	store MovieStore
}

// NewMovieService creates a MovieService over the given store.
func NewMovieService(store MovieStore) *MovieService {
	return &MovieService{store: store}
}

// List returns the movies matching the given parameters together with an
// echo of the applied filters.
func (s *MovieService) List(ctx context.Context, p ListParams) (*ListResponse, error) {
	movies, err := s.store.ListMovies(ctx, p)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Movies:         movies,
		TotalCount:     len(movies),
		FiltersApplied: p.Applied(),
	}, nil
}

// GetMovie returns a single movie with its synopsis.
func (s *MovieService) GetMovie(ctx context.Context, id int) (*Movie, error) {
	return s.store.GetMovieByID(ctx, id)
}

// FilterOptions assembles the filter UI data: distinct genres and years, the
// observed rating range rounded to one decimal, and the static sort options.
// Each call queries current data.
func (s *MovieService) FilterOptions(ctx context.Context) (*FilterOptionsResponse, error) {
	genres, err := s.store.DistinctGenres(ctx)
	if err != nil {
		return nil, err
	}

	years, err := s.store.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}

	min, max, err := s.store.RatingRange(ctx)
	if err != nil {
		return nil, err
	}

	return &FilterOptionsResponse{
		Genres: genres,
		Years:  years,
		RatingRange: RatingRange{
			Min: roundToOneDecimal(min),
			Max: roundToOneDecimal(max),
		},
		SortOptions: SortOptions,
	}, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
