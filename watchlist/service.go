package watchlist

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/movies"
)

// WatchlistService implements the watchlist operations for an already
// authenticated user; identity extraction happens at the HTTP boundary.
type WatchlistService struct {
	store      WatchlistStore
	movieStore movies.MovieStore
}

// NewWatchlistService creates a WatchlistService over the given stores.
func NewWatchlistService(store WatchlistStore, movieStore movies.MovieStore) *WatchlistService {
	return &WatchlistService{
		store:      store,
		movieStore: movieStore,
	}
}

// List returns the user's watchlist joined with movie data, newest addition
// first.
func (s *WatchlistService) List(ctx context.Context, userID int) (*ListResponse, error) {
	items, err := s.store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Watchlist:  items,
		TotalCount: len(items),
	}, nil
}

// Add puts a movie on the user's watchlist. Adding a movie that is already
// present is a success, distinguished by Created=false; the insert itself is
// atomic, so racing duplicate adds collapse to a single entry.
func (s *WatchlistService) Add(ctx context.Context, userID, movieID int) (*MutationResponse, error) {
	movie, err := s.movieStore.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	created, err := s.store.AddEntry(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	message := "movie already in watchlist"
	if created {
		message = fmt.Sprintf("'%s' added to watchlist", movie.Title)
	}

	return &MutationResponse{
		Success:     true,
		Created:     created,
		Message:     message,
		InWatchlist: true,
		Movie:       movie,
	}, nil
}

// Remove takes a movie off the user's watchlist. A missing movie and a
// missing entry are both NotFound, with distinct messages.
func (s *WatchlistService) Remove(ctx context.Context, userID, movieID int) (*MutationResponse, error) {
	movie, err := s.movieStore.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	removed, err := s.store.RemoveEntry(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, apperror.NewNotFoundError("movie not in watchlist", nil)
	}

	return &MutationResponse{
		Success:     true,
		Created:     false,
		Message:     fmt.Sprintf("'%s' removed from watchlist", movie.Title),
		InWatchlist: false,
		Movie:       movie,
	}, nil
}

// Status resolves a comma-delimited id list to a presence map. Every
// requested id appears in the result; ids the user has not watchlisted, and
// ids of movies that do not exist at all, map to false.
func (s *WatchlistService) Status(ctx context.Context, userID int, movieIDsParam string) (*StatusResponse, error) {
	movieIDs, err := parseMovieIDs(movieIDsParam)
	if err != nil {
		return nil, err
	}
	if len(movieIDs) == 0 {
		return &StatusResponse{Status: map[int]bool{}}, nil
	}

	present, err := s.store.EntriesFor(ctx, userID, movieIDs)
	if err != nil {
		return nil, err
	}

	status := make(map[int]bool, len(movieIDs))
	for _, id := range movieIDs {
		status[id] = present[id]
	}

	return &StatusResponse{Status: status}, nil
}

// parseMovieIDs splits a comma-delimited id list. Blank segments are
// skipped; anything non-numeric is a validation error.
func parseMovieIDs(param string) ([]int, error) {
	if strings.TrimSpace(param) == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(param, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperror.NewValidationError("invalid movie_ids format", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
