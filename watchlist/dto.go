// Package watchlist lets an authenticated user maintain a personal list of
// movies to track. An entry is owned by its (user, movie) pair: adding is
// idempotent, both references are enforced by the store, and deleting a user
// or a movie cascades to its entries.
package watchlist

import (
	"time"

	"github.com/user/filmlist-go/movies"
)

// Item is one watchlist entry joined with its movie data. InWatchlist is a
// constant true marker kept for clients that mix listing and status results.
type Item struct {
	movies.Movie
	AddedToWatchlist time.Time `json:"added_to_watchlist"`
	InWatchlist      bool      `json:"in_watchlist"`
}

// ListResponse is the body of GET /watchlist.
type ListResponse struct {
	Watchlist  []Item `json:"watchlist"`
	TotalCount int    `json:"total_count"`
}

// MutationResponse is the body of watchlist add and remove. Created
// distinguishes a true creation from the idempotent "already present"
// outcome of an add.
type MutationResponse struct {
	Success     bool          `json:"success"`
	Created     bool          `json:"created"`
	Message     string        `json:"message"`
	InWatchlist bool          `json:"in_watchlist"`
	Movie       *movies.Movie `json:"movie"`
}

// StatusResponse maps each requested movie id to its watchlist presence.
type StatusResponse struct {
	Status map[int]bool `json:"status"`
}
