// Package movies serves the movie catalog: parameter-driven listing with
// search, filters, and sorting, single-movie detail, and the filter options
// used by clients to populate their filter UI. The catalog is read-only from
// the API's perspective; rows are created by out-of-band data loading.
package movies

import "time"

// Movie is a catalog entry. Every descriptive field is nullable to tolerate
// incomplete source data, so all of them are pointers. PosterURL carries the
// derived poster image: film_image_url when present, otherwise the legacy
// poster_url column.
type Movie struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	ReleaseYear  *int       `json:"release_year"`
	Genre        *string    `json:"genre"`
	Language     *string    `json:"language"`
	IMDBRating   *float64   `json:"imdb_rating"`
	BudgetCrores *float64   `json:"budget_crores"`
	GrossCrores  *float64   `json:"gross_crores"`
	FilmImageURL *string    `json:"film_image_url"`
	PosterURL    *string    `json:"poster_url"`
	Synopsis     *string    `json:"synopsis,omitempty"`
	CreatedAt    time.Time  `json:"-"`
}
