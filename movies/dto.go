package movies

// FiltersApplied echoes back the filters a listing request was served with.
type FiltersApplied struct {
	Search    string   `json:"search"`
	Year      *int     `json:"year"`
	Genre     string   `json:"genre"`
	MinRating *float64 `json:"min_rating"`
	MaxRating *float64 `json:"max_rating"`
	Sort      string   `json:"sort"`
}

// ListResponse is the body of GET /movies.
type ListResponse struct {
	Movies         []Movie        `json:"movies"`
	TotalCount     int            `json:"total_count"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

// RatingRange is the observed [min, max] imdb_rating span, rounded to one
// decimal.
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SortOption pairs a sort key with its display label.
type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptionsResponse is the body of GET /movies/filters. It reflects the
// data at request time, never a cached snapshot.
type FilterOptionsResponse struct {
	Genres      []string     `json:"genres"`
	Years       []int        `json:"years"`
	RatingRange RatingRange  `json:"rating_range"`
	SortOptions []SortOption `json:"sort_options"`
}
