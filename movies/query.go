package movies

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortKey enumerates the recognized sort orders for the movie listing.
type SortKey string

const (
	SortRatingDesc SortKey = "rating_desc"
	SortRatingAsc  SortKey = "rating_asc"
	SortYearDesc   SortKey = "year_desc"
	SortYearAsc    SortKey = "year_asc"
	SortTitleAsc   SortKey = "title_asc"

	// DefaultSort is applied when no sort or an unrecognized sort key is
	// supplied.
	DefaultSort = SortRatingDesc

	// DefaultLimit caps the result set when no limit is supplied. There is
	// no offset or cursor pagination; limit simply truncates.
	DefaultLimit = 60
)

// orderClauses maps each sort key to its ORDER BY clause. NULLS LAST keeps
// movies with a missing rating or year out of the top of every ordering, and
// the id tiebreak makes repeated reads of unchanged data stable. title_asc
// sorts case-insensitively on lower(title).
var orderClauses = map[SortKey]string{
	SortRatingDesc: "imdb_rating DESC NULLS LAST, id ASC",
	SortRatingAsc:  "imdb_rating ASC NULLS LAST, id ASC",
	SortYearDesc:   "release_year DESC NULLS LAST, id ASC",
	SortYearAsc:    "release_year ASC NULLS LAST, id ASC",
	SortTitleAsc:   "lower(title) ASC, id ASC",
}

// SortOptions is the static list of supported sort keys with display
// labels, in the order clients should present them.
var SortOptions = []SortOption{
	{Value: string(SortRatingDesc), Label: "Rating: High to Low"},
	{Value: string(SortRatingAsc), Label: "Rating: Low to High"},
	{Value: string(SortYearDesc), Label: "Year: Newest First"},
	{Value: string(SortYearAsc), Label: "Year: Oldest First"},
	{Value: string(SortTitleAsc), Label: "Title: A to Z"},
}

// ListParams is the typed, validated form of the listing query parameters.
// Nil pointer fields mean the filter was not supplied.
type ListParams struct {
	Search    string
	Year      *int
	Genre     string
	MinRating *float64
	MaxRating *float64
	Sort      SortKey
	Limit     int
}

// ParseListParams converts raw query parameters into ListParams. Values that
// fail to parse are treated as absent, and an unrecognized sort key falls
// back to the default rather than erroring.
func ParseListParams(values url.Values) ListParams {
	p := ListParams{
		Search: strings.TrimSpace(values.Get("search")),
		Genre:  strings.TrimSpace(values.Get("genre")),
		Sort:   DefaultSort,
		Limit:  DefaultLimit,
	}

	if v := values.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			p.Year = &year
		}
	}
	if v := values.Get("min_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			p.MinRating = &rating
		}
	}
	if v := values.Get("max_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			p.MaxRating = &rating
		}
	}
	if v := values.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			p.Limit = limit
		}
	}
	if v := SortKey(values.Get("sort")); v != "" {
		if _, ok := orderClauses[v]; ok {
			p.Sort = v
		}
	}

	return p
}

// Applied returns the filter echo included in the listing response.
func (p ListParams) Applied() FiltersApplied {
	return FiltersApplied{
		Search:    p.Search,
		Year:      p.Year,
		Genre:     p.Genre,
		MinRating: p.MinRating,
		MaxRating: p.MaxRating,
		Sort:      string(p.Sort),
	}
}

// buildListQuery composes the listing SQL from the parameters. Filters are
// conjunctive, and comparisons follow SQL three-valued semantics: a movie
// with a NULL rating never matches a rating bound, a NULL year never matches
// a year filter.
func buildListQuery(p ListParams) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, title, release_year, genre, language, imdb_rating,
		budget_crores, gross_crores, film_image_url,
		COALESCE(film_image_url, poster_url) AS poster_url
		FROM movies`)

	var conditions []string
	var args []interface{}

	addCondition := func(expr string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if p.Search != "" {
		addCondition("title ILIKE $%d", "%"+p.Search+"%")
	}
	if p.Year != nil {
		addCondition("release_year = $%d", *p.Year)
	}
	if p.Genre != "" {
		addCondition("genre ILIKE $%d", "%"+p.Genre+"%")
	}
	if p.MinRating != nil {
		addCondition("imdb_rating >= $%d", *p.MinRating)
	}
	if p.MaxRating != nil {
		addCondition("imdb_rating <= $%d", *p.MaxRating)
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	order, ok := orderClauses[p.Sort]
	if !ok {
		order = orderClauses[DefaultSort]
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(order)

	args = append(args, p.Limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))

	return sb.String(), args
}
