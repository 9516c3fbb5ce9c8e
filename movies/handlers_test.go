package movies

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/filmlist-go/apperror"
)

func newTestRouter(store MovieStore) *chi.Mux {
	handlers := NewHandlers(NewMovieService(store))
	r := chi.NewRouter()
	r.Route("/movies", handlers.RegisterRoutes)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleListDefaults(t *testing.T) {
	store := new(mockMovieStore)
	store.On("ListMovies", mock.Anything, mock.MatchedBy(func(p ListParams) bool {
		return p.Sort == DefaultSort && p.Limit == DefaultLimit
	})).Return([]Movie{testMovie(1, "Inception")}, nil)

	rec := doGet(t, newTestRouter(store), "/movies")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "Inception", resp.Movies[0].Title)
	assert.Equal(t, "rating_desc", resp.FiltersApplied.Sort)
	store.AssertExpectations(t)
}

func TestHandleListForwardsQueryParams(t *testing.T) {
	store := new(mockMovieStore)
	store.On("ListMovies", mock.Anything, mock.MatchedBy(func(p ListParams) bool {
		return p.Search == "dark" && p.Year != nil && *p.Year == 2008 &&
			p.Sort == SortYearAsc && p.Limit == 5
	})).Return([]Movie{}, nil)

	rec := doGet(t, newTestRouter(store), "/movies?search=dark&year=2008&sort=year_asc&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestHandleListSerializesEmptyAsArray(t *testing.T) {
	store := new(mockMovieStore)
	store.On("ListMovies", mock.Anything, mock.Anything).Return([]Movie{}, nil)

	rec := doGet(t, newTestRouter(store), "/movies")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"movies":[]`)
}

func TestHandleFilterOptions(t *testing.T) {
	store := new(mockMovieStore)
	store.On("DistinctGenres", mock.Anything).Return([]string{"Action"}, nil)
	store.On("DistinctYears", mock.Anything).Return([]int{2020}, nil)
	store.On("RatingRange", mock.Anything).Return(5.5, 9.0, nil)

	rec := doGet(t, newTestRouter(store), "/movies/filters")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FilterOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Action"}, resp.Genres)
	assert.Equal(t, []int{2020}, resp.Years)
	assert.Equal(t, 5.5, resp.RatingRange.Min)
	assert.Len(t, resp.SortOptions, 5)
}

func TestHandleGetMovie(t *testing.T) {
	store := new(mockMovieStore)
	movie := testMovie(7, "Interstellar")
	synopsis := "A team travels through a wormhole."
	movie.Synopsis = &synopsis
	store.On("GetMovieByID", mock.Anything, 7).Return(&movie, nil)

	rec := doGet(t, newTestRouter(store), "/movies/7")

	require.Equal(t, http.StatusOK, rec.Code)

	var got Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Interstellar", got.Title)
	require.NotNil(t, got.Synopsis)
	assert.Equal(t, synopsis, *got.Synopsis)
}

func TestHandleGetMovieNotFound(t *testing.T) {
	store := new(mockMovieStore)
	store.On("GetMovieByID", mock.Anything, 999).
		Return(nil, apperror.NewNotFoundError("movie not found", nil))

	rec := doGet(t, newTestRouter(store), "/movies/999")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "movie not found", resp.Error)
}

func TestHandleGetMovieNonNumericID(t *testing.T) {
	store := new(mockMovieStore)

	rec := doGet(t, newTestRouter(store), "/movies/abc")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "GetMovieByID", mock.Anything, mock.Anything)
}
