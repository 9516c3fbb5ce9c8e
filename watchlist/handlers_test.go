package watchlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/auth"
)

// withUserID stands in for the JWT middleware and injects a fixed user id.
func withUserID(userID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(userID int, store WatchlistStore, movieStore *mockMovieStore) *chi.Mux {
	handlers := NewHandlers(NewWatchlistService(store, movieStore))
	r := chi.NewRouter()
	r.Route("/watchlist", func(r chi.Router) {
		r.Use(withUserID(userID))
		handlers.RegisterRoutes(r)
	})
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleListReturnsWatchlist(t *testing.T) {
	store := new(mockWatchlistStore)
	items := []Item{{Movie: *testMovie(1, "Dune"), AddedToWatchlist: time.Now(), InWatchlist: true}}
	store.On("ListEntries", mock.Anything, 42).Return(items, nil)

	rec := doRequest(t, newTestRouter(42, store, new(mockMovieStore)), http.MethodGet, "/watchlist")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "Dune", resp.Watchlist[0].Title)
	assert.True(t, resp.Watchlist[0].InWatchlist)
}

func TestHandleListWithoutIdentity(t *testing.T) {
	store := new(mockWatchlistStore)
	handlers := NewHandlers(NewWatchlistService(store, new(mockMovieStore)))
	r := chi.NewRouter()
	r.Route("/watchlist", handlers.RegisterRoutes)

	rec := doRequest(t, r, http.MethodGet, "/watchlist")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	store.AssertNotCalled(t, "ListEntries", mock.Anything, mock.Anything)
}

func TestHandleAddCreatedReturns201(t *testing.T) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("AddEntry", mock.Anything, 42, 7).Return(true, nil)

	rec := doRequest(t, newTestRouter(42, store, movieStore), http.MethodPost, "/watchlist/7")

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Created)
	assert.True(t, resp.InWatchlist)
}

func TestHandleAddAlreadyPresentReturns200(t *testing.T) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("AddEntry", mock.Anything, 42, 7).Return(false, nil)

	rec := doRequest(t, newTestRouter(42, store, movieStore), http.MethodPost, "/watchlist/7")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Created)
	assert.Equal(t, "movie already in watchlist", resp.Message)
}

func TestHandleAddNonexistentMovie(t *testing.T) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	movieStore.On("GetMovieByID", mock.Anything, 999).
		Return(nil, apperror.NewNotFoundError("movie not found", nil))

	rec := doRequest(t, newTestRouter(42, store, movieStore), http.MethodPost, "/watchlist/999")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAddNonNumericID(t *testing.T) {
	store := new(mockWatchlistStore)

	rec := doRequest(t, newTestRouter(42, store, new(mockMovieStore)), http.MethodPost, "/watchlist/abc")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRemoveReturns200(t *testing.T) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("RemoveEntry", mock.Anything, 42, 7).Return(true, nil)

	rec := doRequest(t, newTestRouter(42, store, movieStore), http.MethodDelete, "/watchlist/7")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.InWatchlist)
}

func TestHandleRemoveNotInWatchlist(t *testing.T) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("RemoveEntry", mock.Anything, 42, 7).Return(false, nil)

	rec := doRequest(t, newTestRouter(42, store, movieStore), http.MethodDelete, "/watchlist/7")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "movie not in watchlist", resp.Error)
}

func TestHandleStatus(t *testing.T) {
	store := new(mockWatchlistStore)
	store.On("EntriesFor", mock.Anything, 42, []int{1, 2}).
		Return(map[int]bool{1: true}, nil)

	rec := doRequest(t, newTestRouter(42, store, new(mockMovieStore)), http.MethodGet, "/watchlist/status?movie_ids=1,2")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[int]bool{1: true, 2: false}, resp.Status)
}

func TestHandleStatusMalformed(t *testing.T) {
	store := new(mockWatchlistStore)

	rec := doRequest(t, newTestRouter(42, store, new(mockMovieStore)), http.MethodGet, "/watchlist/status?movie_ids=a,b")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatusNoParam(t *testing.T) {
	store := new(mockWatchlistStore)

	rec := doRequest(t, newTestRouter(42, store, new(mockMovieStore)), http.MethodGet, "/watchlist/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":{}`)
}
