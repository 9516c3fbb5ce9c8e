package watchlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/movies"
)

type mockWatchlistStore struct {
	mock.Mock
}

func (m *mockWatchlistStore) ListEntries(ctx context.Context, userID int) ([]Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *mockWatchlistStore) AddEntry(ctx context.Context, userID, movieID int) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchlistStore) RemoveEntry(ctx context.Context, userID, movieID int) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchlistStore) EntriesFor(ctx context.Context, userID int, movieIDs []int) (map[int]bool, error) {
	args := m.Called(ctx, userID, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]bool), args.Error(1)
}

type mockMovieStore struct {
	mock.Mock
}

func (m *mockMovieStore) ListMovies(ctx context.Context, p movies.ListParams) ([]movies.Movie, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]movies.Movie), args.Error(1)
}

func (m *mockMovieStore) GetMovieByID(ctx context.Context, id int) (*movies.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *mockMovieStore) DistinctGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockMovieStore) DistinctYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockMovieStore) RatingRange(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func newTestService() (*WatchlistService, *mockWatchlistStore, *mockMovieStore) {
	store := new(mockWatchlistStore)
	movieStore := new(mockMovieStore)
	return NewWatchlistService(store, movieStore), store, movieStore
}

func testMovie(id int, title string) *movies.Movie {
	return &movies.Movie{ID: id, Title: title}
}

func TestListNewestFirstIsPassedThrough(t *testing.T) {
	service, store, _ := newTestService()

	items := []Item{
		{Movie: *testMovie(2, "Later"), AddedToWatchlist: time.Now(), InWatchlist: true},
		{Movie: *testMovie(1, "Earlier"), AddedToWatchlist: time.Now().Add(-time.Hour), InWatchlist: true},
	}
	store.On("ListEntries", mock.Anything, 42).Return(items, nil)

	resp, err := service.List(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, "Later", resp.Watchlist[0].Title)
	assert.True(t, resp.Watchlist[0].InWatchlist)
	store.AssertExpectations(t)
}

func TestListEmptyWatchlist(t *testing.T) {
	service, store, _ := newTestService()

	store.On("ListEntries", mock.Anything, 42).Return([]Item{}, nil)

	resp, err := service.List(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, resp.Watchlist)
	assert.Equal(t, 0, resp.TotalCount)
}

func TestAddCreatesEntry(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("AddEntry", mock.Anything, 42, 7).Return(true, nil)

	resp, err := service.Add(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Created)
	assert.True(t, resp.InWatchlist)
	assert.Equal(t, "'Dune' added to watchlist", resp.Message)
	require.NotNil(t, resp.Movie)
	assert.Equal(t, 7, resp.Movie.ID)
	store.AssertExpectations(t)
}

func TestAddAlreadyPresentSucceeds(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("AddEntry", mock.Anything, 42, 7).Return(false, nil)

	resp, err := service.Add(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Created)
	assert.True(t, resp.InWatchlist)
	assert.Equal(t, "movie already in watchlist", resp.Message)
}

func TestAddNonexistentMovie(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 999).
		Return(nil, apperror.NewNotFoundError("movie not found", nil))

	_, err := service.Add(context.Background(), 42, 999)

	assert.True(t, apperror.IsNotFound(err))
	store.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveSucceeds(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("RemoveEntry", mock.Anything, 42, 7).Return(true, nil)

	resp, err := service.Remove(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.InWatchlist)
	assert.Equal(t, "'Dune' removed from watchlist", resp.Message)
}

func TestRemoveEntryNotInWatchlist(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 7).Return(testMovie(7, "Dune"), nil)
	store.On("RemoveEntry", mock.Anything, 42, 7).Return(false, nil)

	_, err := service.Remove(context.Background(), 42, 7)

	require.True(t, apperror.IsNotFound(err))
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "movie not in watchlist", appErr.Message)
}

func TestRemoveNonexistentMovie(t *testing.T) {
	service, store, movieStore := newTestService()

	movieStore.On("GetMovieByID", mock.Anything, 999).
		Return(nil, apperror.NewNotFoundError("movie not found", nil))

	_, err := service.Remove(context.Background(), 42, 999)

	require.True(t, apperror.IsNotFound(err))
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "movie not found", appErr.Message)
	store.AssertNotCalled(t, "RemoveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusCoversEveryRequestedID(t *testing.T) {
	service, store, _ := newTestService()

	store.On("EntriesFor", mock.Anything, 42, []int{1, 2, 999}).
		Return(map[int]bool{1: true}, nil)

	resp, err := service.Status(context.Background(), 42, "1,2,999")

	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false, 999: false}, resp.Status)
}

func TestStatusEmptyParam(t *testing.T) {
	service, store, _ := newTestService()

	resp, err := service.Status(context.Background(), 42, "")

	require.NoError(t, err)
	assert.Empty(t, resp.Status)
	assert.NotNil(t, resp.Status)
	store.AssertNotCalled(t, "EntriesFor", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusSkipsBlankSegments(t *testing.T) {
	service, store, _ := newTestService()

	store.On("EntriesFor", mock.Anything, 42, []int{1, 3}).
		Return(map[int]bool{1: true, 3: true}, nil)

	resp, err := service.Status(context.Background(), 42, "1,,3,")

	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 3: true}, resp.Status)
}

func TestStatusMalformedIDs(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Status(context.Background(), 42, "1,abc,3")

	require.True(t, apperror.IsValidationError(err))
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "invalid movie_ids format", appErr.Message)
}
