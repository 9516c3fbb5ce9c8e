package watchlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/filmlist-go/apperror"
)

// pgForeignKeyViolation is the PostgreSQL error code for foreign key
// violations.
const pgForeignKeyViolation = "23503"

// WatchlistStore is the persistence boundary for watchlist entries.
type WatchlistStore interface {
	// ListEntries returns the user's entries joined with movie data, newest
	// addition first with an id tiebreak, so repeated reads of unchanged
	// data come back in the same order.
	ListEntries(ctx context.Context, userID int) ([]Item, error)
	// AddEntry inserts the (user, movie) pair if absent in one atomic
	// statement and reports whether a row was created. A concurrent
	// duplicate insert is absorbed by the unique constraint, never surfaced
	// as an error.
	AddEntry(ctx context.Context, userID, movieID int) (bool, error)
	// RemoveEntry deletes the pair's entry and reports whether one existed.
	RemoveEntry(ctx context.Context, userID, movieID int) (bool, error)
	// EntriesFor returns the subset of movieIDs the user has watchlisted.
	EntriesFor(ctx context.Context, userID int, movieIDs []int) (map[int]bool, error)
}

type pgWatchlistStore struct {
	pool *pgxpool.Pool
}

// NewWatchlistStore returns a WatchlistStore backed by the given pgx pool.
func NewWatchlistStore(pool *pgxpool.Pool) WatchlistStore {
	return &pgWatchlistStore{pool: pool}
}

func (s *pgWatchlistStore) ListEntries(ctx context.Context, userID int) ([]Item, error) {
	query := `SELECT m.id, m.title, m.release_year, m.genre, m.language, m.imdb_rating,
		m.budget_crores, m.gross_crores, m.film_image_url,
		COALESCE(m.film_image_url, m.poster_url) AS poster_url,
		w.created_at
		FROM watchlist w
		JOIN movies m ON m.id = w.movie_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, w.id DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list watchlist", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID, &item.Title, &item.ReleaseYear, &item.Genre, &item.Language,
			&item.IMDBRating, &item.BudgetCrores, &item.GrossCrores,
			&item.FilmImageURL, &item.PosterURL,
			&item.AddedToWatchlist,
		)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan watchlist item", err)
		}
		item.InWatchlist = true
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read watchlist", err)
	}

	return items, nil
}

func (s *pgWatchlistStore) AddEntry(ctx context.Context, userID, movieID int) (bool, error) {
	query := `INSERT INTO watchlist (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO NOTHING`

	tag, err := s.pool.Exec(ctx, query, userID, movieID)
	if err != nil {
		var pgErr *pgconn.PgError
		// The movie (or user) can vanish between the service's existence
		// check and the insert.
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, apperror.NewNotFoundError("movie not found", nil)
		}
		return false, apperror.NewDatabaseError("failed to add watchlist entry", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *pgWatchlistStore) RemoveEntry(ctx context.Context, userID, movieID int) (bool, error) {
	query := `DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`

	tag, err := s.pool.Exec(ctx, query, userID, movieID)
	if err != nil {
		return false, apperror.NewDatabaseError("failed to remove watchlist entry", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *pgWatchlistStore) EntriesFor(ctx context.Context, userID int, movieIDs []int) (map[int]bool, error) {
	query := `SELECT movie_id FROM watchlist WHERE user_id = $1 AND movie_id = ANY($2)`

	rows, err := s.pool.Query(ctx, query, userID, movieIDs)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to get watchlist status", err)
	}
	defer rows.Close()

	present := map[int]bool{}
	for rows.Next() {
		var movieID int
		if err := rows.Scan(&movieID); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan watchlist status", err)
		}
		present[movieID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read watchlist status", err)
	}

	return present, nil
}
