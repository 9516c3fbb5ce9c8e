package movies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/filmlist-go/apperror"
)

// MovieStore is the persistence boundary for the movie catalog. The
// watchlist feature also depends on it for movie lookups.
type MovieStore interface {
	// ListMovies returns the movies matching the given parameters, ordered
	// and capped per the parameters.
	ListMovies(ctx context.Context, p ListParams) ([]Movie, error)
	// GetMovieByID returns one movie with its synopsis, or a NotFoundError.
	GetMovieByID(ctx context.Context, id int) (*Movie, error)
	// DistinctGenres returns the distinct non-null genres, ascending.
	DistinctGenres(ctx context.Context) ([]string, error)
	// DistinctYears returns the distinct non-null release years, descending.
	DistinctYears(ctx context.Context) ([]int, error)
	// RatingRange returns the observed min and max imdb_rating over rated
	// movies, or (0, 10) when none are rated.
	RatingRange(ctx context.Context) (float64, float64, error)
}

type pgMovieStore struct {
	pool *pgxpool.Pool
}

// NewMovieStore returns a MovieStore backed by the given pgx pool.
func NewMovieStore(pool *pgxpool.Pool) MovieStore {
	return &pgMovieStore{pool: pool}
}

func (s *pgMovieStore) ListMovies(ctx context.Context, p ListParams) ([]Movie, error) {
	query, args := buildListQuery(p)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list movies", err)
	}
	defer rows.Close()

	movies := []Movie{}
	for rows.Next() {
		var m Movie
		err := rows.Scan(
			&m.ID, &m.Title, &m.ReleaseYear, &m.Genre, &m.Language,
			&m.IMDBRating, &m.BudgetCrores, &m.GrossCrores,
			&m.FilmImageURL, &m.PosterURL,
		)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan movie", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read movies", err)
	}

	return movies, nil
}

func (s *pgMovieStore) GetMovieByID(ctx context.Context, id int) (*Movie, error) {
	query := `SELECT id, title, release_year, genre, language, imdb_rating,
		budget_crores, gross_crores, film_image_url,
		COALESCE(film_image_url, poster_url) AS poster_url, synopsis
		FROM movies WHERE id = $1`

	var m Movie
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.ReleaseYear, &m.Genre, &m.Language,
		&m.IMDBRating, &m.BudgetCrores, &m.GrossCrores,
		&m.FilmImageURL, &m.PosterURL, &m.Synopsis,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("movie not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get movie", err)
	}

	return &m, nil
}

func (s *pgMovieStore) DistinctGenres(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT genre FROM movies WHERE genre IS NOT NULL ORDER BY genre ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to get genres", err)
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan genre", err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read genres", err)
	}

	return genres, nil
}

func (s *pgMovieStore) DistinctYears(ctx context.Context) ([]int, error) {
	query := `SELECT DISTINCT release_year FROM movies WHERE release_year IS NOT NULL ORDER BY release_year DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to get years", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan year", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read years", err)
	}

	return years, nil
}

func (s *pgMovieStore) RatingRange(ctx context.Context) (float64, float64, error) {
	// min/max over zero rated rows yield NULL; fall back to the nominal
	// 0-10 rating scale.
	query := `SELECT COALESCE(MIN(imdb_rating), 0), COALESCE(MAX(imdb_rating), 10)
		FROM movies WHERE imdb_rating IS NOT NULL`

	var min, max float64
	if err := s.pool.QueryRow(ctx, query).Scan(&min, &max); err != nil {
		return 0, 0, apperror.NewDatabaseError("failed to get rating range", err)
	}

	return min, max, nil
}
