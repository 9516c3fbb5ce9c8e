package movies

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/auth"
)

// Handlers exposes the MovieService over HTTP.
type Handlers struct {
	service *MovieService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *MovieService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the movie routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList())
	r.Get("/filters", h.HandleFilterOptions())
	r.Get("/{id}", h.HandleGetMovie())
}

// HandleList godoc
// @Summary Browse movies
// @Description Lists movies with optional search, year, genre, and rating filters, sorted and capped.
// @Tags movies
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param year query int false "Exact release year"
// @Param genre query string false "Case-insensitive genre substring"
// @Param min_rating query number false "Inclusive minimum IMDb rating"
// @Param max_rating query number false "Inclusive maximum IMDb rating"
// @Param sort query string false "Sort key" Enums(rating_desc, rating_asc, year_desc, year_asc, title_asc)
// @Param limit query int false "Maximum number of results (default 60)"
// @Success 200 {object} movies.ListResponse "Matching movies with applied filters"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /movies [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := ParseListParams(r.URL.Query())

		resp, err := h.service.List(r.Context(), params)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleFilterOptions godoc
// @Summary Filter options
// @Description Returns the distinct genres, years, observed rating range, and supported sort options.
// @Tags movies
// @Produce json
// @Success 200 {object} movies.FilterOptionsResponse "Available filter options"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /movies/filters [get]
func (h *Handlers) HandleFilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.service.FilterOptions(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleGetMovie godoc
// @Summary Movie detail
// @Description Returns a single movie including its synopsis.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movies.Movie "Movie detail"
// @Failure 400 {object} apperror.ErrorResponse "Invalid movie id"
// @Failure 404 {object} apperror.ErrorResponse "Movie not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /movies/{id} [get]
func (h *Handlers) HandleGetMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid movie id", nil))
			return
		}

		movie, err := h.service.GetMovie(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, movie)
	}
}
