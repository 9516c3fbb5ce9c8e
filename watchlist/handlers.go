package watchlist

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/auth"
)

// Handlers exposes the WatchlistService over HTTP. Every route requires the
// JWT middleware; the handlers only read the user id it put in the context.
type Handlers struct {
	service *WatchlistService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *WatchlistService) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the watchlist routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList())
	r.Get("/status", h.HandleStatus())
	r.Post("/{movieID}", h.HandleAdd())
	r.Delete("/{movieID}", h.HandleRemove())
}

// HandleList godoc
// @Summary Get watchlist
// @Description Returns the authenticated user's watchlist with complete movie data, newest addition first.
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} watchlist.ListResponse "The user's watchlist"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /watchlist [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		resp, err := h.service.List(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleAdd godoc
// @Summary Add movie to watchlist
// @Description Adds a movie to the authenticated user's watchlist. Adding a movie that is already present succeeds with created=false.
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieID path int true "Movie ID"
// @Success 200 {object} watchlist.MutationResponse "Movie was already in the watchlist"
// @Success 201 {object} watchlist.MutationResponse "Movie added to the watchlist"
// @Failure 400 {object} apperror.ErrorResponse "Invalid movie id"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Movie not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /watchlist/{movieID} [post]
func (h *Handlers) HandleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid movie id", nil))
			return
		}

		resp, err := h.service.Add(r.Context(), userID, movieID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		status := http.StatusOK
		if resp.Created {
			status = http.StatusCreated
		}
		auth.WriteJSON(w, status, resp)
	}
}

// HandleRemove godoc
// @Summary Remove movie from watchlist
// @Description Removes a movie from the authenticated user's watchlist.
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieID path int true "Movie ID"
// @Success 200 {object} watchlist.MutationResponse "Movie removed from the watchlist"
// @Failure 400 {object} apperror.ErrorResponse "Invalid movie id"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Movie not found or not in watchlist"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /watchlist/{movieID} [delete]
func (h *Handlers) HandleRemove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid movie id", nil))
			return
		}

		resp, err := h.service.Remove(r.Context(), userID, movieID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleStatus godoc
// @Summary Watchlist status for multiple movies
// @Description Returns a presence map for a comma-delimited list of movie ids. Ids of absent movies resolve to false.
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movie_ids query string true "Comma-delimited movie ids, e.g. 1,2,3"
// @Success 200 {object} watchlist.StatusResponse "Presence map"
// @Failure 400 {object} apperror.ErrorResponse "Malformed movie_ids"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /watchlist/status [get]
func (h *Handlers) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		resp, err := h.service.Status(r.Context(), userID, r.URL.Query().Get("movie_ids"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
