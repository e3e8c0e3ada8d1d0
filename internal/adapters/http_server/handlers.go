package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reviewboard/internal/app"
	"reviewboard/internal/domain"
)

type Handlers struct {
	Auth     *app.AuthService
	Catalog  *app.CatalogService
	Reviews  *app.ReviewService
	Comments *app.CommentService

	// AuthThrottle wraps signup/login; zero value disables throttling.
	AuthThrottle func(http.Handler) http.Handler
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Group(func(r chi.Router) {
		if h.AuthThrottle != nil {
			r.Use(h.AuthThrottle)
		}
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// Public reads
	s.mux.Get("/items", h.listItems)
	s.mux.Get("/items/{itemId}", h.getItem)
	s.mux.Get("/items/{itemId}/reviews", h.listItemReviews)
	s.mux.Get("/items/{itemId}/reviews/{reviewId}/comments", h.listReviewComments)

	// Everything that mutates, plus the self-only listings, needs a token.
	s.mux.Group(func(r chi.Router) {
		r.Use(RequireAuth(h.Auth.VerifyToken))
		r.Get("/auth/me", h.me)
		r.Post("/items/{itemId}/reviews", h.createReview)
		r.Put("/items/{itemId}/reviews/{reviewId}", h.updateReview)
		r.Delete("/items/{itemId}/reviews/{reviewId}", h.deleteReview)
		r.Post("/items/{itemId}/reviews/{reviewId}/comments", h.createComment)
		r.Put("/items/{itemId}/reviews/{reviewId}/comments/{commentId}", h.updateComment)
		r.Delete("/items/{itemId}/reviews/{reviewId}/comments/{commentId}", h.deleteComment)
		r.Get("/users/{userId}/reviews", h.listUserReviews)
		r.Get("/users/{userId}/comments", h.listUserComments)
	})
}

// ---- response plumbing ----

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// respondErr is the single error boundary: every store/service error lands
// here and is translated to a status code. Uncategorized errors are logged
// server-side and surface as a generic 500.
func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "authorization required")
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusForbidden, "invalid token")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "not authorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "username or email already exists")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrInvalid
	}
	return nil
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalid
	}
	return id, nil
}

// ---- items ----

func (h *Handlers) listItems(w http.ResponseWriter, r *http.Request) {
	// Raw values go straight to the service; clamping happens there.
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	out, err := h.Catalog.ListItems(r.Context(), page, limit)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemId")
	if err != nil {
		respondErr(w, err)
		return
	}
	it, err := h.Catalog.GetItem(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}
