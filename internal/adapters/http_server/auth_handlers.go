package httpserver

import (
	"net/http"

	"reviewboard/internal/adapters/observability"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	sess, err := h.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		observability.ObserveAuth("signup", "fail")
		respondErr(w, err)
		return
	}
	observability.ObserveAuth("signup", "ok")
	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	sess, err := h.Auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		observability.ObserveAuth("login", "fail")
		respondErr(w, err)
		return
	}
	observability.ObserveAuth("login", "ok")
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	writeJSON(w, http.StatusOK, id)
}
