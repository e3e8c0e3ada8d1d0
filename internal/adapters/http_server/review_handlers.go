package httpserver

import (
	"net/http"

	"reviewboard/internal/domain"
)

type reviewRequest struct {
	Rating     int     `json:"rating"`
	ReviewText *string `json:"review_text"`
}

func (h *Handlers) listItemReviews(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		respondErr(w, err)
		return
	}
	out, err := h.Reviews.ListByItem(r.Context(), itemID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	itemID, err := pathID(r, "itemId")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	rv, err := h.Reviews.Create(r.Context(), itemID, id, req.Rating, req.ReviewText)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	reviewID, err := pathID(r, "reviewId")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	rv, err := h.Reviews.Update(r.Context(), reviewID, id, req.Rating, req.ReviewText)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	reviewID, err := pathID(r, "reviewId")
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := h.Reviews.Delete(r.Context(), reviewID, id); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listUserReviews(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	userID, err := pathID(r, "userId")
	if err != nil {
		respondErr(w, err)
		return
	}
	order := domain.ParseSortOrder(r.URL.Query().Get("sort"))

	out, err := h.Reviews.ListByUser(r.Context(), userID, id, order)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
