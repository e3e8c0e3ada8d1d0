package httpserver

import (
	"net/http"

	"reviewboard/internal/domain"
)

type commentRequest struct {
	CommentText string `json:"comment_text"`
}

func (h *Handlers) listReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "reviewId")
	if err != nil {
		respondErr(w, err)
		return
	}
	out, err := h.Comments.ListByReview(r.Context(), reviewID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	reviewID, err := pathID(r, "reviewId")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	c, err := h.Comments.Create(r.Context(), reviewID, id, req.CommentText)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) updateComment(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	commentID, err := pathID(r, "commentId")
	if err != nil {
		respondErr(w, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, err)
		return
	}

	c, err := h.Comments.Update(r.Context(), commentID, id, req.CommentText)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	commentID, err := pathID(r, "commentId")
	if err != nil {
		respondErr(w, err)
		return
	}
	if err := h.Comments.Delete(r.Context(), commentID, id); err != nil {
		respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listUserComments(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	userID, err := pathID(r, "userId")
	if err != nil {
		respondErr(w, err)
		return
	}
	order := domain.ParseSortOrder(r.URL.Query().Get("sort"))

	out, err := h.Comments.ListByUser(r.Context(), userID, id, order)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
