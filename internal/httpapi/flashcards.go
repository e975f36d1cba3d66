package httpapi

import (
	"errors"
	"net/http"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.SubmitAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.UserID = uid

	ctx, cancel := h.context(r)
	defer cancel()

	state, err := h.service.SubmitAnswer(ctx, req)
	if err != nil {
		// the review state is saved; only the subject metric missed this answer
		if errors.Is(err, models.ErrStaleProgress) {
			h.writeErrorData(w, r, err, state)
			return
		}
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, state)
}

func (h *Handler) flashcardsToRepeat(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	due, err := h.service.FlashcardsToRepeat(ctx, models.DueFlashcardsRequest{
		UserID:  uid,
		TopicID: r.URL.Query().Get("topicId"),
		Skip:    page.Skip,
		Take:    page.Take,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, due)
}

func (h *Handler) flashcardsByTopic(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	cards, err := h.service.FlashcardsByTopic(ctx, chi.URLParam(r, "topicId"), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) entryTestFlashcards(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	cards, err := h.service.EntryTestFlashcards(ctx, r.URL.Query().Get("subjectId"), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cards)
}
