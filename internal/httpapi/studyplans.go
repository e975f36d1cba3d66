package httpapi

import (
	"net/http"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/go-chi/chi/v5"
)

type topicStatusResponse struct {
	Message string           `json:"message"`
	Data    models.PlanTopic `json:"data"`
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreatePlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.UserID = uid

	ctx, cancel := h.context(r)
	defer cancel()

	plan, err := h.service.CreatePlan(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, plan)
}

func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	plans, err := h.service.Plans(ctx, uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, plans)
}

func (h *Handler) planBySubject(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	plan, err := h.service.PlanBySubject(ctx, uid, chi.URLParam(r, "subjectId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) updateTopicStatus(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateTopicStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	topic, err := h.service.UpdateTopicStatus(ctx, uid, chi.URLParam(r, "topicId"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, topicStatusResponse{
		Message: "Topic status updated successfully.",
		Data:    topic,
	})
}
