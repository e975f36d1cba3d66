package httpapi

import (
	"net/http"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	metrics, err := h.service.Metrics(ctx, uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) metric(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	metric, err := h.service.Metric(ctx, uid, chi.URLParam(r, "subjectId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, metric)
}

func (h *Handler) addMetric(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.MetricRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	metric, err := h.service.AddMetric(ctx, uid, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, metric)
}

func (h *Handler) updateMetric(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.MetricRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	metric, err := h.service.UpdateMetric(ctx, uid, chi.URLParam(r, "subjectId"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, metric)
}

func (h *Handler) deleteMetric(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	deleted, err := h.service.DeleteMetric(ctx, uid, chi.URLParam(r, "subjectId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, deleted)
}
