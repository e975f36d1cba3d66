package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/DanRulev/uniprep.git/internal/models"
)

type ctxKey int

const userKey ctxKey = iota

type messageResponse struct {
	Message string `json:"message"`
}

// authenticate resolves the bearer access token into the request's user id.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			h.writeError(w, r, fmt.Errorf("%w: missing bearer token", models.ErrUnauthorized))
			return
		}

		uid, err := h.service.Authenticate(token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, uid)))
	})
}

func userID(r *http.Request) (int64, error) {
	uid, ok := r.Context().Value(userKey).(int64)
	if !ok {
		return 0, models.ErrUnauthorized
	}
	return uid, nil
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	tokens, err := h.service.SignUp(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, tokens)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	tokens, err := h.service.SignIn(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tokens)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	tokens, err := h.service.Refresh(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tokens)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	if err := h.service.Logout(ctx, uid); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully."})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	user, err := h.service.Me(ctx, uid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}
