package handlers

import (
	"encoding/json"
	"net/http"

	"yatube/internal/policy"
)

type FollowBody struct {
	Following string `json:"following" validate:"required"`
}

// GetFollows отдаёт подписки текущего принципала; чужие подписки через
// этот эндпоинт не видны.
func (h *Handlers) GetFollows(w http.ResponseWriter, r *http.Request) {
	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceFollow, r.Method, 0)) {
		return
	}

	search := r.URL.Query().Get("search")

	follows, err := h.FollowService.ListFollows(r.Context(), principal.UserID, search)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, follows, http.StatusOK)
}

func (h *Handlers) CreateFollow(w http.ResponseWriter, r *http.Request) {
	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceFollow, r.Method, 0)) {
		return
	}

	var body FollowBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Отсутствует обязательное поле following.", http.StatusBadRequest)
		return
	}

	follow, err := h.FollowService.CreateFollow(r.Context(), principal.UserID, body.Following)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, follow, http.StatusCreated)
}
