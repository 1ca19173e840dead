package handlers

import (
	"encoding/json"
	"net/http"

	"yatube/internal/models"
	"yatube/internal/policy"
)

type GroupBody struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

func (h *Handlers) GetGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.GroupRepo.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, groups, http.StatusOK)
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	group, err := h.GroupRepo.GetByID(r.Context(), groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, group, http.StatusOK)
}

// CreateGroup доступен только администратору.
func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceGroup, r.Method, 0)) {
		return
	}

	var body GroupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Отсутствуют обязательные поля title или slug.", http.StatusBadRequest)
		return
	}

	group := &models.Group{
		Title:       body.Title,
		Slug:        body.Slug,
		Description: body.Description,
	}

	if err := h.GroupService.CreateGroup(r.Context(), group); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, group, http.StatusCreated)
}

func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	group, err := h.GroupRepo.GetByID(r.Context(), groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceGroup, r.Method, 0)) {
		return
	}

	var body struct {
		Title       *string `json:"title"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if body.Title != nil {
		group.Title = *body.Title
	}
	if body.Slug != nil {
		group.Slug = *body.Slug
	}
	if body.Description != nil {
		group.Description = *body.Description
	}

	if err := h.GroupService.UpdateGroup(r.Context(), group); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, group, http.StatusOK)
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceGroup, r.Method, 0)) {
		return
	}

	if err := h.GroupService.DeleteGroup(r.Context(), groupID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
