package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"yatube/internal/policy"
	"yatube/internal/service"
)

type CreatePostRequest struct {
	Text  string  `json:"text" validate:"required"`
	Image *string `json:"image"`
	Group *int64  `json:"group"`
}

// UpdatePostBody используется и для PUT, и для PATCH: для PUT поле text
// обязательно, для PATCH все поля опциональны.
type UpdatePostBody struct {
	Text  *string `json:"text"`
	Image *string `json:"image"`
	Group *int64  `json:"group"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset := h.pageParams(r)

	posts, total, err := h.PostRepo.GetPage(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	next, prev := pageLinks(r, limit, offset, total)

	WriteSuccess(w, PageResponse{
		Count:    total,
		Next:     next,
		Previous: prev,
		Results:  posts,
	}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourcePost, r.Method, 0)) {
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует обязательное поле text.", http.StatusBadRequest)
		return
	}

	// автор всегда берётся из токена, значение из тела игнорируется
	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID: principal.UserID,
		Text:     req.Text,
		Image:    req.Image,
		GroupID:  req.Group,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourcePost, r.Method, post.AuthorID)) {
		return
	}

	var body UpdatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodPut && (body.Text == nil || *body.Text == "") {
		WriteError(w, "Отсутствует обязательное поле text.", http.StatusBadRequest)
		return
	}

	updated, err := h.PostService.UpdatePost(r.Context(), post, service.UpdatePostRequest{
		Text:    body.Text,
		Image:   body.Image,
		GroupID: body.Group,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourcePost, r.Method, post.AuthorID)) {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), post); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID извлекает числовой параметр маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
