package handlers

import (
	"encoding/json"
	"net/http"

	"yatube/internal/models"
	"yatube/internal/policy"
	"yatube/internal/service"
)

type CommentBody struct {
	Text string `json:"text" validate:"required"`
}

// resolvePathPost находит родительский пост из URL. Несуществующий пост -
// всегда 404, комментарии без поста не существуют.
func (h *Handlers) resolvePathPost(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return 0, false
	}

	if _, err := h.PostRepo.GetByID(r.Context(), postID); err != nil {
		writeServiceError(w, err)
		return 0, false
	}

	return postID, true
}

// resolvePathComment находит комментарий и сверяет его принадлежность
// родительскому посту из URL.
func (h *Handlers) resolvePathComment(w http.ResponseWriter, r *http.Request, postID int64) (*models.Comment, bool) {
	commentID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return nil, false
	}

	comment, err := h.CommentRepo.GetByID(r.Context(), commentID)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}

	if comment.PostID != postID {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return nil, false
	}

	return comment, true
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.resolvePathPost(w, r)
	if !ok {
		return
	}

	comments, err := h.CommentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.resolvePathPost(w, r)
	if !ok {
		return
	}

	comment, ok := h.resolvePathComment(w, r, postID)
	if !ok {
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceComment, r.Method, 0)) {
		return
	}

	postID, ok := h.resolvePathPost(w, r)
	if !ok {
		return
	}

	var body CommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Отсутствует обязательное поле text.", http.StatusBadRequest)
		return
	}

	// автор и пост берутся из токена и URL, значения из тела игнорируются
	comment, err := h.CommentService.CreateComment(r.Context(), service.CreateCommentRequest{
		AuthorID: principal.UserID,
		PostID:   postID,
		Text:     body.Text,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.resolvePathPost(w, r)
	if !ok {
		return
	}

	comment, ok := h.resolvePathComment(w, r, postID)
	if !ok {
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceComment, r.Method, comment.AuthorID)) {
		return
	}

	var body CommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(body); err != nil {
		WriteError(w, "Отсутствует обязательное поле text.", http.StatusBadRequest)
		return
	}

	updated, err := h.CommentService.UpdateComment(r.Context(), comment, body.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.resolvePathPost(w, r)
	if !ok {
		return
	}

	comment, ok := h.resolvePathComment(w, r, postID)
	if !ok {
		return
	}

	principal := policy.PrincipalFrom(r.Context())
	if !writeDecision(w, policy.Check(principal, policy.ResourceComment, r.Method, comment.AuthorID)) {
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), comment.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
