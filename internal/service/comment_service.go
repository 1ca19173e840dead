package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type CreateCommentRequest struct {
	AuthorID int64
	PostID   int64
	Text     string
}

type CommentService interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, comment *models.Comment, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		AuthorID: req.AuthorID,
		PostID:   req.PostID,
		Text:     req.Text,
	}

	err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *commentService) UpdateComment(ctx context.Context, comment *models.Comment, text string) (*models.Comment, error) {
	comment.Text = text

	err := s.commentRepo.Update(ctx, comment)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.commentRepo.Delete(ctx, commentID)
}
