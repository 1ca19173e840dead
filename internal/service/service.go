package service

import (
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Group   GroupService
	Follow  FollowService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewPostService(rep.Post, rep.Group, storage, cfg),
		Comment: NewCommentService(rep.Comment),
		Group:   NewGroupService(rep.Group),
		Follow:  NewFollowService(rep.Follow, rep.User),
	}
}
