package handlers

import (
	"github.com/go-playground/validator/v10"

	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	GroupService   service.GroupService
	FollowService  service.FollowService
	PostRepo       repository.PostRepository
	CommentRepo    repository.CommentRepository
	GroupRepo      repository.GroupRepository
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		GroupService:   service.Group,
		FollowService:  service.Follow,
		PostRepo:       repo.Post,
		CommentRepo:    repo.Comment,
		GroupRepo:      repo.Group,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
