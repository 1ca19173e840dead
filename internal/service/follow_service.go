package service

import (
	"context"
	"errors"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// ErrTargetNotFound - пользователь с таким username не существует.
var ErrTargetNotFound = errors.New("такого пользователя не существует")

// ErrInvalidFollow - подписка на себя либо повторная подписка.
var ErrInvalidFollow = errors.New("неверный запрос на подписку")

type FollowService interface {
	CreateFollow(ctx context.Context, userID int64, followingUsername string) (*models.Follow, error)
	ListFollows(ctx context.Context, userID int64, search string) ([]models.Follow, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) CreateFollow(ctx context.Context, userID int64, followingUsername string) (*models.Follow, error) {
	following, err := s.userRepo.GetUserByUsername(ctx, followingUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	if following.ID == userID {
		return nil, ErrInvalidFollow
	}

	// предварительная проверка не атомарна: гонку добивает уникальное
	// ограничение в БД, мы лишь переводим её в ту же ошибку
	exists, err := s.followRepo.Exists(ctx, userID, following.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrInvalidFollow
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	follow := &models.Follow{
		UserID:      userID,
		User:        user.Username,
		FollowingID: following.ID,
		Following:   following.Username,
	}

	err = s.followRepo.Create(ctx, follow)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInvalidFollow
		}
		return nil, err
	}

	return follow, nil
}

func (s *followService) ListFollows(ctx context.Context, userID int64, search string) ([]models.Follow, error) {
	return s.followRepo.GetByUserID(ctx, userID, search)
}
