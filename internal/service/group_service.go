package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type GroupService interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, groupID int64) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) CreateGroup(ctx context.Context, group *models.Group) error {
	return s.groupRepo.Create(ctx, group)
}

func (s *groupService) UpdateGroup(ctx context.Context, group *models.Group) error {
	return s.groupRepo.Update(ctx, group)
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID int64) error {
	return s.groupRepo.Delete(ctx, groupID)
}
