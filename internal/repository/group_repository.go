package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type GroupRepositoryImpl struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepositoryImpl {
	return &GroupRepositoryImpl{db: db}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &group.ID, query, group.Title, group.Slug, group.Description)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("группа со slug %s: %w", group.Slug, ErrDuplicate)
		}
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *GroupRepositoryImpl) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	query := `SELECT * FROM groups WHERE id = $1`

	var group models.Group
	err := r.db.GetContext(ctx, &group, query, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа с ID %d: %w", groupID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *GroupRepositoryImpl) GetAll(ctx context.Context) ([]models.Group, error) {
	query := `SELECT * FROM groups ORDER BY id`

	groups := []models.Group{}
	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении групп: %w", err)
	}

	return groups, nil
}

func (r *GroupRepositoryImpl) Update(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups SET
			title = :title,
			slug = :slug,
			description = :description
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении группы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("группа с ID %d: %w", group.ID, ErrNotFound)
	}

	return nil
}

func (r *GroupRepositoryImpl) Delete(ctx context.Context, groupID int64) error {
	query := `DELETE FROM groups WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении группы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("группа с ID %d: %w", groupID, ErrNotFound)
	}

	return nil
}
