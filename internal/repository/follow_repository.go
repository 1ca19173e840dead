package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type FollowRepositoryImpl struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepositoryImpl {
	return &FollowRepositoryImpl{db: db}
}

func (r *FollowRepositoryImpl) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (user_id, following_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &follow.ID, query, follow.UserID, follow.FollowingID)
	if err != nil {
		// гонка двух одинаковых подписок доходит до уникального ограничения;
		// переводим её в ту же ошибку, что и предварительная проверка
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("подписка: %w", ErrDuplicate)
		}
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *FollowRepositoryImpl) Exists(ctx context.Context, userID, followingID int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM follows
		WHERE user_id = $1 AND following_id = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, followingID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepositoryImpl) GetByUserID(ctx context.Context, userID int64, search string) ([]models.Follow, error) {
	// search фильтрует по username того, на кого подписаны
	query := `
		SELECT f.id, f.user_id, uf.username AS user_name, f.following_id, ut.username AS following_name
		FROM follows f
		JOIN users uf ON uf.id = f.user_id
		JOIN users ut ON ut.id = f.following_id
		WHERE f.user_id = $1
	`

	args := []interface{}{userID}
	if search != "" {
		query += ` AND ut.username ILIKE $2`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY f.id`

	follows := []models.Follow{}
	err := r.db.SelectContext(ctx, &follows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return follows, nil
}
