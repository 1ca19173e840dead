package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

// ErrGroupNotFound - в теле запроса указана несуществующая группа.
var ErrGroupNotFound = errors.New("группа не найдена")

// ErrImageTooLarge - картинка в запросе больше разрешённого размера.
var ErrImageTooLarge = errors.New("изображение слишком большое")

type CreatePostRequest struct {
	AuthorID int64
	Text     string
	Image    *string
	GroupID  *int64
}

// UpdatePostRequest - nil-поле означает "не менять" (PATCH-семантика).
type UpdatePostRequest struct {
	Text    *string
	Image   *string
	GroupID *int64
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, post *models.Post) error
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.GroupID != nil {
		if err := p.checkGroup(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		Text:     req.Text,
		GroupID:  req.GroupID,
	}

	if req.Image != nil && *req.Image != "" {
		imageURL, err := p.storeImage(ctx, *req.Image)
		if err != nil {
			return nil, err
		}
		post.Image = &imageURL
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	// перечитываем, чтобы отдать автора как username
	return p.postRepo.GetByID(ctx, post.ID)
}

func (p *postService) UpdatePost(ctx context.Context, post *models.Post, req UpdatePostRequest) (*models.Post, error) {
	oldImage := post.Image

	if req.Text != nil {
		post.Text = *req.Text
	}

	if req.GroupID != nil {
		if err := p.checkGroup(ctx, *req.GroupID); err != nil {
			return nil, err
		}
		post.GroupID = req.GroupID
	}

	replaced := false
	if req.Image != nil && *req.Image != "" {
		imageURL, err := p.storeImage(ctx, *req.Image)
		if err != nil {
			return nil, err
		}
		post.Image = &imageURL
		replaced = true
	}

	err := p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	if replaced && oldImage != nil && *oldImage != "" {
		p.removeStoredImage(ctx, *oldImage)
	}

	return p.postRepo.GetByID(ctx, post.ID)
}

func (p *postService) DeletePost(ctx context.Context, post *models.Post) error {
	if err := p.postRepo.Delete(ctx, post.ID); err != nil {
		return err
	}

	if post.Image != nil && *post.Image != "" {
		p.removeStoredImage(ctx, *post.Image)
	}

	return nil
}

// removeStoredImage чистит объектное хранилище после того, как запись
// уже изменена в БД, поэтому ошибка хранилища не отменяет операцию.
func (p *postService) removeStoredImage(ctx context.Context, imageURL string) {
	if err := p.storage.DeleteImage(ctx, imageURL); err != nil {
		log.Printf("Предупреждение: не удалось удалить изображение из MinIO: %v", err)
	}
}

func (p *postService) checkGroup(ctx context.Context, groupID int64) error {
	_, err := p.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	return nil
}

// storeImage декодирует data-URI и загружает содержимое в объектное хранилище.
func (p *postService) storeImage(ctx context.Context, dataURI string) (string, error) {
	// base64 расширяет содержимое на треть, поэтому слишком большие
	// картинки отсекаются по длине строки ещё до декодирования.
	if p.cfg.MaxImageSize > 0 && int64(len(dataURI))/4*3 > p.cfg.MaxImageSize {
		return "", ErrImageTooLarge
	}

	img, err := storage.ParseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	imageURL, err := p.storage.UploadImage(ctx, img)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	return imageURL, nil
}
