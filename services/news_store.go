package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsroom/models"
	"newsroom/utils"

	"gorm.io/gorm"
)

// NewsStore is the persistence boundary for News posts.
type NewsStore interface {
	// FindByName returns nil, nil when no post has that name.
	FindByName(ctx context.Context, name string) (*models.News, error)
	// FindBySlug fails with models.ErrNotFound when no post has that slug.
	FindBySlug(ctx context.Context, slug string) (*models.News, error)
	FindAll(ctx context.Context) ([]models.News, error)
	// Create assigns the slug and inserts the post in one transaction.
	Create(ctx context.Context, news *models.News) error
}

type gormNewsStore struct {
	db *gorm.DB
}

func NewNewsStore(db *gorm.DB) NewsStore {
	return &gormNewsStore{db: db}
}

func (s *gormNewsStore) FindByName(ctx context.Context, name string) (*models.News, error) {
	var news models.News
	err := s.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&news).Error
	if err != nil {
		return nil, fmt.Errorf("find news by name: %w", err)
	}
	if news.ID == 0 {
		return nil, nil
	}
	return &news, nil
}

func (s *gormNewsStore) FindBySlug(ctx context.Context, slug string) (*models.News, error) {
	var news models.News
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&news).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("news", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}
	return &news, nil
}

func (s *gormNewsStore) FindAll(ctx context.Context) ([]models.News, error) {
	news := []models.News{}
	if err := s.db.WithContext(ctx).Order("id").Find(&news).Error; err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return news, nil
}

// createAttempts bounds how often Create re-allocates a slug after losing
// it to a concurrent insert.
const createAttempts = 2

func (s *gormNewsStore) Create(ctx context.Context, news *models.News) error {
	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		err = s.insert(ctx, news)
		if err == nil {
			return nil
		}

		news.ID = 0
		if !isUniqueViolation(err) {
			break
		}
		// Name is checked before Create, so a violation here is a concurrent
		// insert of the same title or of a title with the same slug.
		existing, findErr := s.FindByName(ctx, news.Name)
		if findErr == nil && existing != nil {
			return models.NewDuplicateTitleError(news.Name)
		}
	}
	return fmt.Errorf("create news: %w", err)
}

func (s *gormNewsStore) insert(ctx context.Context, news *models.News) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := nextFreeSlug(tx, utils.Slugify(news.Name))
		if err != nil {
			return err
		}
		news.Slug = slug
		return tx.Create(news).Error
	})
}

func nextFreeSlug(tx *gorm.DB, base string) (string, error) {
	var taken []string
	err := tx.Model(&models.News{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &taken).Error
	if err != nil {
		return "", fmt.Errorf("load slugs: %w", err)
	}

	used := make(map[string]bool, len(taken))
	for _, s := range taken {
		used[s] = true
	}
	for n := 1; ; n++ {
		if candidate := utils.SlugCandidate(base, n); !used[candidate] {
			return candidate, nil
		}
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
