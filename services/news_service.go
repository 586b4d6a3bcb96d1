package services

import (
	"context"
	"net/url"

	"newsroom/models"
)

// NewsService is the read side: it lists posts and resolves slugs, filling
// in each post's Link.
type NewsService struct {
	store   NewsStore
	baseURL string
}

func NewNewsService(store NewsStore, baseURL string) *NewsService {
	return &NewsService{store: store, baseURL: baseURL}
}

func (s *NewsService) ListAll(ctx context.Context) ([]models.News, error) {
	news, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if news == nil {
		news = []models.News{}
	}
	for i := range news {
		news[i].Link = s.Link(news[i].Slug)
	}
	return news, nil
}

func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	news, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	news.Link = s.Link(news.Slug)
	return news, nil
}

// Link returns the detail URL for slug, relative when no base URL is set.
func (s *NewsService) Link(slug string) string {
	return s.baseURL + "/news/" + url.PathEscape(slug)
}
