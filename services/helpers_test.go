package services

import (
	"context"
	"testing"

	"newsroom/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.News{}))
	return db
}

func countNews(t *testing.T, db *gorm.DB, where ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(&models.News{})
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

// newsStoreStub is a stub for NewsStore.
type newsStoreStub struct {
	findByNameFn func(context.Context, string) (*models.News, error)
	findBySlugFn func(context.Context, string) (*models.News, error)
	findAllFn    func(context.Context) ([]models.News, error)
	createFn     func(context.Context, *models.News) error
}

func (s *newsStoreStub) FindByName(ctx context.Context, name string) (*models.News, error) {
	return s.findByNameFn(ctx, name)
}
func (s *newsStoreStub) FindBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.findBySlugFn(ctx, slug)
}
func (s *newsStoreStub) FindAll(ctx context.Context) ([]models.News, error) {
	return s.findAllFn(ctx)
}
func (s *newsStoreStub) Create(ctx context.Context, news *models.News) error {
	return s.createFn(ctx, news)
}

func noopNewsStore() *newsStoreStub {
	return &newsStoreStub{
		findByNameFn: func(_ context.Context, _ string) (*models.News, error) { return nil, nil },
		findBySlugFn: func(_ context.Context, slug string) (*models.News, error) {
			return nil, models.NewNotFoundError("news", slug)
		},
		findAllFn: func(_ context.Context) ([]models.News, error) { return nil, nil },
		createFn: func(_ context.Context, n *models.News) error {
			n.ID = 1
			return nil
		},
	}
}

// scriptedPrompter answers Ask from a fixed list and records everything
// shown to the user.
type scriptedPrompter struct {
	answers  []string
	asked    []string
	rejected []error
	titles   []string
	lines    []string
}

func (p *scriptedPrompter) Title(title string) { p.titles = append(p.titles, title) }

func (p *scriptedPrompter) Text(lines ...string) { p.lines = append(p.lines, lines...) }

func (p *scriptedPrompter) Ask(question string, validate func(string) (string, error)) (string, error) {
	p.asked = append(p.asked, question)
	for len(p.answers) > 0 {
		answer := p.answers[0]
		p.answers = p.answers[1:]
		value, err := validate(answer)
		if err == nil {
			return value, nil
		}
		if !models.IsValidationError(err) {
			return "", err
		}
		p.rejected = append(p.rejected, err)
	}
	return "", errScriptExhausted
}

var errScriptExhausted = &models.AppError{Code: "SCRIPT_EXHAUSTED", Message: "no more answers"}

func strPtr(s string) *string { return &s }
