package blog

import (
	"context"

	"github.com/hadayashop/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads blog rows from the SQLite data file.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate ensures the posts table exists.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&models.Post{})
}

// ListAll returns every post, newest first with featured posts leading.
func (r *Repository) ListAll(ctx context.Context) ([]models.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Order("featured DESC, published_at DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

// Count returns the number of seeded posts.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

// Insert writes the provided rows in one batch.
func (r *Repository) Insert(ctx context.Context, rows []models.Post) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
