// Package genres provides database operations for genre management and
// the books-by-genre query.
package genres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/readkeeper/internal/database"
	"github.com/mrlokans/readkeeper/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new genre. Names need not be unique.
func (r *Repository) Create(ctx context.Context, name string) (*entities.Genre, error) {
	name, err := entities.ValidateName("genre name", name)
	if err != nil {
		return nil, err
	}
	genre := &entities.Genre{Name: name}
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre, nil
}

// FindByID returns nil if no genre has the id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// ListAll returns every genre ordered by id.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("id").Find(&genres).Error
	return genres, err
}

// Rename changes a genre's name. Returns nil if the genre does not exist.
func (r *Repository) Rename(ctx context.Context, id uint, name string) (*entities.Genre, error) {
	name, err := entities.ValidateName("genre name", name)
	if err != nil {
		return nil, err
	}
	genre, err := r.FindByID(ctx, id)
	if err != nil || genre == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(genre).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to rename genre %d: %w", id, err)
	}
	return genre, nil
}

// Delete removes a genre and detaches it from its books. The books stay.
// Returns false if the genre does not exist.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&entities.BookGenre{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Genre{}, id)
		if result.Error != nil {
			return result.Error
		}
		found = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete genre %d: %w", id, err)
	}
	return found, nil
}

// BooksFor returns the genre with its books (and their authors) loaded,
// ordered by title. Returns nil if the genre does not exist.
func (r *Repository) BooksFor(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.title ASC, books.id ASC")
		}).
		Preload("Books.Author").
		First(&genre, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}
