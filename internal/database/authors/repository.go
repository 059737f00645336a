// Package authors provides database operations for author management.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.Create(ctx, "Frank Herbert")
package authors

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/readkeeper/internal/database"
	"github.com/mrlokans/readkeeper/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new author. Names need not be unique.
func (r *Repository) Create(ctx context.Context, name string) (*entities.Author, error) {
	name, err := entities.ValidateName("author name", name)
	if err != nil {
		return nil, err
	}
	author := &entities.Author{Name: name}
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// FindByID returns nil if no author has the id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).First(&author, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// FindByName returns the lowest-id author whose name matches
// case-insensitively, or nil.
func (r *Repository) FindByName(ctx context.Context, name string) (*entities.Author, error) {
	name, err := entities.ValidateName("author name", name)
	if err != nil {
		return nil, err
	}
	var author entities.Author
	err = r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id").
		First(&author).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetOrCreate retrieves an author by name or creates one. The bool reports
// whether a new author was created.
func (r *Repository) GetOrCreate(ctx context.Context, name string) (*entities.Author, bool, error) {
	author, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if author != nil {
		return author, false, nil
	}
	author, err = r.Create(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return author, true, nil
}

// ListAll returns every author ordered by id.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).Order("id").Find(&authors).Error
	return authors, err
}

// Rename changes an author's name. Returns nil if the author does not exist.
func (r *Repository) Rename(ctx context.Context, id uint, name string) (*entities.Author, error) {
	name, err := entities.ValidateName("author name", name)
	if err != nil {
		return nil, err
	}
	author, err := r.FindByID(ctx, id)
	if err != nil || author == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(author).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to rename author %d: %w", id, err)
	}
	return author, nil
}

// CountBooks returns how many books reference the author.
func (r *Repository) CountBooks(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Where("author_id = ?", id).Count(&count).Error
	return count, err
}

// Delete removes an author that owns no books. It returns false if the
// author does not exist and entities.ErrAuthorHasBooks if books still
// reference it.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Book{}).Where("author_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entities.ErrAuthorHasBooks
		}
		result := tx.Delete(&entities.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		found = result.RowsAffected > 0
		return nil
	})
	if database.IsForeignKeyViolation(err) {
		return false, entities.ErrAuthorHasBooks
	}
	if err != nil && !errors.Is(err, entities.ErrAuthorHasBooks) {
		return false, fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return found, err
}
