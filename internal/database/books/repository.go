// Package books provides database operations for books and their genre
// associations.
//
// Create and Update validate every referenced author and genre id before
// writing. If any id is unknown the call fails with an
// *entities.InvalidReferenceError and the database is left untouched.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Create(ctx, entities.BookInput{
//		Title: "Dune", Year: 1965, AuthorID: 1, GenreIDs: []uint{1},
//	})
package books

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/mrlokans/readkeeper/internal/database"
	"github.com/mrlokans/readkeeper/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a book and attaches its genres in one transaction.
// Duplicate genre ids are collapsed.
func (r *Repository) Create(ctx context.Context, in entities.BookInput) (*entities.Book, error) {
	title, err := entities.ValidateName("title", in.Title)
	if err != nil {
		return nil, err
	}
	genreIDs := lo.Uniq(in.GenreIDs)

	book := &entities.Book{
		Title:           title,
		PublicationYear: in.Year,
		AuthorID:        in.AuthorID,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAuthor(tx, in.AuthorID); err != nil {
			return err
		}
		if err := checkGenres(tx, genreIDs); err != nil {
			return err
		}
		if err := tx.Omit("Author", "Genres").Create(book).Error; err != nil {
			return err
		}
		return attachGenres(tx, book.ID, genreIDs)
	})
	if err != nil {
		return nil, wrap("create book", err)
	}

	return r.FindByID(ctx, book.ID)
}

// FindByID returns the book with its author and genres loaded, or nil if no
// book has the id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.withRelations(ctx).First(&book, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListAll returns every book ordered by id.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withRelations(ctx).Order("books.id").Find(&books).Error
	return books, err
}

// ListByAuthor returns the author's books ordered by publication year.
func (r *Repository) ListByAuthor(ctx context.Context, authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withRelations(ctx).
		Where("author_id = ?", authorID).
		Order("publication_year, books.id").
		Find(&books).Error
	return books, err
}

// Update applies the provided fields of u. Returns nil if the book does not
// exist.
func (r *Repository) Update(ctx context.Context, id uint, u entities.BookUpdate) (*entities.Book, error) {
	if u.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	updates := map[string]any{}
	if title, ok := u.Title.Get(); ok {
		title, err := entities.ValidateName("title", title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if year, ok := u.Year.Get(); ok {
		updates["publication_year"] = year
	}
	authorID, replaceAuthor := u.AuthorID.Get()
	if replaceAuthor {
		updates["author_id"] = authorID
	}
	genreIDs, replaceGenres := u.GenreIDs.Get()
	genreIDs = lo.Uniq(genreIDs)

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		err := tx.First(&book, id).Error
		if database.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		if replaceAuthor {
			if err := checkAuthor(tx, authorID); err != nil {
				return err
			}
		}
		if replaceGenres {
			if err := checkGenres(tx, genreIDs); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&book).Updates(updates).Error; err != nil {
				return err
			}
		}
		if replaceGenres {
			if err := tx.Where("book_id = ?", id).Delete(&entities.BookGenre{}).Error; err != nil {
				return err
			}
			return attachGenres(tx, id, genreIDs)
		}
		return nil
	})
	if err != nil {
		return nil, wrap(fmt.Sprintf("update book %d", id), err)
	}
	if !found {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes a book and its genre associations. Returns false if the
// book does not exist.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.BookGenre{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		found = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return found, nil
}

// Count returns the number of stored books.
func (r *Repository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genres.id ASC")
		})
}

func checkAuthor(tx *gorm.DB, authorID uint) error {
	var count int64
	if err := tx.Model(&entities.Author{}).Where("id = ?", authorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &entities.InvalidReferenceError{Entity: "author", IDs: []uint{authorID}}
	}
	return nil
}

func checkGenres(tx *gorm.DB, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}
	var existing []uint
	if err := tx.Model(&entities.Genre{}).Where("id IN ?", genreIDs).Pluck("id", &existing).Error; err != nil {
		return err
	}
	missing := lo.Without(genreIDs, existing...)
	if len(missing) > 0 {
		slices.Sort(missing)
		return &entities.InvalidReferenceError{Entity: "genre", IDs: missing}
	}
	return nil
}

func attachGenres(tx *gorm.DB, bookID uint, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}
	links := lo.Map(genreIDs, func(gid uint, _ int) entities.BookGenre {
		return entities.BookGenre{BookID: bookID, GenreID: gid}
	})
	return tx.Create(&links).Error
}

// wrap adds context to storage failures. Validation and reference errors
// pass through unchanged.
func wrap(op string, err error) error {
	if entities.IsInvalidReference(err) || entities.IsValidation(err) {
		return err
	}
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("failed to %s: referenced record no longer exists: %w", op, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
