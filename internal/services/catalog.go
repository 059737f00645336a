package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/readkeeper/internal/database/authors"
	"github.com/mrlokans/readkeeper/internal/database/books"
	"github.com/mrlokans/readkeeper/internal/database/genres"
	"github.com/mrlokans/readkeeper/internal/entities"
	"github.com/mrlokans/readkeeper/internal/opt"
)

// Catalog bundles the repositories bound to one database handle.
type Catalog struct {
	db      *gorm.DB
	Authors *authors.Repository
	Genres  *genres.Repository
	Books   *books.Repository
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{
		db:      db,
		Authors: authors.NewRepository(db),
		Genres:  genres.NewRepository(db),
		Books:   books.NewRepository(db),
	}
}

// InTx runs fn with a Catalog bound to a single transaction. Everything fn
// writes is rolled back if it returns an error.
func (c *Catalog) InTx(ctx context.Context, fn func(tx *Catalog) error) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCatalog(tx))
	})
}

// AddBook resolves the author by name, creating it if needed, and stores the
// book. Nothing is written if any step fails.
func (c *Catalog) AddBook(ctx context.Context, in NewBook) (*entities.Book, error) {
	var book *entities.Book
	err := c.InTx(ctx, func(tx *Catalog) error {
		author, _, err := tx.Authors.GetOrCreate(ctx, in.AuthorName)
		if err != nil {
			return err
		}
		book, err = tx.Books.Create(ctx, entities.BookInput{
			Title:    in.Title,
			Year:     in.Year,
			AuthorID: author.ID,
			GenreIDs: in.GenreIDs,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies ch to the book. Returns nil if the book does not exist;
// in that case no author is created.
func (c *Catalog) UpdateBook(ctx context.Context, id uint, ch BookChanges) (*entities.Book, error) {
	if ch.AuthorName.IsSet() && ch.AuthorID.IsSet() {
		return nil, &entities.ValidationError{Field: "author", Reason: "give either a name or an id, not both"}
	}

	var updated *entities.Book
	err := c.InTx(ctx, func(tx *Catalog) error {
		existing, err := tx.Books.FindByID(ctx, id)
		if err != nil || existing == nil {
			return err
		}

		u := entities.BookUpdate{
			Title:    ch.Title,
			Year:     ch.Year,
			AuthorID: ch.AuthorID,
			GenreIDs: ch.GenreIDs,
		}
		if name, ok := ch.AuthorName.Get(); ok {
			author, _, err := tx.Authors.GetOrCreate(ctx, name)
			if err != nil {
				return err
			}
			u.AuthorID = opt.Some(author.ID)
		}

		updated, err = tx.Books.Update(ctx, id, u)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
