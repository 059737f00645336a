package entities

import (
	"time"

	"github.com/mrlokans/readkeeper/internal/opt"
)

type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null;index;size:512" json:"title"`
	PublicationYear int       `gorm:"not null" json:"publication_year"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	Author          Author    `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"author"`
	Genres          []Genre   `gorm:"many2many:book_genres;constraint:OnDelete:CASCADE" json:"genres,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// GenreNames returns the names of the book's loaded genres in load order.
func (b *Book) GenreNames() []string {
	names := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		names = append(names, g.Name)
	}
	return names
}

// BookGenre is the join row linking a book to a genre.
type BookGenre struct {
	BookID  uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}

func (BookGenre) TableName() string {
	return "book_genres"
}

// BookInput carries the fields required to create a book.
type BookInput struct {
	Title    string
	Year     int
	AuthorID uint
	GenreIDs []uint
}

// BookUpdate describes a partial update. Only provided fields are written,
// including provided zero values. A provided GenreIDs (even empty) replaces
// every genre association of the book.
type BookUpdate struct {
	Title    opt.Value[string]
	Year     opt.Value[int]
	AuthorID opt.Value[uint]
	GenreIDs opt.Value[[]uint]
}

// IsEmpty reports whether no field was provided.
func (u BookUpdate) IsEmpty() bool {
	return !u.Title.IsSet() && !u.Year.IsSet() && !u.AuthorID.IsSet() && !u.GenreIDs.IsSet()
}
