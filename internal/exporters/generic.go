package exporters

import (
	"context"
	"io"

	"github.com/mrlokans/readkeeper/internal/entities"
)

type CatalogExporter interface {
	Export(ctx context.Context, w io.Writer) (ExportResult, error)
}

type AuthorLister interface {
	ListAll(ctx context.Context) ([]entities.Author, error)
}

type GenreLister interface {
	ListAll(ctx context.Context) ([]entities.Genre, error)
}

type BookLister interface {
	ListAll(ctx context.Context) ([]entities.Book, error)
}

type ExportResult struct {
	AuthorsExported int `json:"authors_exported"`
	GenresExported  int `json:"genres_exported"`
	BooksExported   int `json:"books_exported"`
}
