package exporters

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Snapshot is the document written by YAMLExporter.
type Snapshot struct {
	ExportedAt time.Time      `yaml:"exported_at"`
	Authors    []AuthorRecord `yaml:"authors"`
	Genres     []GenreRecord  `yaml:"genres"`
	Books      []BookRecord   `yaml:"books"`
}

type AuthorRecord struct {
	ID   uint   `yaml:"id"`
	Name string `yaml:"name"`
}

type GenreRecord struct {
	ID   uint   `yaml:"id"`
	Name string `yaml:"name"`
}

type BookRecord struct {
	ID       uint     `yaml:"id"`
	Title    string   `yaml:"title"`
	Year     int      `yaml:"year"`
	AuthorID uint     `yaml:"author_id"`
	Author   string   `yaml:"author"`
	Genres   []string `yaml:"genres,omitempty"`
}

type YAMLExporter struct {
	authors AuthorLister
	genres  GenreLister
	books   BookLister
	now     func() time.Time
}

func NewYAMLExporter(authors AuthorLister, genres GenreLister, books BookLister) *YAMLExporter {
	return &YAMLExporter{
		authors: authors,
		genres:  genres,
		books:   books,
		now:     time.Now,
	}
}

// Snapshot reads the whole catalog.
func (e *YAMLExporter) Snapshot(ctx context.Context) (*Snapshot, error) {
	authors, err := e.authors.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	genres, err := e.genres.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	books, err := e.books.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	snap := &Snapshot{
		ExportedAt: e.now().UTC().Truncate(time.Second),
		Authors:    make([]AuthorRecord, 0, len(authors)),
		Genres:     make([]GenreRecord, 0, len(genres)),
		Books:      make([]BookRecord, 0, len(books)),
	}
	for _, a := range authors {
		snap.Authors = append(snap.Authors, AuthorRecord{ID: a.ID, Name: a.Name})
	}
	for _, g := range genres {
		snap.Genres = append(snap.Genres, GenreRecord{ID: g.ID, Name: g.Name})
	}
	for _, b := range books {
		snap.Books = append(snap.Books, BookRecord{
			ID:       b.ID,
			Title:    b.Title,
			Year:     b.PublicationYear,
			AuthorID: b.AuthorID,
			Author:   b.Author.Name,
			Genres:   b.GenreNames(),
		})
	}
	return snap, nil
}

func (e *YAMLExporter) Export(ctx context.Context, w io.Writer) (ExportResult, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return ExportResult{}, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		AuthorsExported: len(snap.Authors),
		GenresExported:  len(snap.Genres),
		BooksExported:   len(snap.Books),
	}, nil
}
