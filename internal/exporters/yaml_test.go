package exporters

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrlokans/readkeeper/internal/entities"
)

type stubAuthors struct {
	authors []entities.Author
	err     error
}

func (s stubAuthors) ListAll(context.Context) ([]entities.Author, error) { return s.authors, s.err }

type stubGenres []entities.Genre

func (s stubGenres) ListAll(context.Context) ([]entities.Genre, error) { return s, nil }

type stubBooks []entities.Book

func (s stubBooks) ListAll(context.Context) ([]entities.Book, error) { return s, nil }

func newTestExporter(authors AuthorLister) *YAMLExporter {
	genres := stubGenres{{ID: 1, Name: "Sci-Fi"}, {ID: 2, Name: "Classic"}}
	books := stubBooks{{
		ID:              1,
		Title:           "Dune",
		PublicationYear: 1965,
		AuthorID:        1,
		Author:          entities.Author{ID: 1, Name: "Frank Herbert"},
		Genres:          []entities.Genre{genres[0], genres[1]},
	}}
	e := NewYAMLExporter(authors, genres, books)
	e.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestYAMLExporter_Export(t *testing.T) {
	e := newTestExporter(stubAuthors{authors: []entities.Author{{ID: 1, Name: "Frank Herbert"}}})

	var buf bytes.Buffer
	result, err := e.Export(context.Background(), &buf)
	require.NoError(t, err)

	assert.Equal(t, ExportResult{AuthorsExported: 1, GenresExported: 2, BooksExported: 1}, result)

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, "2024-03-01T12:00:00Z", snap.ExportedAt.Format(time.RFC3339))
	require.Len(t, snap.Books, 1)
	assert.Equal(t, BookRecord{
		ID: 1, Title: "Dune", Year: 1965, AuthorID: 1, Author: "Frank Herbert",
		Genres: []string{"Sci-Fi", "Classic"},
	}, snap.Books[0])
	assert.Contains(t, buf.String(), "title: Dune")
}

func TestYAMLExporter_EmptyCatalog(t *testing.T) {
	e := NewYAMLExporter(stubAuthors{}, stubGenres{}, stubBooks{})

	var buf bytes.Buffer
	result, err := e.Export(context.Background(), &buf)
	require.NoError(t, err)

	assert.Zero(t, result.BooksExported)
	assert.Contains(t, buf.String(), "books: []")
}

func TestYAMLExporter_ListError(t *testing.T) {
	e := newTestExporter(stubAuthors{err: errors.New("disk gone")})

	var buf bytes.Buffer
	_, err := e.Export(context.Background(), &buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Empty(t, buf.String())
}
