package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readkeeper/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"authors", "genres", "books", "book_genres"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestNewDatabase_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&entities.Author{Name: "Ursula K. Le Guin"}).Error)
	require.NoError(t, db.Close())

	db, err = NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	err := db.DB.Exec(
		"INSERT INTO books (title, publication_year, author_id) VALUES (?, ?, ?)",
		"Orphan", 2001, 42,
	).Error

	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestBookGenresCompositeKey(t *testing.T) {
	db := setupTestDB(t)

	author := &entities.Author{Name: "Frank Herbert"}
	require.NoError(t, db.DB.Create(author).Error)
	genre := &entities.Genre{Name: "Sci-Fi"}
	require.NoError(t, db.DB.Create(genre).Error)
	book := &entities.Book{Title: "Dune", PublicationYear: 1965, AuthorID: author.ID}
	require.NoError(t, db.DB.Omit("Author", "Genres").Create(book).Error)

	link := entities.BookGenre{BookID: book.ID, GenreID: genre.ID}
	require.NoError(t, db.DB.Create(&link).Error)

	dup := entities.BookGenre{BookID: book.ID, GenreID: genre.ID}
	assert.Error(t, db.DB.Create(&dup).Error)
}

func TestIsForeignKeyViolation_OtherErrors(t *testing.T) {
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsForeignKeyViolation(assert.AnError))
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", dsn("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on", dsn("file:a.db?cache=shared"))
}
