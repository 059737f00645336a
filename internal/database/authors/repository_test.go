package authors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readkeeper/internal/database"
	"github.com/mrlokans/readkeeper/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "authors.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), db
}

func TestRepository_CreateThenFindByID(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Create(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, uint(1), author.ID)

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.Name)
}

func TestRepository_CreateAllowsDuplicateNames(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "Anonymous")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Anonymous")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_CreateRejectsBlankName(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.Create(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
}

func TestRepository_FindByID_Absent(t *testing.T) {
	repo, _ := setupTestDB(t)

	author, err := repo.FindByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, author)
}

func TestRepository_GetOrCreate_CaseInsensitive(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	created, isNew, err := repo.GetOrCreate(ctx, "Frank Herbert")
	require.NoError(t, err)
	assert.True(t, isNew)

	existing, isNew, err := repo.GetOrCreate(ctx, "frank herbert")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, existing.ID)
}

func TestRepository_ListAll(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	authors, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)

	_, err = repo.Create(ctx, "B")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "A")
	require.NoError(t, err)

	authors, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "B", authors[0].Name)
	assert.Equal(t, "A", authors[1].Name)
}

func TestRepository_Rename(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Create(ctx, "J. Doe")
	require.NoError(t, err)

	renamed, err := repo.Rename(ctx, author.ID, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", renamed.Name)

	missing, err := repo.Rename(ctx, 404, "Nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Create(ctx, "To Delete")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repo.Delete(ctx, author.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_DeleteRejectedWhileBooksExist(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	author, err := repo.Create(ctx, "Frank Herbert")
	require.NoError(t, err)
	book := &entities.Book{Title: "Dune", PublicationYear: 1965, AuthorID: author.ID}
	require.NoError(t, db.DB.Omit("Author", "Genres").Create(book).Error)

	count, err := repo.CountBooks(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := repo.Delete(ctx, author.ID)
	assert.ErrorIs(t, err, entities.ErrAuthorHasBooks)
	assert.False(t, deleted)

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
