package entities

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readkeeper/internal/opt"
)

func TestValidateName(t *testing.T) {
	name, err := ValidateName("name", "  Jane Doe ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	_, err = ValidateName("title", " \t")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "invalid title: must not be blank")
}

func TestInvalidReferenceError(t *testing.T) {
	single := &InvalidReferenceError{Entity: "author", IDs: []uint{7}}
	assert.EqualError(t, single, "unknown author id: 7")

	many := &InvalidReferenceError{Entity: "genre", IDs: []uint{3, 99}}
	assert.EqualError(t, many, "unknown genre ids: 3, 99")

	wrapped := fmt.Errorf("create book: %w", many)
	assert.True(t, IsInvalidReference(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestBookUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BookUpdate{}.IsEmpty())
	assert.False(t, BookUpdate{GenreIDs: opt.Some([]uint{})}.IsEmpty())
	assert.False(t, BookUpdate{Year: opt.Some(0)}.IsEmpty())
}

func TestBook_GenreNames(t *testing.T) {
	book := Book{Genres: []Genre{{Name: "Sci-Fi"}, {Name: "Classic"}}}
	assert.Equal(t, []string{"Sci-Fi", "Classic"}, book.GenreNames())
	assert.Empty(t, (&Book{}).GenreNames())
}
