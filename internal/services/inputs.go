package services

import "github.com/mrlokans/readkeeper/internal/opt"

// NewBook is the input to Catalog.AddBook. The author is given by name and
// resolved with get-or-create semantics.
type NewBook struct {
	Title      string
	AuthorName string
	Year       int
	GenreIDs   []uint
}

// BookChanges is the input to Catalog.UpdateBook. AuthorName and AuthorID
// are mutually exclusive; a name is resolved with get-or-create semantics.
type BookChanges struct {
	Title      opt.Value[string]
	AuthorName opt.Value[string]
	AuthorID   opt.Value[uint]
	Year       opt.Value[int]
	GenreIDs   opt.Value[[]uint]
}

// IsEmpty reports whether no change was provided.
func (ch BookChanges) IsEmpty() bool {
	return !ch.Title.IsSet() && !ch.AuthorName.IsSet() && !ch.AuthorID.IsSet() &&
		!ch.Year.IsSet() && !ch.GenreIDs.IsSet()
}
