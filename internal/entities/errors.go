package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAuthorHasBooks is returned when deleting an author that still owns books.
var ErrAuthorHasBooks = errors.New("author still has books")

// ValidationError reports input that cannot be stored as given.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidReferenceError lists ids that do not resolve to stored records.
// Operations that return it have not written anything.
type InvalidReferenceError struct {
	Entity string // "author" or "genre"
	IDs    []uint
}

func (e *InvalidReferenceError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	noun := e.Entity + " id"
	if len(e.IDs) > 1 {
		noun += "s"
	}
	return fmt.Sprintf("unknown %s: %s", noun, strings.Join(ids, ", "))
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsInvalidReference reports whether err is or wraps an *InvalidReferenceError.
func IsInvalidReference(err error) bool {
	var r *InvalidReferenceError
	return errors.As(err, &r)
}
