package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/readkeeper/internal/database/authors"
	"github.com/mrlokans/readkeeper/internal/database/books"
	"github.com/mrlokans/readkeeper/internal/database/genres"
	"github.com/mrlokans/readkeeper/internal/exporters"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ exporters.AuthorLister = (*authors.Repository)(nil)
var _ exporters.GenreLister = (*genres.Repository)(nil)
var _ exporters.BookLister = (*books.Repository)(nil)

// =============================================================================
// Export
// =============================================================================

var _ exporters.CatalogExporter = (*exporters.YAMLExporter)(nil)
