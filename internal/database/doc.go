// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and schema migration
//	├── errors.go        # SQLite/GORM error classification
//	├── authors/         # Author CRUD operations
//	├── genres/          # Genre CRUD and books-by-genre
//	└── books/           # Book CRUD and genre associations
//
// # Using Sub-packages
//
// There is no package-level handle. Open a Database, hand its *gorm.DB to
// the repositories that need it, and close it when the operation is done:
//
//	db, err := database.NewDatabase("./readkeeper.db")
//	defer db.Close()
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.Create(ctx, "Frank Herbert")
//	book, err := booksRepo.Create(ctx, entities.BookInput{...})
//
// # Absent Records
//
// FindByID-style lookups return (nil, nil) when no record has the id, and
// Delete returns false. Errors are reserved for validation failures,
// unresolved references and storage faults.
//
// # Schema
//
// Tables: authors, genres, books and the book_genres join table keyed by
// (book_id, genre_id). books.author_id restricts author deletion; join rows
// are removed together with either side.
package database
