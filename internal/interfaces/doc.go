// Package interfaces documents the abstractions that connect the catalog's
// packages and holds compile-time checks for them (see checks.go).
//
// # Data Access
//
//   - exporters.AuthorLister, GenreLister, BookLister: read-only listing used
//     by the YAML exporter; implemented by the repositories under
//     internal/database.
//
// # Export
//
//   - exporters.CatalogExporter: writes a full catalog snapshot to an
//     io.Writer (internal/exporters/yaml.go).
//
// # Adding a New Export Format
//
//  1. Add a type in internal/exporters that takes the three listers.
//  2. Implement Export(ctx, w) (ExportResult, error).
//  3. Add a compile-time check to checks.go:
//
//     var _ exporters.CatalogExporter = (*exporters.CSVExporter)(nil)
//
//  4. Offer it from the export command in internal/cli/export.go.
package interfaces
