package exporters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mrlokans/readkeeper/internal/utils"
)

// AuthorFile is one author's document in a directory export.
type AuthorFile struct {
	Author AuthorRecord `yaml:"author"`
	Books  []BookRecord `yaml:"books"`
}

const genresFileName = "genres.yaml"

// ExportToDir writes genres.yaml and one "<id> <name>.yaml" file per author
// under dir, creating it if needed. Existing files with the same names are
// overwritten.
func (e *YAMLExporter) ExportToDir(ctx context.Context, dir string) (ExportResult, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := writeYAMLFile(filepath.Join(dir, genresFileName), snap.Genres); err != nil {
		return ExportResult{}, err
	}

	byAuthor := lo.GroupBy(snap.Books, func(b BookRecord) uint { return b.AuthorID })
	for _, author := range snap.Authors {
		doc := AuthorFile{Author: author, Books: byAuthor[author.ID]}
		if doc.Books == nil {
			doc.Books = []BookRecord{}
		}
		path := filepath.Join(dir, utils.RecordFilename(author.ID, author.Name, ".yaml"))
		if err := writeYAMLFile(path, doc); err != nil {
			return ExportResult{}, err
		}
	}

	return ExportResult{
		AuthorsExported: len(snap.Authors),
		GenresExported:  len(snap.Genres),
		BooksExported:   len(snap.Books),
	}, nil
}

func writeYAMLFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(v)
	if err == nil {
		err = enc.Close()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
