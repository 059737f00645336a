package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/readkeeper/internal/exporters"
	"github.com/mrlokans/readkeeper/internal/services"
)

func (a *App) exportCmd() *cobra.Command {
	var output, dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole catalog as YAML",
		Long: `Write every author, genre and book as a YAML document, to stdout or to
the file given with --output. With --dir the catalog is split into
genres.yaml and one file per author instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				exporter := exporters.NewYAMLExporter(c.Authors, c.Genres, c.Books)

				if dir != "" {
					result, err := exporter.ExportToDir(cmd.Context(), dir)
					if err != nil {
						return err
					}
					a.logger.Info("catalog exported", "dir", dir)
					printExportResult(cmd, result, dir)
					return nil
				}

				if output == "" {
					_, err := exporter.Export(cmd.Context(), cmd.OutOrStdout())
					return err
				}

				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				result, err := exporter.Export(cmd.Context(), f)
				if closeErr := f.Close(); err == nil {
					err = closeErr
				}
				if err != nil {
					return err
				}

				a.logger.Info("catalog exported", "path", output)
				printExportResult(cmd, result, output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to write one file per author into")
	cmd.MarkFlagsMutuallyExclusive("output", "dir")
	return cmd
}

func printExportResult(cmd *cobra.Command, result exporters.ExportResult, dest string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d authors, %d genres and %d books to %s\n",
		result.AuthorsExported, result.GenresExported, result.BooksExported, dest)
}
