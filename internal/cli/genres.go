package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/readkeeper/internal/services"
)

func (a *App) addGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genre",
		Short: "Add a new genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := newPrompter(cmd).flagOrAsk(cmd, "name", "Genre name")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				genre, err := c.Genres.Create(cmd.Context(), name)
				if err != nil {
					return err
				}
				a.logger.Info("genre added", "id", genre.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Genre '%s' added.\n", genre.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "name of the genre")
	return cmd
}

func (a *App) listGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-genres",
		Short: "List all available genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				genres, err := c.Genres.ListAll(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(genres) == 0 {
					fmt.Fprintln(out, "No genres yet!")
					return nil
				}
				for _, genre := range genres {
					fmt.Fprintf(out, "Genre: %s (id %d)\n", genre.Name, genre.ID)
				}
				return nil
			})
		},
	}
}

func (a *App) deleteGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-genre [id]",
		Short: "Remove a genre; its books are kept",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newPrompter(cmd).idInput(cmd, args, "id", "Genre ID")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				deleted, err := c.Genres.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Genre %d deleted.\n", id)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Genre %d not found.\n", id)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the genre")
	return cmd
}

func (a *App) viewBooksByGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view-books-by-genre [genre-id]",
		Short: "View all books in a specific genre",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newPrompter(cmd).idInput(cmd, args, "genre-id", "Genre ID")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				genre, err := c.Genres.BooksFor(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if genre == nil {
					fmt.Fprintf(out, "Genre with ID %d not found.\n", id)
					return nil
				}
				fmt.Fprintf(out, "Books in the genre '%s':\n", genre.Name)
				if len(genre.Books) == 0 {
					fmt.Fprintln(out, "No books found for this genre.")
					return nil
				}
				for _, book := range genre.Books {
					fmt.Fprintf(out, "- %s by %s (%d)\n", book.Title, book.Author.Name, book.PublicationYear)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("genre-id", "", "id of the genre")
	return cmd
}

func (a *App) renameGenreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-genre [id]",
		Short: "Change a genre's name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			id, err := p.idInput(cmd, args, "id", "Genre ID")
			if err != nil {
				return err
			}
			name, err := p.flagOrAsk(cmd, "name", "New name")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				genre, err := c.Genres.Rename(cmd.Context(), id, name)
				if err != nil {
					return err
				}
				if genre == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Genre %d not found.\n", id)
					return nil
				}
				a.logger.Info("genre renamed", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Genre %d renamed to '%s'.\n", id, genre.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the genre")
	cmd.Flags().String("name", "", "new name")
	return cmd
}
