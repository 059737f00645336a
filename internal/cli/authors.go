package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/readkeeper/internal/entities"
	"github.com/mrlokans/readkeeper/internal/services"
)

func (a *App) addAuthorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-author",
		Short: "Add a new author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := newPrompter(cmd).flagOrAsk(cmd, "name", "Author name")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				author, err := c.Authors.Create(cmd.Context(), name)
				if err != nil {
					return err
				}
				a.logger.Info("author added", "id", author.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Author '%s' added.\n", author.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "name of the author")
	return cmd
}

func (a *App) listAuthorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-authors",
		Short: "Show all authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				authors, err := c.Authors.ListAll(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(authors) == 0 {
					fmt.Fprintln(out, "No authors yet!")
					return nil
				}
				for _, author := range authors {
					fmt.Fprintln(out, author.Name)
				}
				return nil
			})
		},
	}
}

func (a *App) deleteAuthorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-author [id]",
		Short: "Remove an author who has no books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newPrompter(cmd).idInput(cmd, args, "id", "Author ID")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				out := cmd.OutOrStdout()
				deleted, err := c.Authors.Delete(cmd.Context(), id)
				if errors.Is(err, entities.ErrAuthorHasBooks) {
					count, countErr := c.Authors.CountBooks(cmd.Context(), id)
					if countErr != nil {
						return countErr
					}
					fmt.Fprintf(out, "Author %d still has %d book(s); delete or reassign them first.\n", id, count)
					return nil
				}
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintf(out, "Author %d deleted.\n", id)
				} else {
					fmt.Fprintf(out, "Author %d not found.\n", id)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the author")
	return cmd
}

func (a *App) renameAuthorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-author [id]",
		Short: "Change an author's name on all their books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			id, err := p.idInput(cmd, args, "id", "Author ID")
			if err != nil {
				return err
			}
			name, err := p.flagOrAsk(cmd, "name", "New name")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				author, err := c.Authors.Rename(cmd.Context(), id, name)
				if err != nil {
					return err
				}
				if author == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Author %d not found.\n", id)
					return nil
				}
				a.logger.Info("author renamed", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Author %d renamed to '%s'.\n", id, author.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the author")
	cmd.Flags().String("name", "", "new name")
	return cmd
}
