package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/readkeeper/internal/entities"
	"github.com/mrlokans/readkeeper/internal/opt"
	"github.com/mrlokans/readkeeper/internal/services"
)

func (a *App) addBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-book",
		Short: "Add a new book to the catalog",
		Long: `Add a new book. The author is looked up by name (case-insensitive) and
created if missing. Every genre id must exist or nothing is added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			title, err := p.flagOrAsk(cmd, "title", "Book title")
			if err != nil {
				return err
			}
			author, err := p.flagOrAsk(cmd, "author", "Author name")
			if err != nil {
				return err
			}
			rawYear, err := p.flagOrAsk(cmd, "year", "Publication year")
			if err != nil {
				return err
			}
			year, err := parseYear(rawYear)
			if err != nil {
				return err
			}
			rawGenres, err := p.flagOrAsk(cmd, "genres", "Genre IDs (comma separated)")
			if err != nil {
				return err
			}
			genreIDs, err := parseIDList("genre id", rawGenres)
			if err != nil {
				return err
			}

			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				book, err := c.AddBook(cmd.Context(), services.NewBook{
					Title:      title,
					AuthorName: author,
					Year:       year,
					GenreIDs:   genreIDs,
				})
				if err != nil {
					return err
				}
				a.logger.Info("book added", "id", book.ID, "author_id", book.AuthorID)
				fmt.Fprintf(cmd.OutOrStdout(), "Book '%s' by %s added.\n", book.Title, book.Author.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("title", "", "title of the book")
	cmd.Flags().String("author", "", "author name")
	cmd.Flags().String("year", "", "publication year")
	cmd.Flags().String("genres", "", "comma-separated genre ids")
	return cmd
}

func (a *App) listBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-books",
		Short: "Show all books",
		Long: `Show all books in the order they were added. With --author-id only that
author's books are shown, oldest publication first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var authorID uint
			if cmd.Flags().Changed("author-id") {
				raw, _ := cmd.Flags().GetString("author-id")
				id, err := parseID("author id", raw)
				if err != nil {
					return err
				}
				authorID = id
			}

			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				out := cmd.OutOrStdout()
				var books []entities.Book
				if authorID == 0 {
					all, err := c.Books.ListAll(cmd.Context())
					if err != nil {
						return err
					}
					if len(all) == 0 {
						fmt.Fprintln(out, "No books yet!")
						return nil
					}
					books = all
				} else {
					author, err := c.Authors.FindByID(cmd.Context(), authorID)
					if err != nil {
						return err
					}
					if author == nil {
						fmt.Fprintf(out, "Author %d not found.\n", authorID)
						return nil
					}
					books, err = c.Books.ListByAuthor(cmd.Context(), authorID)
					if err != nil {
						return err
					}
					if len(books) == 0 {
						fmt.Fprintf(out, "No books by %s yet!\n", author.Name)
						return nil
					}
				}
				for _, book := range books {
					fmt.Fprintf(out, "%s by %s (%d)\n", book.Title, book.Author.Name, book.PublicationYear)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("author-id", "", "only show books by this author")
	return cmd
}

func (a *App) showBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-book [id]",
		Short: "Show one book with its genres",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newPrompter(cmd).idInput(cmd, args, "id", "Book ID")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				book, err := c.Books.FindByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if book == nil {
					fmt.Fprintf(out, "Book %d not found.\n", id)
					return nil
				}
				printBookDetails(out, book)
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the book")
	return cmd
}

func printBookDetails(out io.Writer, book *entities.Book) {
	fmt.Fprintf(out, "#%d %s by %s (%d)\n", book.ID, book.Title, book.Author.Name, book.PublicationYear)
	genres := "none"
	if names := book.GenreNames(); len(names) > 0 {
		genres = strings.Join(names, ", ")
	}
	fmt.Fprintf(out, "Genres: %s\n", genres)
}

func (a *App) updateBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-book [id]",
		Short: "Update existing book details",
		Long: `Update a book. Only the fields given as flags change; --genres replaces
all genres and --genres "" clears them. Without any field flags every field
is prompted for, and a blank answer keeps the current value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			id, err := p.idInput(cmd, args, "id", "Book ID")
			if err != nil {
				return err
			}

			var changes services.BookChanges
			if anyChanged(cmd, "title", "author", "author-id", "year", "genres") {
				changes, err = bookChangesFromFlags(cmd)
			} else {
				changes, err = bookChangesFromPrompts(p)
			}
			if err != nil {
				return err
			}

			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				out := cmd.OutOrStdout()
				book, err := c.UpdateBook(cmd.Context(), id, changes)
				if err != nil {
					return err
				}
				switch {
				case book == nil:
					fmt.Fprintf(out, "Can't find book #%d\n", id)
				case changes.IsEmpty():
					fmt.Fprintf(out, "Nothing to change for book #%d\n", id)
				default:
					a.logger.Info("book updated", "id", id)
					fmt.Fprintf(out, "Updated book #%d\n", id)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the book")
	cmd.Flags().String("title", "", "new title")
	cmd.Flags().String("author", "", "new author name (created if missing)")
	cmd.Flags().String("author-id", "", "new author id")
	cmd.Flags().String("year", "", "new publication year")
	cmd.Flags().String("genres", "", `comma-separated genre ids replacing the current ones ("" clears)`)
	cmd.MarkFlagsMutuallyExclusive("author", "author-id")
	return cmd
}

func anyChanged(cmd *cobra.Command, flags ...string) bool {
	for _, name := range flags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func bookChangesFromFlags(cmd *cobra.Command) (services.BookChanges, error) {
	var ch services.BookChanges
	flags := cmd.Flags()
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		ch.Title = opt.Some(title)
	}
	if flags.Changed("author") {
		author, _ := flags.GetString("author")
		ch.AuthorName = opt.Some(author)
	}
	if flags.Changed("author-id") {
		raw, _ := flags.GetString("author-id")
		id, err := parseID("author id", raw)
		if err != nil {
			return ch, err
		}
		ch.AuthorID = opt.Some(id)
	}
	if flags.Changed("year") {
		raw, _ := flags.GetString("year")
		year, err := parseYear(raw)
		if err != nil {
			return ch, err
		}
		ch.Year = opt.Some(year)
	}
	if flags.Changed("genres") {
		raw, _ := flags.GetString("genres")
		ids, err := parseIDList("genre id", raw)
		if err != nil {
			return ch, err
		}
		ch.GenreIDs = opt.Some(ids)
	}
	return ch, nil
}

// clearGenres is the prompt answer that removes every genre from a book.
const clearGenres = "-"

func bookChangesFromPrompts(p *prompter) (services.BookChanges, error) {
	var ch services.BookChanges

	title, err := p.ask("New title (blank to keep)")
	if err != nil {
		return ch, err
	}
	if title != "" {
		ch.Title = opt.Some(title)
	}

	author, err := p.ask("New author (blank to keep)")
	if err != nil {
		return ch, err
	}
	if author != "" {
		ch.AuthorName = opt.Some(author)
	}

	rawYear, err := p.ask("New publication year (blank to keep)")
	if err != nil {
		return ch, err
	}
	if rawYear != "" {
		year, err := parseYear(rawYear)
		if err != nil {
			return ch, err
		}
		ch.Year = opt.Some(year)
	}

	rawGenres, err := p.ask("New genre IDs (blank to keep, - to clear)")
	if err != nil {
		return ch, err
	}
	switch rawGenres {
	case "":
	case clearGenres:
		ch.GenreIDs = opt.Some([]uint{})
	default:
		ids, err := parseIDList("genre id", rawGenres)
		if err != nil {
			return ch, err
		}
		ch.GenreIDs = opt.Some(ids)
	}

	return ch, nil
}

func (a *App) deleteBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-book [id]",
		Short: "Remove a book from the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newPrompter(cmd).idInput(cmd, args, "id", "Book ID")
			if err != nil {
				return err
			}
			return a.withCatalog(cmd.Context(), func(c *services.Catalog) error {
				deleted, err := c.Books.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Book %d deleted.\n", id)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Book %d not found.\n", id)
				}
				return nil
			})
		},
	}
	cmd.Flags().String("id", "", "id of the book")
	return cmd
}
