package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrlokans/readkeeper/internal/config"
	"github.com/mrlokans/readkeeper/internal/database"
	"github.com/mrlokans/readkeeper/internal/logging"
	"github.com/mrlokans/readkeeper/internal/services"
)

// App carries what every command needs: configuration and a logger. It
// holds no database handle; each command opens and closes its own.
type App struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
}

func NewRootCmd(version string) *cobra.Command {
	app := &App{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "readkeeper",
		Short: "Keep track of your personal book collection",
		Long: `readkeeper records books, authors and genres in a local SQLite database.

Every command that needs input accepts it as flags or arguments and prompts
for anything left out.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.cfg = config.Load(app.v)
			app.logger = logging.Init(cmd.ErrOrStderr(), app.cfg.Log.Level)
			app.logger.Debug("config loaded", "database", app.cfg.Database.Path)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("db", config.DefaultDatabasePath, "path to the catalog database (env READKEEPER_DATABASE_PATH)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error (env READKEEPER_LOG_LEVEL)")
	flags.Bool("log-sql", false, "log every SQL statement (env READKEEPER_LOG_SQL)")
	_ = app.v.BindPFlag("database_path", flags.Lookup("db"))
	_ = app.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = app.v.BindPFlag("log_sql", flags.Lookup("log-sql"))

	root.AddCommand(
		app.addBookCmd(),
		app.listBooksCmd(),
		app.showBookCmd(),
		app.updateBookCmd(),
		app.deleteBookCmd(),
		app.addAuthorCmd(),
		app.listAuthorsCmd(),
		app.renameAuthorCmd(),
		app.deleteAuthorCmd(),
		app.addGenreCmd(),
		app.listGenresCmd(),
		app.renameGenreCmd(),
		app.deleteGenreCmd(),
		app.viewBooksByGenreCmd(),
		app.exportCmd(),
	)

	return root
}

func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}

// withCatalog opens the database for the duration of fn.
func (a *App) withCatalog(ctx context.Context, fn func(c *services.Catalog) error) error {
	db, err := database.NewDatabase(a.cfg.Database.Path,
		database.WithLogger(logging.NewGormLogger(a.logger, a.cfg.Log.SQL)),
	)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(services.NewCatalog(db.DB))
}
