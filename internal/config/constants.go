package config

const (
	// EnvPrefix prefixes every environment variable, e.g. READKEEPER_DATABASE_PATH.
	EnvPrefix = "READKEEPER"

	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./readkeeper.db"

	DefaultLogLevel = "warn"
)
