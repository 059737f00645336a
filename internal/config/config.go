package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Log
	}

	Database struct {
		Path string
	}
	Log struct {
		Level string // debug, info, warn, error
		SQL   bool   // Log every SQL statement GORM executes
	}
)

// Load reads configuration from v. A .env file in the working directory is
// loaded first when present; variables already set in the environment win
// over it.
func Load(v *viper.Viper) *Config {
	_ = godotenv.Load()
	return FromViper(v)
}

// NewViper returns a viper instance with defaults and READKEEPER_* env binding.
// Callers may bind command-line flags onto it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_sql", false)
	return v
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Database: Database{
			Path: v.GetString("database_path"),
		},
		Log: Log{
			Level: strings.ToLower(v.GetString("log_level")),
			SQL:   v.GetBool("log_sql"),
		},
	}
}
