package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ae-wizard/worldimmigration/internal/api"
	"github.com/ae-wizard/worldimmigration/internal/engine"
	"github.com/ae-wizard/worldimmigration/internal/genai"
	"github.com/ae-wizard/worldimmigration/internal/store"
	"github.com/ae-wizard/worldimmigration/internal/util"
	"github.com/ae-wizard/worldimmigration/internal/ws"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for service state data
	DefaultStateDir = "/var/lib/worldimmigration"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "worldimmigration.db"
	// DefaultAPIAddr is the default listen address
	DefaultAPIAddr = ":8000"
)

// Config holds environment configuration
type Config struct {
	DBDriver       string
	DBDSN          string
	StateDir       string
	OpenAIKey      string
	APIAddr        string
	AllowedOrigins []string
	Debug          bool
}

func main() {
	initializeLogger()

	config := loadEnvironmentConfig()
	flags := parseCommandLineFlags(config)

	st, err := buildStore(flags)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	classifier := buildClassifier(*flags.openaiKey)
	chat := ws.NewHandler(st, classifier, flags.origins())
	server := api.NewServer(st, chat, flags.origins())

	slog.Info("worldimmigration API running", "addr", *flags.apiAddr)
	if err := http.ListenAndServe(*flags.apiAddr, server.Router()); err != nil {
		slog.Error("worldimmigration failed to run", "error", err)
		os.Exit(1)
	}
}

// Flags holds command line flag values
type Flags struct {
	stateDir       *string
	dbDriver       *string
	dbDSN          *string
	openaiKey      *string
	apiAddr        *string
	allowedOrigins *string
}

func (f Flags) origins() []string {
	return util.SplitList(*f.allowedOrigins)
}

// initializeLogger sets up structured logging to stdout
func initializeLogger() {
	level := slog.LevelInfo
	if util.ParseBoolEnv("DEBUG", false) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		DBDriver:       os.Getenv("DB_DRIVER"),
		DBDSN:          os.Getenv("DATABASE_URL"),
		StateDir:       os.Getenv("STATE_DIR"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		APIAddr:        os.Getenv("API_ADDR"),
		AllowedOrigins: util.ParseListEnv("ALLOWED_ORIGINS"),
	}

	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
	}
	if config.APIAddr == "" {
		config.APIAddr = DefaultAPIAddr
	}

	slog.Debug("environment variables loaded",
		"DB_DRIVER", config.DBDriver,
		"DATABASE_URL_SET", config.DBDSN != "",
		"STATE_DIR", config.StateDir,
		"OPENAI_API_KEY_SET", config.OpenAIKey != "",
		"API_ADDR", config.APIAddr,
		"ALLOWED_ORIGINS", config.AllowedOrigins)

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		stateDir:       flag.String("state-dir", config.StateDir, "state directory for service data (overrides $STATE_DIR)"),
		dbDriver:       flag.String("db-driver", config.DBDriver, "database driver: sqlite3 or postgres (overrides $DB_DRIVER)"),
		dbDSN:          flag.String("db-dsn", config.DBDSN, "database DSN (overrides $DATABASE_URL)"),
		openaiKey:      flag.String("openai-api-key", config.OpenAIKey, "OpenAI API key for GenAI answers (overrides $OPENAI_API_KEY)"),
		apiAddr:        flag.String("api-addr", config.APIAddr, "API server address (overrides $API_ADDR)"),
		allowedOrigins: flag.String("allowed-origins", strings.Join(config.AllowedOrigins, ","), "comma-separated CORS/WebSocket origin allowlist (overrides $ALLOWED_ORIGINS)"),
	}
	flag.Parse()
	return flags
}

// buildStore selects the storage backend from the configured driver. With no
// explicit DSN the store defaults to SQLite under the state directory, so the
// default is computed after flag parsing and honors -state-dir.
func buildStore(flags Flags) (store.Store, error) {
	driver := *flags.dbDriver
	dsn := *flags.dbDSN
	if dsn == "" {
		dsn = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", dsn)
	}
	if driver == "" {
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			driver = "postgres"
		} else {
			driver = "sqlite3"
		}
	}
	slog.Info("Initializing store", "driver", driver)
	switch driver {
	case "postgres":
		return store.NewPostgresStore(store.WithDSN(dsn))
	default:
		return store.NewSQLiteStore(store.WithDSN(dsn))
	}
}

// buildClassifier returns the GenAI-backed classifier when a key is
// configured, otherwise nil so sessions use the keyword default.
func buildClassifier(openaiKey string) engine.Classifier {
	if openaiKey == "" {
		slog.Info("No OpenAI API key configured, using keyword classifier")
		return nil
	}
	client, err := genai.NewClient(genai.WithAPIKey(openaiKey))
	if err != nil {
		slog.Warn("Failed to initialize GenAI client, using keyword classifier", "error", err)
		return nil
	}
	slog.Info("GenAI classifier enabled")
	return engine.NewGenAIClassifier(client)
}
