// ABOUTME: Entry point for the employee API server
// ABOUTME: Subcommands: serve (default), init (write starter config), bootstrap (create account)

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/tishida888/employee-api/internal/api"
	"github.com/tishida888/employee-api/internal/auth"
	"github.com/tishida888/employee-api/internal/config"
	"github.com/tishida888/employee-api/internal/store"
)

const banner = `
                      _                                        _
   ___ _ __ ___  _ __ | | ___  _   _  ___  ___        __ _ _ __ (_)
  / _ \ '_ ' _ \| '_ \| |/ _ \| | | |/ _ \/ _ \_____ / _' | '_ \| |
 |  __/ | | | | | |_) | | (_) | |_| |  __/  __/_____| (_| | |_) | |
  \___|_| |_| |_| .__/|_|\___/ \__, |\___|\___|      \__,_| .__/|_|
                |_|            |___/                      |_|
`

// getConfigPath returns the path to the server config file.
// Priority: EMPLOYEE_API_CONFIG env var > XDG_CONFIG_HOME/employee-api/config.yaml > ~/.config/employee-api/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("EMPLOYEE_API_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "employee-api", "config.yaml")
}

func main() {
	var err error
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			err = runInit()
		case "bootstrap":
			err = runBootstrap(os.Args[2:])
		case "serve":
			err = run()
		default:
			err = fmt.Errorf("unknown command %q (expected serve, init, or bootstrap)", os.Args[1])
		}
	} else {
		err = run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Listen:   %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sqlStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer sqlStore.Close()

	server, err := api.New(cfg, logger, sqlStore)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("starting employee API")
	return server.Run(ctx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var logLevel slog.Level
	switch cfg.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

const starterConfig = `# employee-api configuration
# Generated by employee-api init

server:
  http_addr: "127.0.0.1:8080"

database:
  path: "employee-api.db"

auth:
  # Secret for signing tokens. Keep this out of version control;
  # ${VAR} references are expanded from the environment.
  jwt_secret: "${EMPLOYEE_API_JWT_SECRET}"
  token_lifetime_minutes: 10

logging:
  level: "info"
  format: "text"
`

func runInit() error {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	cyan.Print(banner)

	configPath := getConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		yellow.Printf("    Config already exists at %s\n", configPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(starterConfig), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	green.Print("    ▶ ")
	fmt.Printf("Wrote starter config to %s\n", configPath)
	fmt.Println("    Set EMPLOYEE_API_JWT_SECRET and edit the file, then run: employee-api serve")
	return nil
}

// runBootstrap creates an account directly in the database. It exists so a
// fresh deployment can mint its first admin before the API has any
// credentials to log in with.
func runBootstrap(args []string) error {
	fs := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	name := fs.String("name", "", "account name")
	password := fs.String("password", "", "account password")
	admin := fs.Bool("admin", false, "grant the admin role")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *password == "" {
		return fmt.Errorf("bootstrap requires -name and -password")
	}

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer sqlStore.Close()

	digest, err := auth.HashPassword(*password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	account := &store.Account{
		Name:           *name,
		PasswordDigest: digest,
		Admin:          *admin,
	}
	if err := sqlStore.CreateAccount(context.Background(), account); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Created account %q (id=%d, admin=%v)\n", account.Name, account.ID, account.Admin)
	return nil
}
