// Package main implements the database migration utility for the disparo queue.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/infrastructure/migrate"
)

const defaultMigrateSteps = 0

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides config)")
	flag.IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to apply or roll back; 0 means all for up, 1 for down")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}

	runnerConfig, err := resolveConfig(configPath, migrationsPath)
	if err != nil {
		logger.Fatal("Failed to resolve database settings", zap.Error(err))
	}
	runner := migrate.NewRunner(runnerConfig, logger)

	switch command := args[0]; command {
	case "up":
		if steps > 0 {
			err = runner.Steps(steps)
		} else {
			err = runner.Up()
		}
		if err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}

	case "down":
		if steps <= 0 {
			steps = 1
		}
		if err := runner.Steps(-steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			logger.Fatal("Failed to get version", zap.Error(err))
		}
		logger.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))

	default:
		logger.Fatal("Unknown command, use 'up', 'down', or 'version'", zap.String("command", command))
	}
}

// resolveConfig prefers DATABASE_URL and falls back to the config file.
func resolveConfig(configPath, migrationsPath string) (*migrate.Config, error) {
	out := &migrate.Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: migrationsPath,
	}

	if out.DatabaseURL == "" || out.MigrationsPath == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			if out.DatabaseURL == "" {
				return nil, err
			}
		} else {
			if out.DatabaseURL == "" {
				out.DatabaseURL = cfg.Database.GetURL()
			}
			if out.MigrationsPath == "" {
				out.MigrationsPath = cfg.Database.MigrationsPath
			}
		}
	}

	if out.MigrationsPath == "" {
		out.MigrationsPath = "./migrations"
	}

	return out, nil
}
