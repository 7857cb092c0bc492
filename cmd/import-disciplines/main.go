package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
	"github.com/P3chys/catalogo-disciplinas/internal/database"
	applogger "github.com/P3chys/catalogo-disciplinas/internal/logger"
	"github.com/P3chys/catalogo-disciplinas/internal/repository"
	"github.com/P3chys/catalogo-disciplinas/internal/services"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	file := flag.String("file", "disciplinas.yaml", "YAML file mapping semester labels to discipline names")
	configFile := flag.String("config", "", "optional config file")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger, err := applogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("Failed to open import file", zap.String("file", *file), zap.Error(err))
		return 1
	}
	entries, err := parseImport(f)
	f.Close()
	if err != nil {
		logger.Error("Failed to parse import file", zap.String("file", *file), zap.Error(err))
		return 1
	}
	logger.Info("Import file loaded", zap.String("file", *file), zap.Int("entries", len(entries)))

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get database instance", zap.Error(err))
		return 1
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return 1
	}
	if err := database.SeedSemesters(db, logger); err != nil {
		logger.Error("Failed to seed semesters", zap.Error(err))
		return 1
	}

	catalog := services.NewCatalogService(repository.NewRepository(db), logger)
	summary := importEntries(context.Background(), catalog, entries, logger)

	logger.Info("Import completed",
		zap.Int("imported", summary.Imported),
		zap.Int("existing", summary.Existing),
		zap.Int("errors", summary.Errors),
	)
	return summary.exitCode()
}
