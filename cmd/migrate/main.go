package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
	"github.com/P3chys/catalogo-disciplinas/internal/database"
	applogger "github.com/P3chys/catalogo-disciplinas/internal/logger"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	seed := flag.Bool("seed", false, "insert the fixture semesters after migrating up")
	configFile := flag.String("config", "", "optional config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database instance", zap.Error(err))
	}
	defer sqlDB.Close()

	switch *direction {
	case "up":
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("Migration failed", zap.Error(err))
		}
		if *seed {
			if err := database.SeedSemesters(db, logger); err != nil {
				logger.Fatal("Seeding failed", zap.Error(err))
			}
		}
	case "down":
		if *seed {
			logger.Warn("Ignoring -seed when migrating down")
		}
		if err := database.RollbackMigrations(sqlDB, logger); err != nil {
			logger.Fatal("Rollback failed", zap.Error(err))
		}
	default:
		logger.Fatal("Unknown direction", zap.String("direction", *direction))
	}

	logger.Info("Migration completed successfully", zap.String("direction", *direction))
}
