package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/physio-clinic/internal/db"
	infraRepo "github.com/BruksfildServices01/physio-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/physio-clinic/internal/seed"
)

func main() {
	file := flag.String("file", "seed.yaml", "path to the YAML fixture")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		logger.Error("seeding requires STORAGE_DRIVER=postgres", "driver", cfg.StorageDriver)
		os.Exit(1)
	}

	fh, err := os.Open(*file)
	if err != nil {
		logger.Error("failed to open fixture", "file", *file, "error", err)
		os.Exit(1)
	}
	fixture, err := seed.Decode(fh)
	fh.Close()
	if err != nil {
		logger.Error("failed to read fixture", "file", *file, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpkg.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer dbpkg.Close(db)

	res, err := seed.Apply(ctx, fixture, seed.Repos{
		Users:            infraRepo.NewUserGormRepository(db),
		Therapies:        infraRepo.NewTherapyGormRepository(db),
		Physiotherapists: infraRepo.NewPhysiotherapistGormRepository(db),
	}, auth.NewBcryptHasher(), logger)
	if err != nil {
		logger.Error("seed failed", "error", err)
		cancel()
		dbpkg.Close(db)
		os.Exit(1)
	}

	logger.Info("seed complete",
		"admin_created", res.AdminCreated,
		"therapies", res.Therapies,
		"physiotherapists", res.Physiotherapists,
	)
}
