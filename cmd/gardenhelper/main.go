package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/gardenhelper/internal/cli"
	"github.com/alexanderramin/gardenhelper/internal/config"
	"github.com/alexanderramin/gardenhelper/internal/db"
	"github.com/alexanderramin/gardenhelper/internal/logging"
	"github.com/alexanderramin/gardenhelper/internal/repository"
	"github.com/alexanderramin/gardenhelper/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Info("database ready", zap.String("path", cfg.DB.Path))

	// Wire repositories and the unit of work for transactional operations
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	resultRepo := repository.NewSQLiteSoilResultRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewZapUseCaseObserver(logger)

	app := &cli.App{
		Profiles: service.NewProfileService(profileRepo, uow, observer),
		Results:  service.NewResultService(resultRepo, uow, observer),
		Journal:  service.NewJournalService(profileRepo, resultRepo, uow, observer),
		Config:   cfg,
		Logger:   logger,
	}

	// The TUI needs a terminal on both ends; anything else gets the summary.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
