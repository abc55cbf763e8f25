package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harmonic/launchkit/internal/classify"
	"github.com/harmonic/launchkit/internal/config"
	"github.com/harmonic/launchkit/internal/database"
	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/logging"
	"github.com/harmonic/launchkit/internal/organizer"
	"github.com/harmonic/launchkit/internal/reconcile"
	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/search"
)

// env is the wired application: store, repositories, services.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	db    *sql.DB
	apps  *repository.AppRepo
	org   *organizer.Organizer
	reg   *registry.Dir
	coord *reconcile.Coordinator
	find  *search.Service
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	apps := repository.NewAppRepo(db)
	reg := registry.NewDir(cfg.Registry.Path)

	e := &env{
		cfg:  cfg,
		log:  log,
		db:   db,
		apps: apps,
		reg:  reg,
		org: &organizer.Organizer{
			Folders:   repository.NewFolderRepo(db),
			Dock:      repository.NewDockRepo(db),
			Favorites: repository.NewFavoriteRepo(db),
			Settings:  repository.NewSettingsRepo(db),
			DockSlots: cfg.Dock.Slots,
		},
		coord: &reconcile.Coordinator{
			Registry:   reg,
			Apps:       apps,
			Classifier: classify.New(),
			Log:        log,
		},
		find: &search.Service{Apps: apps},
	}
	return e, nil
}

func (e *env) close() {
	_ = e.log.Sync()
	_ = e.db.Close()
}

// run wraps a command body with env setup and teardown.
func run(fn func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()
		return fn(cmd, args, e)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "launchkit",
		Short:         "Classify and organize installed applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSyncCmd(),
		newWatchCmd(),
		newListCmd(),
		newSectionsCmd(),
		newSearchCmd(),
		newRecentCmd(),
		newTouchCmd(),
		newCategorizeCmd(),
		newFolderCmd(),
		newDockCmd(),
		newCategoryCmd(),
		newFavoriteCmd(),
		newPrefsCmd(),
	)
	return root
}
