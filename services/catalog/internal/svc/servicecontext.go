package svc

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cuihairu/ludotheque/internal/db"
	"github.com/cuihairu/ludotheque/internal/hotreload"
	"github.com/cuihairu/ludotheque/internal/ports"
	repocatalog "github.com/cuihairu/ludotheque/internal/repo/gorm/catalog"
	catalogsvc "github.com/cuihairu/ludotheque/internal/service/catalog"
	"github.com/cuihairu/ludotheque/internal/telemetry"
	"github.com/cuihairu/ludotheque/internal/validation"
	"github.com/cuihairu/ludotheque/services/catalog/internal/config"
	"github.com/cuihairu/ludotheque/services/catalog/internal/view"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type ServiceContext struct {
	Config config.Config

	DB         *gorm.DB
	Games      ports.GamesRepository
	Genres     ports.GenresRepository
	Publishers ports.PublishersRepository
	Seeder     *catalogsvc.Service
	Validator  *validation.Validator
	View       *view.Renderer
	Metrics    *telemetry.CatalogMetrics

	watcher *hotreload.Watcher
}

// NewServiceContext opens the configured database, migrates it and wires the repositories.
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	gdb, err := db.Open(c.Database.Driver, c.Database.DataSource)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	ctx, err := NewServiceContextWithDB(c, gdb)
	if err != nil {
		closeDB(gdb)
		return nil, err
	}
	return ctx, nil
}

// NewServiceContextWithDB wires everything around an already opened connection.
// The context takes ownership of gdb and closes it in Close.
func NewServiceContextWithDB(c config.Config, gdb *gorm.DB) (*ServiceContext, error) {
	if err := repocatalog.AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var names []string
	if c.Catalog.SeedFile != "" {
		loaded, err := catalogsvc.LoadSeedFile(c.Catalog.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed file: %w", err)
		}
		names = loaded
	}

	renderer, err := view.New(c.Views.Dir)
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	metrics, err := telemetry.NewCatalogMetrics(nil)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	genres := repocatalog.NewGenreRepo(gdb)
	return &ServiceContext{
		Config:     c,
		DB:         gdb,
		Games:      repocatalog.NewGameRepo(gdb),
		Genres:     genres,
		Publishers: repocatalog.NewPublisherRepo(gdb),
		Seeder:     catalogsvc.NewService(genres, names),
		Validator:  validation.New(),
		View:       renderer,
		Metrics:    metrics,
	}, nil
}

// Bootstrap builds the context for c and runs Prepare. Nothing is left open on failure.
func Bootstrap(ctx context.Context, c config.Config) (*ServiceContext, error) {
	sc, err := NewServiceContext(c)
	if err != nil {
		return nil, err
	}
	if err := sc.Prepare(ctx); err != nil {
		sc.Close()
		return nil, err
	}
	return sc, nil
}

// Prepare runs everything that must happen before the server listens.
// A seeding failure is returned; a view watcher failure only disables reload.
func (s *ServiceContext) Prepare(ctx context.Context) error {
	if err := s.Seed(ctx); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}
	if err := s.WatchViews(ctx); err != nil {
		logx.WithContext(ctx).Errorf("view reload disabled: %v", err)
	}
	return nil
}

// Seed ensures the seed genres exist. Callers treat an error as fatal.
func (s *ServiceContext) Seed(ctx context.Context) error {
	n, err := s.Seeder.Seed(ctx)
	if err != nil {
		return err
	}
	s.Metrics.Record(ctx, "genre", "seed", int64(n))
	logx.WithContext(ctx).Infof("genres seeded: %d created, %d total", n, len(s.Seeder.Names()))
	return nil
}

// WatchViews reloads templates whenever a file under Views.Dir changes.
// It is a no-op unless Views.Reload is set with a Views.Dir.
func (s *ServiceContext) WatchViews(ctx context.Context) error {
	if !s.Config.Views.Reload || s.Config.Views.Dir == "" {
		return nil
	}
	w, err := hotreload.NewWatcher(hotreload.Config{
		Dirs: []string{filepath.Clean(s.Config.Views.Dir)},
		Exts: []string{".html"},
	}, slog.Default(), func(path string) {
		if err := s.View.Reload(); err != nil {
			logx.Errorf("reload views after %s: %v", path, err)
			return
		}
		logx.Infof("views reloaded after %s", path)
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return err
	}
	s.watcher = w
	return nil
}

// Close stops the view watcher and releases the database connection.
func (s *ServiceContext) Close() {
	if s.watcher != nil {
		_ = s.watcher.Stop()
	}
	if s.DB != nil {
		closeDB(s.DB)
	}
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
