// Package app composes the single DAMRU process with fx: logging, the
// instance lock, the directory store, the event bus, navigation and the
// terminal UI.
package app

import (
	"context"
	"fmt"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/config"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/instance"
	"github.com/damru/damru/internal/lock"
	"github.com/damru/damru/internal/logging"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/store"
	"github.com/damru/damru/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved instance and configuration passed to the fx
// module.
type Params struct {
	Instance string
	Config   *config.Config
}

// Module returns the fx module for the client, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Module("damru",
			fx.Supply(p),
			fx.Provide(
				provideLogger,
				provideClock,
				provideLock,
				provideStore,
				provideDirectory,
				provideBus,
				provideResolver,
				provideController,
				provideTUI,
			),
			fx.Invoke(registerLifecycle),
		),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(instance.LogPath(p.Instance), p.Instance, p.Config.LogLevel)
}

func provideClock() clock.Clock {
	return clock.System{}
}

func provideLock(p Params, clk clock.Clock, logger *zap.Logger) (*lock.Lock, error) {
	if err := instance.EnsureDir(p.Instance); err != nil {
		return nil, err
	}
	logger.Info("acquiring instance lock", zap.String("instance", p.Instance))
	l, err := lock.Acquire(instance.Dir(p.Instance), clk.Now())
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired", zap.String("path", l.Path()))
	return l, nil
}

// provideStore opens the directory database. It takes the lock so the
// database is only touched by the process that owns the instance.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := instance.DirectoryDB(p.Instance, p.Config)
	db, result, err := store.OpenMigrated(dbPath)
	if err != nil {
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideDirectory(db *store.DB, logger *zap.Logger) (directory.Directory, error) {
	dir, err := db.LoadDirectory()
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	logger.Info("directory loaded",
		zap.Int("contacts", len(dir.Contacts())),
		zap.Int("conversations", len(dir.Conversations())),
		zap.Int("calls", len(dir.CallHistory())))
	return dir, nil
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideResolver(dir directory.Directory, clk clock.Clock) nav.ConversationResolver {
	return nav.NewChatStarter(dir, clk)
}

func provideController(chats nav.ConversationResolver, b *bus.Bus, clk clock.Clock, logger *zap.Logger) *nav.Controller {
	return nav.NewController(chats, b, clk, logger)
}

func provideTUI(p Params, ctrl *nav.Controller, dir directory.Directory, b *bus.Bus, clk clock.Clock, logger *zap.Logger) *tui.App {
	return tui.NewApp(tui.Deps{
		Instance:   p.Instance,
		Config:     p.Config,
		Controller: ctrl,
		Directory:  dir,
		Bus:        b,
		Clock:      clk,
		Logger:     logger,
	})
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, ui *tui.App, db *store.DB, lk *lock.Lock, b *bus.Bus, logger *zap.Logger) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := ui.Run(); err != nil {
					logger.Error("tui exited with error", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ui.Stop()
			select {
			case <-done:
			case <-ctx.Done():
				logger.Warn("tui did not stop in time")
			}
			b.Close()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("client stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
