// Package app assembles the bot from configuration: storage, services,
// handlers, scheduler and the Telegram runtime options.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/Soskid107/Hikma-bot-sub000/core/bootstrap"
	tg "github.com/Soskid107/Hikma-bot-sub000/core/telegram"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/router"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/state"
	"github.com/Soskid107/Hikma-bot-sub000/internal/config"
	"github.com/Soskid107/Hikma-bot-sub000/internal/handlers"
	"github.com/Soskid107/Hikma-bot-sub000/internal/quotes"
	"github.com/Soskid107/Hikma-bot-sub000/internal/repository"
	"github.com/Soskid107/Hikma-bot-sub000/internal/scheduler"
	"github.com/Soskid107/Hikma-bot-sub000/internal/services"
)

// App holds every long-lived component of the bot.
type App struct {
	cfg *config.Config
	db  *sqlx.DB
	reg *tg.Registry
	fsm state.Manager

	users     *repository.UserRepository
	handlers  *handlers.Handlers
	reminders *scheduler.Reminders
}

// Bootstrap initializes logging, storage and migrations, then wires the
// services and handlers.
func Bootstrap(cfg *config.Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}
	db := res.DB

	if err := bootstrap.RunSeeders(context.Background(), db, bootstrap.SeederFunc(backfillProgressRows)); err != nil {
		_ = db.Close()
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	userSvc := services.NewUserService(userRepo, cfg.Reminders.Hour(), cfg.Reminders.Enabled)
	progressSvc := services.NewProgressService(db, userRepo, progressRepo)
	checklistSvc := services.NewChecklistService(checklistRepo, progressSvc)
	journalSvc := services.NewJournalService(journalRepo)

	quotesClient := quotes.NewClient(quotes.Options{
		BaseURL: cfg.Quotes.BaseURL,
		Timeout: cfg.Quotes.Timeout(),
	})

	fsm := state.NewMemoryManager()
	h := handlers.New(userSvc, progressSvc, checklistSvc, journalSvc, quotesClient, fsm)

	reg := tg.NewRegistry()
	h.Register(reg)

	return &App{
		cfg:      cfg,
		db:       db,
		reg:      reg,
		fsm:      fsm,
		users:    userRepo,
		handlers: h,
	}, nil
}

// backfillProgressRows creates a progress record for any user enrolled
// before progress tracking was introduced.
func backfillProgressRows(ctx context.Context, storage bootstrap.Storage) error {
	db, ok := storage.(*sqlx.DB)
	if !ok {
		return fmt.Errorf("app: unexpected storage type %T", storage)
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO progress_tracking (user_id)
		SELECT id FROM users
		ON CONFLICT (user_id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("backfill progress rows: %w", err)
	}
	return nil
}

// TelegramRunOptions builds the bot runtime: middleware chain, routes and
// lifecycle hooks for the reminder scheduler.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	core := a.cfg.CoreConfig()

	mws := tg.DefaultMiddlewares(core, nil)
	mws = append(mws, tg.Middleware{Name: "session", Use: state.WithSession(a.fsm)})

	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.fsm, a.reg, router.TextOptions{
		UnknownDocument: a.handlers.UnknownDocument(),
	})...)
	routes = append(routes, tg.Route{
		Endpoint: tele.OnQuery,
		Handler:  a.handlers.InlineQuery,
	})

	return tg.RunOptions{
		Config:      core,
		Registry:    a.reg,
		Middlewares: mws,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			if !a.cfg.Reminders.Enabled {
				return nil
			}
			a.reminders = scheduler.NewReminders(rt.Bot, rt.Dispatcher, a.users)
			return a.reminders.Start()
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			if a.reminders != nil {
				a.reminders.Stop()
			}
			return a.db.Close()
		},
	}, nil
}
