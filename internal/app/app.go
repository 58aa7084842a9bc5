package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/db"
)

type App struct {
	ServiceProvider *ServiceProvider

	httpServer *http.Server
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

func (a *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	if err != nil {
		log.Warn().Err(err).Msg("no .env file, using process environment")
	}
	a.initServiceProvider()

	// Схема БД
	err = db.Migrate(ctx, a.ServiceProvider.DBClient(ctx))
	if err != nil {
		return err
	}

	// Фоновая уборка кэша живет до Shutdown
	a.ServiceProvider.Cache().StartSweeper()

	a.httpServer = &http.Server{
		Addr:    a.ServiceProvider.HTTPCfg().Address(),
		Handler: a.ServiceProvider.Router(ctx),
	}

	log.Info().Str("addr", a.httpServer.Addr).Msg("starting server")
	err = a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown - мягкая остановка: дослуживаем открытые запросы,
// глушим уборщика кэша и закрываем пул соединений
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if a.httpServer != nil {
		err = a.httpServer.Shutdown(ctx)
	}

	if a.ServiceProvider != nil {
		if a.ServiceProvider.cache != nil {
			a.ServiceProvider.cache.Stop()
		}
		if a.ServiceProvider.dbClient != nil {
			a.ServiceProvider.dbClient.Close()
		}
	}

	return err
}
