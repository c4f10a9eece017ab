package app

import (
	"github.com/AlenaMolokova/randkey/internal/app/config"
	"github.com/AlenaMolokova/randkey/internal/app/handler"
	"github.com/AlenaMolokova/randkey/internal/app/service"
	"github.com/AlenaMolokova/randkey/internal/app/storage"
)

type App struct {
	Handler *handler.PresetHandler
	Service *service.PresetService

	storage *storage.Storage
}

func NewApp(cfg *config.Config) (*App, error) {
	presetStorage, err := storage.NewStorage(cfg.DatabaseDSN, cfg.FileStoragePath)
	if err != nil {
		return nil, err
	}

	presetService := service.NewPresetService(
		presetStorage.AsPresetSaver(),
		presetStorage.AsPresetGetter(),
		presetStorage.AsPresetLister(),
		presetStorage.AsPresetDeleter(),
		presetStorage.AsPinger(),
		cfg.Workers,
	)

	handler := handler.NewPresetHandler(
		presetService,
		presetService,
		presetService,
		presetService,
		presetService,
	)

	return &App{
		Handler: handler,
		Service: presetService,
		storage: presetStorage,
	}, nil
}

func (a *App) Close() {
	a.storage.Close()
}
