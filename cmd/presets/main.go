package main

import (
	"net/http"

	"github.com/AlenaMolokova/randkey/internal/app"
	"github.com/AlenaMolokova/randkey/internal/app/config"
	"github.com/AlenaMolokova/randkey/internal/app/router"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.NewConfig()
	cfg.SetupLogger()

	application, err := app.NewApp(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Не удалось инициализировать приложение")
	}
	defer application.Close()

	presetRouter := router.NewRouter(application.Handler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: presetRouter.InitRoutes(),
	}
	logrus.WithFields(logrus.Fields{
		"address": cfg.ServerAddress,
		"workers": cfg.Workers,
	}).Info("Starting server")

	if err := server.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}
