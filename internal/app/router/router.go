package router

import (
	"net/http"

	"github.com/AlenaMolokova/randkey/internal/app/handler"
	"github.com/AlenaMolokova/randkey/internal/app/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	handler handler.Routes
}

func NewRouter(handler handler.Routes) *Router {
	return &Router{
		handler: handler,
	}
}

func (r *Router) InitRoutes() *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.GzipMiddleware)
	router.Use(middleware.LoggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/presets", r.handler.HandleCreatePreset).Methods(http.MethodPost).Name("create_preset")
	api.HandleFunc("/presets", r.handler.HandleListPresets).Methods(http.MethodGet).Name("list_presets")
	api.HandleFunc("/presets/{name}", r.handler.HandleGetPreset).Methods(http.MethodGet).Name("get_preset")
	api.HandleFunc("/presets/{name}", r.handler.HandleDeletePreset).Methods(http.MethodDelete).Name("delete_preset")
	api.HandleFunc("/pools/default", r.handler.HandleDefaultPool).Methods(http.MethodGet).Name("default_pool")
	router.HandleFunc("/ping", r.handler.HandlePing).Methods(http.MethodGet).Name("ping")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{
			"uri":    r.RequestURI,
			"method": r.Method,
		}).Info("Route not found")
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{
			"uri":    r.RequestURI,
			"method": r.Method,
		}).Info("Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}
