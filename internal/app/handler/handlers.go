package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlenaMolokova/randkey/internal/app/generator"
	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/AlenaMolokova/randkey/internal/app/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CreateHandler struct {
	creator models.PresetCreator
}

type FetchHandler struct {
	fetcher models.PresetFetcher
	lister  models.PresetsLister
}

type DeleteHandler struct {
	remover models.PresetRemover
}

type PoolHandler struct{}

type PingHandler struct {
	pinger models.Pinger
}

// PresetHandler собирает обработчики всех маршрутов API пресетов.
type PresetHandler struct {
	create *CreateHandler
	fetch  *FetchHandler
	delete *DeleteHandler
	pool   *PoolHandler
	ping   *PingHandler
}

func NewCreateHandler(creator models.PresetCreator) *CreateHandler {
	return &CreateHandler{creator}
}

func NewFetchHandler(fetcher models.PresetFetcher, lister models.PresetsLister) *FetchHandler {
	return &FetchHandler{fetcher, lister}
}

func NewDeleteHandler(remover models.PresetRemover) *DeleteHandler {
	return &DeleteHandler{remover}
}

func NewPingHandler(pinger models.Pinger) *PingHandler {
	return &PingHandler{pinger}
}

func NewPresetHandler(creator models.PresetCreator, fetcher models.PresetFetcher, lister models.PresetsLister, remover models.PresetRemover, pinger models.Pinger) *PresetHandler {
	return &PresetHandler{
		create: NewCreateHandler(creator),
		fetch:  NewFetchHandler(fetcher, lister),
		delete: NewDeleteHandler(remover),
		pool:   &PoolHandler{},
		ping:   NewPingHandler(pinger),
	}
}

func (h *CreateHandler) HandleCreatePreset(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling create preset request")
	ctx := r.Context()

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "Empty request body")
		return
	}
	defer r.Body.Close()

	var req models.PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Error("Invalid JSON format")
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name cannot be empty")
		return
	}

	preset, err := h.creator.CreatePreset(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPreset) {
			logrus.WithError(err).WithField("name", req.Name).Warn("Invalid preset")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).Error("Failed to create preset")
		writeError(w, http.StatusInternalServerError, "Failed to create preset")
		return
	}

	writeJSON(w, http.StatusCreated, preset)
}

func (h *FetchHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling list presets request")

	presets, err := h.lister.ListPresets(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list presets")
		writeError(w, http.StatusInternalServerError, "Failed to list presets")
		return
	}
	if presets == nil {
		presets = []models.Preset{}
	}

	writeJSON(w, http.StatusOK, presets)
}

func (h *FetchHandler) HandleGetPreset(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling get preset request")
	name := mux.Vars(r)["name"]

	preset, err := h.fetcher.GetPreset(r.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrPresetNotFound) {
			logrus.WithField("name", name).Warn("Preset not found")
			writeError(w, http.StatusNotFound, "Preset not found")
			return
		}
		logrus.WithError(err).Error("Failed to get preset")
		writeError(w, http.StatusInternalServerError, "Failed to get preset")
		return
	}

	writeJSON(w, http.StatusOK, preset)
}

func (h *DeleteHandler) HandleDeletePreset(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling delete preset request")
	name := mux.Vars(r)["name"]

	if err := h.remover.DeletePreset(r.Context(), name); err != nil {
		if errors.Is(err, models.ErrPresetNotFound) {
			writeError(w, http.StatusNotFound, "Preset not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete preset")
		writeError(w, http.StatusInternalServerError, "Failed to delete preset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PoolHandler) HandleDefaultPool(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling default pool request")
	writeJSON(w, http.StatusOK, newPoolResponse(generator.DefaultPool()))
}

func (h *PingHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	logrus.Info("Handling ping request")

	err := h.pinger.Ping(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrPingNotSupported) {
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("Storage does not require database connection")); err != nil {
				logrus.WithError(err).Error("Failed to write response")
			}
			return
		}
		logrus.WithError(err).Error("Database ping failed")
		http.Error(w, "Database connection error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Database connection is OK")); err != nil {
		logrus.WithError(err).Error("Failed to write response")
	}
}

func (h *PresetHandler) HandleCreatePreset(w http.ResponseWriter, r *http.Request) {
	h.create.HandleCreatePreset(w, r)
}

func (h *PresetHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	h.fetch.HandleListPresets(w, r)
}

func (h *PresetHandler) HandleGetPreset(w http.ResponseWriter, r *http.Request) {
	h.fetch.HandleGetPreset(w, r)
}

func (h *PresetHandler) HandleDeletePreset(w http.ResponseWriter, r *http.Request) {
	h.delete.HandleDeletePreset(w, r)
}

func (h *PresetHandler) HandleDefaultPool(w http.ResponseWriter, r *http.Request) {
	h.pool.HandleDefaultPool(w, r)
}

func (h *PresetHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	h.ping.HandlePing(w, r)
}
