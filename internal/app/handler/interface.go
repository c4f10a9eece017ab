package handler

import "net/http"

// Routes is what the router needs to serve the preset API.
type Routes interface {
	HandleCreatePreset(w http.ResponseWriter, r *http.Request)
	HandleListPresets(w http.ResponseWriter, r *http.Request)
	HandleGetPreset(w http.ResponseWriter, r *http.Request)
	HandleDeletePreset(w http.ResponseWriter, r *http.Request)
	HandleDefaultPool(w http.ResponseWriter, r *http.Request)
	HandlePing(w http.ResponseWriter, r *http.Request)
}

var _ Routes = (*PresetHandler)(nil)
