package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/AlenaMolokova/randkey/internal/app/service"
	"github.com/AlenaMolokova/randkey/internal/app/storage/memory"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *PresetHandler {
	storage := memory.NewMemoryStorage()
	s := service.NewPresetService(storage, storage, storage, storage, storage, 0)
	return NewPresetHandler(s, s, s, s, s)
}

type brokenPinger struct {
	err error
}

func (p brokenPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHandleCreatePreset(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"created", `{"name":"wifi","letters":"10","symbols":"2","digits":"3"}`, http.StatusCreated},
		{"custom pool", `{"name":"pin","letters":"0","symbols":"0","digits":"6","pool":"0123456789","unit":"2"}`, http.StatusCreated},
		{"invalid json", `{"name":`, http.StatusBadRequest},
		{"empty name", `{"letters":"1","symbols":"1","digits":"1"}`, http.StatusBadRequest},
		{"invalid number", `{"name":"x","letters":"-1","symbols":"1","digits":"1"}`, http.StatusBadRequest},
		{"missing characters", `{"name":"x","letters":"1","symbols":"0","digits":"0","pool":"123"}`, http.StatusBadRequest},
		{"invalid unit", `{"name":"x","letters":"1","symbols":"0","digits":"0","unit":"0"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			req := httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.HandleCreatePreset(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusCreated {
				var p models.Preset
				require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
				assert.NotEmpty(t, p.ID)
				assert.NotEmpty(t, p.Pool)
			}
		})
	}
}

func TestHandleGetPreset(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(`{"name":"wifi","letters":"10","symbols":"2","digits":"3"}`))
	w := httptest.NewRecorder()
	h.HandleCreatePreset(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/presets/wifi", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "wifi"})
	w = httptest.NewRecorder()
	h.HandleGetPreset(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var p models.Preset
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "wifi", p.Name)
	assert.Equal(t, "10", p.Letters)

	req = httptest.NewRequest(http.MethodGet, "/api/presets/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "missing"})
	w = httptest.NewRecorder()
	h.HandleGetPreset(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListPresets(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	w := httptest.NewRecorder()
	h.HandleListPresets(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, name := range []string{"b", "a"} {
		body := `{"name":"` + name + `","letters":"1","symbols":"1","digits":"1"}`
		w = httptest.NewRecorder()
		h.HandleCreatePreset(w, httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = httptest.NewRecorder()
	h.HandleListPresets(w, httptest.NewRequest(http.MethodGet, "/api/presets", nil))
	var presets []models.Preset
	require.NoError(t, json.NewDecoder(w.Body).Decode(&presets))
	require.Len(t, presets, 2)
	assert.Equal(t, "a", presets[0].Name)
	assert.Equal(t, "b", presets[1].Name)
}

func TestHandleDeletePreset(t *testing.T) {
	h := newTestHandler()
	w := httptest.NewRecorder()
	h.HandleCreatePreset(w, httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(`{"name":"wifi","letters":"1","symbols":"1","digits":"1"}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	del := func() int {
		req := httptest.NewRequest(http.MethodDelete, "/api/presets/wifi", nil)
		req = mux.SetURLVars(req, map[string]string{"name": "wifi"})
		w := httptest.NewRecorder()
		h.HandleDeletePreset(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, del())
	assert.Equal(t, http.StatusNotFound, del())
}

func TestHandleDefaultPool(t *testing.T) {
	h := newTestHandler()
	w := httptest.NewRecorder()
	h.HandleDefaultPool(w, httptest.NewRequest(http.MethodGet, "/api/pools/default", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.PoolResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Alphabetic, 52)
	assert.Len(t, resp.Digit, 10)
	assert.Contains(t, resp.Punctuation, "!")
	assert.Contains(t, resp.Alphabetic, "Z")
}

func TestHandlePing(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ok", nil, http.StatusOK},
		{"no database", models.ErrPingNotSupported, http.StatusOK},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPingHandler(brokenPinger{tt.err})
			w := httptest.NewRecorder()
			h.HandlePing(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
