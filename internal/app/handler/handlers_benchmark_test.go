package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func BenchmarkHandleCreatePreset(b *testing.B) {
	h := newTestHandler()
	body := `{"name":"wifi","letters":"16","symbols":"4","digits":"4"}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(body))
		rr := httptest.NewRecorder()
		h.HandleCreatePreset(rr, req)
	}
}

func BenchmarkHandleGetPreset(b *testing.B) {
	h := newTestHandler()
	rr := httptest.NewRecorder()
	h.HandleCreatePreset(rr, httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(`{"name":"wifi","letters":"16","symbols":"4","digits":"4"}`)))
	if rr.Code != http.StatusCreated {
		b.Fatalf("unexpected status %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/presets/wifi", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "wifi"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.HandleGetPreset(rr, req)
	}
}

func BenchmarkHandleDefaultPool(b *testing.B) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/pools/default", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.HandleDefaultPool(rr, req)
	}
}
