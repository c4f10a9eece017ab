package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlenaMolokova/randkey/internal/app/generator"
	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

func newPoolResponse(p generator.Pool) models.PoolResponse {
	return models.PoolResponse{
		Alphabetic:  p.Strings(generator.Alphabetic),
		Punctuation: p.Strings(generator.Punctuation),
		Digit:       p.Strings(generator.Digit),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
