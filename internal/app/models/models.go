package models

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPresetNotFound   = errors.New("preset not found")
	ErrPingNotSupported = errors.New("storage does not support database connection check")
)

// Preset is a named generator configuration. It never carries a key.
type Preset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Letters   string    `json:"letters"`
	Symbols   string    `json:"symbols"`
	Digits    string    `json:"digits"`
	Pool      string    `json:"pool"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

type PresetRequest struct {
	Name    string `json:"name"`
	Letters string `json:"letters"`
	Symbols string `json:"symbols"`
	Digits  string `json:"digits"`
	Pool    string `json:"pool,omitempty"`
	Unit    string `json:"unit,omitempty"`
}

type PoolResponse struct {
	Alphabetic  []string `json:"alphabetic"`
	Punctuation []string `json:"punctuation"`
	Digit       []string `json:"digit"`
}

type PresetSaver interface {
	Save(ctx context.Context, preset Preset) error
}

type PresetGetter interface {
	Get(ctx context.Context, name string) (Preset, bool)
}

type PresetLister interface {
	List(ctx context.Context) ([]Preset, error)
}

type PresetDeleter interface {
	Delete(ctx context.Context, name string) (bool, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type PresetCreator interface {
	CreatePreset(ctx context.Context, req PresetRequest) (Preset, error)
}

type PresetFetcher interface {
	GetPreset(ctx context.Context, name string) (Preset, error)
}

type PresetsLister interface {
	ListPresets(ctx context.Context) ([]Preset, error)
}

type PresetRemover interface {
	DeletePreset(ctx context.Context, name string) error
}
