package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/AlenaMolokova/randkey/internal/app/config"
	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_FileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	cfg := &config.Config{FileStoragePath: path, Workers: 2}

	a, err := NewApp(cfg)
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Handler)

	ctx := context.Background()
	_, err = a.Service.CreatePreset(ctx, models.PresetRequest{Name: "wifi", Letters: "8", Symbols: "2", Digits: "2"})
	require.NoError(t, err)

	// Пресет переживает перезапуск приложения
	b, err := NewApp(cfg)
	require.NoError(t, err)
	defer b.Close()

	r, err := b.Service.LoadGenerator(ctx, "wifi")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Workers())
	require.NoError(t, r.Generate())
	assert.Len(t, r.Key(), 12)
}
