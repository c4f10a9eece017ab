package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/AlenaMolokova/randkey/internal/app/models"
)

type MemoryStorage struct {
	presets map[string]models.Preset
	mu      sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		presets: make(map[string]models.Preset),
	}
}

func (s *MemoryStorage) Save(ctx context.Context, preset models.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[preset.Name] = preset
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, name string) (models.Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[name]
	return p, ok
}

func (s *MemoryStorage) List(ctx context.Context) ([]models.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Preset, 0, len(s.presets))
	for _, p := range s.presets {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b models.Preset) int { return strings.Compare(a.Name, b.Name) })
	return result, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.presets[name]; !ok {
		return false, nil
	}
	delete(s.presets, name)
	return true, nil
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}
