package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenaMolokova/randkey/internal/app/generator"
	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidPreset = errors.New("invalid preset")

type PresetService struct {
	saver   models.PresetSaver
	getter  models.PresetGetter
	lister  models.PresetLister
	deleter models.PresetDeleter
	pinger  models.Pinger
	workers int
}

func NewPresetService(saver models.PresetSaver, getter models.PresetGetter, lister models.PresetLister, deleter models.PresetDeleter, pinger models.Pinger, workers int) *PresetService {
	return &PresetService{
		saver:   saver,
		getter:  getter,
		lister:  lister,
		deleter: deleter,
		pinger:  pinger,
		workers: workers,
	}
}

// SavePreset stores the configuration of r under name. An existing preset
// with that name keeps its ID and creation time.
func (s *PresetService) SavePreset(ctx context.Context, name string, r *generator.RandKey) (models.Preset, error) {
	if name == "" {
		return models.Preset{}, fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if err := r.Validate(); err != nil {
		return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	pool := r.Pool()
	preset := models.Preset{
		Name:    name,
		Letters: r.Count(generator.Alphabetic),
		Symbols: r.Count(generator.Punctuation),
		Digits:  r.Count(generator.Digit),
		Pool:    pool.Concat(),
		Unit:    r.Unit(),
	}
	if existing, ok := s.getter.Get(ctx, name); ok {
		preset.ID = existing.ID
		preset.CreatedAt = existing.CreatedAt
	} else {
		preset.ID = uuid.New().String()
		preset.CreatedAt = time.Now().UTC()
	}

	if err := s.saver.Save(ctx, preset); err != nil {
		logrus.WithError(err).WithField("name", name).Error("Error saving preset")
		return models.Preset{}, fmt.Errorf("error saving preset: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"name": name,
		"id":   preset.ID,
	}).Info("Preset saved")
	return preset, nil
}

// CreatePreset validates req by building a generator from it and stores
// the result. An empty pool means the default pools, an empty unit the
// default unit.
func (s *PresetService) CreatePreset(ctx context.Context, req models.PresetRequest) (models.Preset, error) {
	r, err := generator.New(req.Letters, req.Symbols, req.Digits)
	if err != nil {
		return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	if req.Pool != "" {
		p, err := generator.ParsePool(req.Pool)
		if err != nil {
			return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
		if err := r.SetPool(p); err != nil {
			return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}
	if req.Unit != "" {
		if err := r.SetUnit(req.Unit); err != nil {
			return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}
	return s.SavePreset(ctx, req.Name, r)
}

// LoadGenerator builds a ready-to-use generator from the named preset.
func (s *PresetService) LoadGenerator(ctx context.Context, name string) (*generator.RandKey, error) {
	p, err := s.GetPreset(ctx, name)
	if err != nil {
		return nil, err
	}

	r, err := generator.New(p.Letters, p.Symbols, p.Digits)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	pool, err := generator.ParsePool(p.Pool)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	if err := r.SetPool(pool); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	if err := r.SetUnit(p.Unit); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	r.SetWorkers(s.workers)

	logrus.WithField("name", name).Debug("Generator loaded from preset")
	return r, nil
}

func (s *PresetService) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	p, ok := s.getter.Get(ctx, name)
	if !ok {
		return models.Preset{}, fmt.Errorf("%w: %s", models.ErrPresetNotFound, name)
	}
	return p, nil
}

func (s *PresetService) ListPresets(ctx context.Context) ([]models.Preset, error) {
	presets, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing presets: %w", err)
	}
	return presets, nil
}

func (s *PresetService) DeletePreset(ctx context.Context, name string) error {
	deleted, err := s.deleter.Delete(ctx, name)
	if err != nil {
		logrus.WithError(err).WithField("name", name).Error("Failed to delete preset")
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", models.ErrPresetNotFound, name)
	}
	logrus.WithField("name", name).Info("Preset deleted")
	return nil
}

func (s *PresetService) Ping(ctx context.Context) error {
	return s.pinger.Ping(ctx)
}
