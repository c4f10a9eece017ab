package storage

import (
	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/AlenaMolokova/randkey/internal/app/storage/database"
	"github.com/AlenaMolokova/randkey/internal/app/storage/file"
	"github.com/AlenaMolokova/randkey/internal/app/storage/memory"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	impl interface{}
}

// NewStorage выбирает хранилище пресетов: PostgreSQL, если задан DSN и
// удалось подключиться, затем файл, затем память.
func NewStorage(databaseDSN, fileStoragePath string) (*Storage, error) {
	var impl interface{}

	if databaseDSN != "" {
		dbStorage, err := database.NewPostgresStorage(databaseDSN)
		if err == nil {
			logrus.Info("Используется хранилище PostgreSQL")
			impl = dbStorage
		} else {
			logrus.WithError(err).Warn("Не удалось использовать PostgreSQL, переходим к следующему варианту")
		}
	}

	if impl == nil && fileStoragePath != "" {
		fileStorage, err := file.NewFileStorage(fileStoragePath)
		if err == nil {
			logrus.WithField("file", fileStoragePath).Info("Используется файловое хранилище")
			impl = fileStorage
		} else {
			logrus.WithError(err).Warn("Не удалось использовать файловое хранилище, переходим к памяти")
		}
	}

	if impl == nil {
		logrus.Info("Используется хранилище в памяти")
		impl = memory.NewMemoryStorage()
	}

	return &Storage{impl: impl}, nil
}

func (s *Storage) AsPresetSaver() models.PresetSaver {
	return s.impl.(models.PresetSaver)
}

func (s *Storage) AsPresetGetter() models.PresetGetter {
	return s.impl.(models.PresetGetter)
}

func (s *Storage) AsPresetLister() models.PresetLister {
	return s.impl.(models.PresetLister)
}

func (s *Storage) AsPresetDeleter() models.PresetDeleter {
	return s.impl.(models.PresetDeleter)
}

func (s *Storage) AsPinger() models.Pinger {
	return s.impl.(models.Pinger)
}

// Close releases the database pool when one is in use.
func (s *Storage) Close() {
	if db, ok := s.impl.(*database.DatabaseStorage); ok {
		db.Close()
	}
}
