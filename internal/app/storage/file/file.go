package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/AlenaMolokova/randkey/internal/app/models"
)

// FileStorage хранит пресеты генератора в JSON-файле и держит их копию
// в памяти. Каждое изменение сразу записывается на диск через временный
// файл и переименование.
type FileStorage struct {
	filePath  string
	presets   map[string]models.Preset
	mu        sync.RWMutex
	isDirty   bool
	flushLock sync.Mutex
}

// NewFileStorage создаёт файловое хранилище. Если файл существует,
// пресеты загружаются из него; пустой или отсутствующий файл даёт пустое
// хранилище.
func NewFileStorage(filePath string) (*FileStorage, error) {
	fs := &FileStorage{
		filePath: filePath,
		presets:  make(map[string]models.Preset),
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fs, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []models.Preset
	if err := json.NewDecoder(file).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for _, entry := range entries {
		fs.presets[entry.Name] = entry
	}

	return fs, nil
}

// Save добавляет пресет или заменяет пресет с тем же именем.
// Если запись на диск не удалась, прежнее состояние восстанавливается.
func (fs *FileStorage) Save(ctx context.Context, preset models.Preset) error {
	fs.mu.Lock()
	prev, existed := fs.presets[preset.Name]
	fs.presets[preset.Name] = preset
	fs.isDirty = true
	fs.mu.Unlock()

	if err := fs.flush(); err != nil {
		fs.mu.Lock()
		if existed {
			fs.presets[preset.Name] = prev
		} else {
			delete(fs.presets, preset.Name)
		}
		fs.mu.Unlock()
		return err
	}
	return nil
}

func (fs *FileStorage) Get(ctx context.Context, name string) (models.Preset, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p, ok := fs.presets[name]
	return p, ok
}

// List возвращает все пресеты, отсортированные по имени.
func (fs *FileStorage) List(ctx context.Context) ([]models.Preset, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	result := make([]models.Preset, 0, len(fs.presets))
	for _, p := range fs.presets {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b models.Preset) int { return strings.Compare(a.Name, b.Name) })
	return result, nil
}

// Delete удаляет пресет. Возвращает false, если пресета не было.
func (fs *FileStorage) Delete(ctx context.Context, name string) (bool, error) {
	fs.mu.Lock()
	if _, ok := fs.presets[name]; !ok {
		fs.mu.Unlock()
		return false, nil
	}
	prev := fs.presets[name]
	delete(fs.presets, name)
	fs.isDirty = true
	fs.mu.Unlock()

	if err := fs.flush(); err != nil {
		fs.mu.Lock()
		fs.presets[name] = prev
		fs.mu.Unlock()
		return false, err
	}
	return true, nil
}

func (fs *FileStorage) Ping(ctx context.Context) error {
	return fmt.Errorf("file storage: %w", models.ErrPingNotSupported)
}

func (fs *FileStorage) flush() error {
	fs.flushLock.Lock()
	defer fs.flushLock.Unlock()

	fs.mu.RLock()
	dirty := fs.isDirty
	fs.mu.RUnlock()

	if !dirty {
		return nil
	}

	return fs.saveToFile()
}

func (fs *FileStorage) saveToFile() error {
	tmpFile := fs.filePath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(file)

	entries, _ := fs.List(context.Background())

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err := os.Rename(tmpFile, fs.filePath); err != nil {
		os.Remove(tmpFile)
		return err
	}

	fs.mu.Lock()
	fs.isDirty = false
	fs.mu.Unlock()

	return nil
}
