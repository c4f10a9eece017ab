package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`    // флаг -a
	DatabaseDSN     string `env:"DATABASE_DSN"`      // флаг -d
	FileStoragePath string `env:"FILE_STORAGE_PATH"` // флаг -f
	LogLevel        string `env:"LOG_LEVEL"`         // флаг -l
	Unit            string `env:"RANDKEY_UNIT"`      // флаг -unit
	Workers         int    `env:"RANDKEY_WORKERS"`   // флаг -workers
}

// NewConfig читает конфигурацию из переменных окружения и флагов
// командной строки. Флаги имеют приоритет над окружением.
func NewConfig() *Config {
	cfg, err := Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("Не удалось загрузить конфигурацию")
	}
	return cfg
}

// Parse registers the flags on fs, parses args and applies the environment
// underneath them.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	Register(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := Apply(fs, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Register binds the config flags on fs. Call Apply after fs.Parse.
func Register(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ServerAddress, "a", "localhost:8080", "Адрес запуска HTTP-сервера")
	fs.StringVar(&cfg.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&cfg.FileStoragePath, "f", "", "Путь к файлу с пресетами")
	fs.StringVar(&cfg.LogLevel, "l", "info", "Уровень логирования")
	fs.StringVar(&cfg.Unit, "unit", "65535", "Максимальный размер части при генерации")
	fs.IntVar(&cfg.Workers, "workers", 0, "Число параллельных задач (0 - GOMAXPROCS)")
}

// Apply fills cfg from the environment, keeping values of flags that were
// set explicitly on fs.
func Apply(fs *flag.FlagSet, cfg *Config) error {
	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if fromEnv.ServerAddress != "" && !set["a"] {
		cfg.ServerAddress = fromEnv.ServerAddress
	}
	if fromEnv.DatabaseDSN != "" && !set["d"] {
		cfg.DatabaseDSN = fromEnv.DatabaseDSN
	}
	if fromEnv.FileStoragePath != "" && !set["f"] {
		cfg.FileStoragePath = fromEnv.FileStoragePath
	}
	if fromEnv.LogLevel != "" && !set["l"] {
		cfg.LogLevel = fromEnv.LogLevel
	}
	if fromEnv.Unit != "" && !set["unit"] {
		cfg.Unit = fromEnv.Unit
	}
	if fromEnv.Workers != 0 && !set["workers"] {
		cfg.Workers = fromEnv.Workers
	}
	return nil
}

// SetupLogger настраивает logrus так же, как во всех командах.
func (c *Config) SetupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithError(err).WithField("level", c.LogLevel).Warn("Неизвестный уровень логирования, используется info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
