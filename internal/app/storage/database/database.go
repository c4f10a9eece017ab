package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlenaMolokova/randkey/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PgxIface is the part of *pgxpool.Pool the storage uses.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type DatabaseStorage struct {
	pool PgxIface
}

func NewPostgresStorage(dsn string) (*DatabaseStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := NewDatabaseStorage(pool)
	if err := db.Init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

func NewDatabaseStorage(pool PgxIface) *DatabaseStorage {
	return &DatabaseStorage{pool: pool}
}

func (db *DatabaseStorage) Init(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (db *DatabaseStorage) Save(ctx context.Context, p models.Preset) error {
	_, err := db.pool.Exec(ctx, upsertPresetQuery, p.ID, p.Name, p.Letters, p.Symbols, p.Digits, p.Pool, p.Unit, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

func (db *DatabaseStorage) Get(ctx context.Context, name string) (models.Preset, bool) {
	var p models.Preset
	err := db.pool.QueryRow(ctx, selectByNameQuery, name).
		Scan(&p.ID, &p.Name, &p.Letters, &p.Symbols, &p.Digits, &p.Pool, &p.Unit, &p.CreatedAt)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logrus.WithError(err).WithField("name", name).Error("Failed to get preset")
		}
		return models.Preset{}, false
	}
	return p, true
}

func (db *DatabaseStorage) List(ctx context.Context) ([]models.Preset, error) {
	rows, err := db.pool.Query(ctx, selectAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query presets: %w", err)
	}
	defer rows.Close()

	presets := []models.Preset{}
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Letters, &p.Symbols, &p.Digits, &p.Pool, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return presets, nil
}

func (db *DatabaseStorage) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := db.pool.Exec(ctx, deleteByNameQuery, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete preset: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (db *DatabaseStorage) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DatabaseStorage) Close() {
	db.pool.Close()
}
