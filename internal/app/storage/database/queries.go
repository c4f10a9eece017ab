package database

const (
	createTableQuery = `
        CREATE TABLE IF NOT EXISTS presets (
            id VARCHAR(36) PRIMARY KEY,
            name VARCHAR(255) NOT NULL UNIQUE,
            letters TEXT NOT NULL,
            symbols TEXT NOT NULL,
            digits TEXT NOT NULL,
            pool TEXT NOT NULL,
            unit TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `
	upsertPresetQuery = `
        INSERT INTO presets (id, name, letters, symbols, digits, pool, unit, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (name) DO UPDATE
        SET letters = EXCLUDED.letters,
            symbols = EXCLUDED.symbols,
            digits = EXCLUDED.digits,
            pool = EXCLUDED.pool,
            unit = EXCLUDED.unit
    `
	selectByNameQuery = `
        SELECT id, name, letters, symbols, digits, pool, unit, created_at
        FROM presets
        WHERE name = $1
    `
	selectAllQuery = `
        SELECT id, name, letters, symbols, digits, pool, unit, created_at
        FROM presets
        ORDER BY name
    `
	deleteByNameQuery = `
        DELETE FROM presets
        WHERE name = $1
    `
)
