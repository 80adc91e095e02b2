package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes.
const duplicateTable = "42P07"

var ErrNotFound = errors.New("url not found")

type Repository interface {
	// SaveURL stores url and returns its id. Saving a stored url returns the existing id.
	SaveURL(ctx context.Context, url string) (int64, error)
	GetURL(ctx context.Context, id int64) (string, error)
	Ping(ctx context.Context) error
	Close()
}

// OpenRepository connects to postgres, or falls back to memory when no database url is configured.
func OpenRepository(ctx context.Context, cfg Config, logger *log.Logger) (Repository, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, urls are kept in memory")
		return NewMemoryRepository(), nil
	}
	return ConnectDB(ctx, cfg.DatabaseURL, cfg.QueryTimeout, logger)
}

type Database struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	log     *log.Logger
}

func ConnectDB(ctx context.Context, databaseURL string, timeout time.Duration, logger *log.Logger) (*Database, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	db := &Database{pool: pool, timeout: timeout, log: logger}
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("DB connected successfully")
	if err := db.createTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

func (db *Database) createTable(ctx context.Context) error {
	sql := "CREATE TABLE urls (id BIGSERIAL PRIMARY KEY, url TEXT UNIQUE NOT NULL)"
	queryCtx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()
	_, err := db.pool.Exec(queryCtx, sql)
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		db.log.Info("table created", "table", "urls")
	case errors.As(err, &pgErr) && pgErr.Code == duplicateTable:
		db.log.Debug("table already exists", "table", "urls")
	default:
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (db *Database) GetURL(ctx context.Context, id int64) (string, error) {
	sql := "SELECT url FROM urls WHERE id = $1"
	queryCtx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()
	var url string
	err := db.pool.QueryRow(queryCtx, sql, id).Scan(&url)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get url %d: %w", id, err)
	}
	return url, nil
}

func (db *Database) SaveURL(ctx context.Context, url string) (int64, error) {
	// the no-op update makes RETURNING yield the existing row on conflict
	sql := "INSERT INTO urls (url) VALUES ($1) ON CONFLICT (url) DO UPDATE SET url = EXCLUDED.url RETURNING id"
	queryCtx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()
	var id int64
	if err := db.pool.QueryRow(queryCtx, sql, url).Scan(&id); err != nil {
		return 0, fmt.Errorf("save url: %w", err)
	}
	return id, nil
}

func (db *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()
	return db.pool.Ping(pingCtx)
}

func (db *Database) Close() {
	db.pool.Close()
}

type MemoryRepository struct {
	mu   sync.RWMutex
	urls []string
	ids  map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{ids: make(map[string]int64)}
}

func (m *MemoryRepository) SaveURL(_ context.Context, url string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[url]; ok {
		return id, nil
	}
	m.urls = append(m.urls, url)
	id := int64(len(m.urls))
	m.ids[url] = id
	return id, nil
}

func (m *MemoryRepository) GetURL(_ context.Context, id int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 1 || id > int64(len(m.urls)) {
		return "", ErrNotFound
	}
	return m.urls[id-1], nil
}

func (m *MemoryRepository) Ping(context.Context) error { return nil }

func (m *MemoryRepository) Close() {}
