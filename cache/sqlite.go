package cache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLite is a persistent cache backed by a SQLite database. It implements
// the same get/set/stats contract as Memory so mapping results survive
// process restarts.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.RWMutex

	hits   int64
	misses int64
	sets   int64
}

// NewSQLite opens (or creates) a SQLite-backed cache at the given path.
func NewSQLite(dbPath string, ttl time.Duration) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	c := &SQLite{db: db, ttl: ttl}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *SQLite) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS mapping_cache (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		expires_at DATETIME NOT NULL
	);
	`
	if _, err := c.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create mapping_cache table: %w", err)
	}
	return nil
}

// Get returns the cached value for a key. Expired rows are deleted lazily.
func (c *SQLite) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var value string
	var expiresAt time.Time
	err := c.db.QueryRow(
		"SELECT value, expires_at FROM mapping_cache WHERE key = ?",
		keyPrefix+key,
	).Scan(&value, &expiresAt)

	if err == sql.ErrNoRows {
		c.misses++
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Msg("cache query failed")
		c.misses++
		return nil, false
	}
	if time.Now().After(expiresAt) {
		if _, err := c.db.Exec("DELETE FROM mapping_cache WHERE key = ?", keyPrefix+key); err != nil {
			log.Warn().Err(err).Msg("failed to delete expired cache row")
		}
		c.misses++
		return nil, false
	}

	c.hits++
	return []byte(value), true
}

// Set stores a value under a key with the configured TTL.
func (c *SQLite) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`
		INSERT INTO mapping_cache (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, keyPrefix+key, string(value), time.Now().Add(c.ttl))
	if err != nil {
		log.Warn().Err(err).Msg("failed to write cache row")
		return
	}
	c.sets++
}

// Clear removes all entries.
func (c *SQLite) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.db.Exec("DELETE FROM mapping_cache"); err != nil {
		log.Warn().Err(err).Msg("failed to clear cache")
	}
}

// Stats returns cache statistics. Size counts unexpired rows.
func (c *SQLite) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var size int
	if err := c.db.QueryRow(
		"SELECT COUNT(*) FROM mapping_cache WHERE expires_at > ?", time.Now(),
	).Scan(&size); err != nil {
		log.Warn().Err(err).Msg("failed to count cache rows")
	}

	s := Stats{
		Size:    size,
		Hits:    c.hits,
		Misses:  c.misses,
		Sets:    c.sets,
		Enabled: true,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// Close closes the underlying database.
func (c *SQLite) Close() error {
	return c.db.Close()
}
