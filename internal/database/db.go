package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFileName = "ies_diagnostics.db"

// DB represents the database connection with pooling
type DB struct {
	*sql.DB
	pool     *ConnectionPool
	prepared map[string]*sql.Stmt
	mutex    sync.RWMutex
}

// ConnectionPool manages database connection pooling
type ConnectionPool struct {
	db           *sql.DB
	maxOpenConns int
	maxIdleConns int
	maxLifetime  time.Duration
}

// NewConnectionPool applies the pool limits to db
func NewConnectionPool(db *sql.DB, maxOpen, maxIdle int, maxLifetime time.Duration) *ConnectionPool {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	return &ConnectionPool{
		db:           db,
		maxOpenConns: maxOpen,
		maxIdleConns: maxIdle,
		maxLifetime:  maxLifetime,
	}
}

// GetStats returns connection pool statistics
func (cp *ConnectionPool) GetStats() map[string]interface{} {
	stats := cp.db.Stats()

	return map[string]interface{}{
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"max_open_connections": cp.maxOpenConns,
		"max_idle_connections": cp.maxIdleConns,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
}

// NewDB opens (creating if needed) the assessment database under dataDir,
// runs migrations and prepares statements.
func NewDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite serializes writers; a small pool avoids SQLITE_BUSY churn.
	pool := NewConnectionPool(db, 4, 2, 5*time.Minute)

	database := &DB{
		DB:       db,
		pool:     pool,
		prepared: make(map[string]*sql.Stmt),
	}

	if err := database.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := database.initPreparedStatements(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize prepared statements: %w", err)
	}

	slog.Info("Database initialized",
		"path", dbPath,
		"max_open_conns", pool.maxOpenConns,
		"max_idle_conns", pool.maxIdleConns)

	return database, nil
}

func (db *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			participant_name TEXT NOT NULL,
			facilitator_id TEXT NOT NULL DEFAULT '',
			total_score REAL NOT NULL,
			total_percentage REAL NOT NULL,
			created_at DATETIME NOT NULL
		)`,

		// dimension holds the slug for known dimensions, the raw name otherwise
		`CREATE TABLE IF NOT EXISTS assessment_scores (
			assessment_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			dimension TEXT NOT NULL,
			score REAL NOT NULL,
			max_score REAL NOT NULL,
			percentage REAL NOT NULL,
			PRIMARY KEY (assessment_id, position),
			FOREIGN KEY (assessment_id) REFERENCES assessments(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_assessments_facilitator ON assessments(facilitator_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

func (db *DB) initPreparedStatements() error {
	statements := map[string]string{
		"insert_assessment": `INSERT INTO assessments (id, participant_name, facilitator_id, total_score, total_percentage, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,

		"insert_score": `INSERT INTO assessment_scores (assessment_id, position, dimension, score, max_score, percentage)
			VALUES (?, ?, ?, ?, ?, ?)`,

		"get_assessment": `SELECT id, participant_name, facilitator_id, total_score, total_percentage, created_at
			FROM assessments WHERE id = ?`,

		"get_scores": `SELECT dimension, score, max_score, percentage
			FROM assessment_scores WHERE assessment_id = ? ORDER BY position ASC`,

		"delete_scores": `DELETE FROM assessment_scores WHERE assessment_id = ?`,

		"delete_assessment": `DELETE FROM assessments WHERE id = ?`,
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, query := range statements {
		stmt, err := db.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement %s: %w", name, err)
		}
		db.prepared[name] = stmt

		slog.Debug("Prepared statement initialized", "name", name)
	}

	return nil
}

// GetPreparedStatement retrieves a prepared statement
func (db *DB) GetPreparedStatement(name string) (*sql.Stmt, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	stmt, exists := db.prepared[name]
	if !exists {
		return nil, fmt.Errorf("prepared statement %s not found", name)
	}

	return stmt, nil
}

// GetPoolStats returns database connection pool statistics
func (db *DB) GetPoolStats() map[string]interface{} {
	return db.pool.GetStats()
}

// Close closes the prepared statements and the connection
func (db *DB) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, stmt := range db.prepared {
		if err := stmt.Close(); err != nil {
			slog.Warn("Failed to close prepared statement", "name", name, "error", err)
		}
	}
	db.prepared = make(map[string]*sql.Stmt)

	return db.DB.Close()
}
