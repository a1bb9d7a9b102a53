package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/models"
	"github.com/songzhibin97/rankfi/internal/table"
)

// dialect 各数据库之间的差异
type dialect struct {
	placeholder func(n int) string
	createTable string
}

var dialects = map[string]dialect{
	"postgres": {
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		createTable: `CREATE TABLE IF NOT EXISTS exchanges (
			id SERIAL PRIMARY KEY,
			position INT NOT NULL,
			slug VARCHAR(100) UNIQUE NOT NULL,
			app_name VARCHAR(100) NOT NULL,
			record JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
	},
	"sqlite": {
		placeholder: func(int) string { return "?" },
		createTable: `CREATE TABLE IF NOT EXISTS exchanges (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			app_name TEXT NOT NULL,
			record TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	"mysql": {
		placeholder: func(int) string { return "?" },
		createTable: `CREATE TABLE IF NOT EXISTS exchanges (
			id INT AUTO_INCREMENT PRIMARY KEY,
			position INT NOT NULL,
			slug VARCHAR(100) UNIQUE NOT NULL,
			app_name VARCHAR(100) NOT NULL,
			record JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// Drivers lists the supported database/sql driver names.
func Drivers() []string {
	return []string{"postgres", "sqlite", "mysql"}
}

// SQLStorage keeps one JSON record per exchange in the exchanges table.
// Catalog reads are ordered by position.
type SQLStorage struct {
	db      *sql.DB
	driver  string
	dialect dialect
}

func NewPostgresStorage(connStr string) (*SQLStorage, error) {
	return NewSQLStorage("postgres", connStr)
}

func NewSQLStorage(driver, dsn string) (*SQLStorage, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLStorage{db: db, driver: driver, dialect: d}

	err = s.initTables()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return s, nil
}

func (s *SQLStorage) Name() string {
	return s.driver
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

// GetAllExchanges implements data.ExchangeSource
func (s *SQLStorage) GetAllExchanges(ctx context.Context) ([]models.Exchange, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM exchanges ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []models.Exchange
	for rows.Next() {
		e, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchanges: %w", err)
	}

	return exchanges, nil
}

// GetExchangeBySlug implements data.ExchangeSource
func (s *SQLStorage) GetExchangeBySlug(ctx context.Context, slug string) (*models.Exchange, error) {
	query := `SELECT record FROM exchanges WHERE slug = ` + s.dialect.placeholder(1)

	e, err := scanRecord(s.db.QueryRowContext(ctx, query, strings.ToLower(slug)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", data.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveExchanges replaces the stored dataset, keeping the slice order as the
// read order.
func (s *SQLStorage) SaveExchanges(ctx context.Context, exchanges []models.Exchange) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM exchanges`); err != nil {
		return fmt.Errorf("failed to clear exchanges: %w", err)
	}

	p := s.dialect.placeholder
	query := fmt.Sprintf(`INSERT INTO exchanges (position, slug, app_name, record) VALUES (%s, %s, %s, %s)`,
		p(1), p(2), p(3), p(4))

	for i := range exchanges {
		record, err := json.Marshal(&exchanges[i])
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", exchanges[i].AppName, err)
		}

		// jsonb 列需要文本参数, []byte 会被当作 bytea
		_, err = tx.ExecContext(ctx, query, i, table.Slug(exchanges[i].AppName), exchanges[i].AppName, string(record))
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", exchanges[i].AppName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit exchanges: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (models.Exchange, error) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Exchange{}, err
		}
		return models.Exchange{}, fmt.Errorf("failed to scan exchange: %w", err)
	}

	var e models.Exchange
	if err := json.Unmarshal(raw, &e); err != nil {
		return models.Exchange{}, fmt.Errorf("failed to decode exchange record: %w", err)
	}
	return e, nil
}

func (s *SQLStorage) initTables() error {
	queries := []string{
		s.dialect.createTable,
	}

	for _, query := range queries {
		_, err := s.db.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}
