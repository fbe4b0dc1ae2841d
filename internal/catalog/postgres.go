package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/xaenox/gallery-bot/internal/models"
)

// PostgresStore reads the paintings collection. The table is reference data
// maintained outside this system; the bot never writes to it.
type PostgresStore struct {
	db *sql.DB
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewPostgresStore(config DatabaseConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection so the catalog and
// session stores can share one pool.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountTagMatches(ctx context.Context, paintID int, tags []string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM paintings
		WHERE paintid = $1 AND tag = ANY($2)`

	var count int
	if err := s.db.QueryRowContext(ctx, query, paintID, pq.Array(tags)).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting tag matches for %d: %v", models.ErrStoreQuery, paintID, err)
	}
	return count, nil
}

func (s *PostgresStore) GetRecord(ctx context.Context, paintID int) (*models.CatalogRecord, error) {
	query := `
		SELECT paintid, title, author, year, style, technique, url
		FROM paintings
		WHERE paintid = $1
		LIMIT 1`

	record := &models.CatalogRecord{}
	err := s.db.QueryRowContext(ctx, query, paintID).Scan(
		&record.PaintID,
		&record.Title,
		&record.Author,
		&record.Year,
		&record.Style,
		&record.Technique,
		&record.URL,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching record %d: %v", models.ErrStoreQuery, paintID, err)
	}
	return record, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
