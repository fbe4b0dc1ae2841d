package session

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/xaenox/gallery-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStore struct {
	db *sql.DB
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

	store := &PostgresStore{db: db}

	// Initialize database schema
	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return store, nil
}

// DB exposes the underlying pool so the catalog store can share it.
func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStore) LoadProfile(ctx context.Context, key Key) (*models.UserProfile, error) {
	query := `
		SELECT language, painting_id, painting_title, painting_author,
		       painting_year, painting_style, painting_technique
		FROM user_profiles
		WHERE conversation_id = $1 AND user_id = $2`

	profile := &models.UserProfile{}
	err := s.db.QueryRowContext(ctx, query, key.ConversationID, key.UserID).Scan(
		&profile.Language,
		&profile.PaintingID,
		&profile.PaintingTitle,
		&profile.PaintingAuthor,
		&profile.PaintingYear,
		&profile.PaintingStyle,
		&profile.PaintingTechnique,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewUserProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %v", err)
	}
	return profile, nil
}

func (s *PostgresStore) SaveProfile(ctx context.Context, key Key, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (conversation_id, user_id, language, painting_id,
		       painting_title, painting_author, painting_year, painting_style,
		       painting_technique, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (conversation_id, user_id) DO UPDATE SET
		       language = EXCLUDED.language,
		       painting_id = EXCLUDED.painting_id,
		       painting_title = EXCLUDED.painting_title,
		       painting_author = EXCLUDED.painting_author,
		       painting_year = EXCLUDED.painting_year,
		       painting_style = EXCLUDED.painting_style,
		       painting_technique = EXCLUDED.painting_technique,
		       updated_at = NOW()`

	_, err := s.db.ExecContext(ctx, query,
		key.ConversationID,
		key.UserID,
		profile.Language,
		profile.PaintingID,
		profile.PaintingTitle,
		profile.PaintingAuthor,
		profile.PaintingYear,
		profile.PaintingStyle,
		profile.PaintingTechnique,
	)
	if err != nil {
		return fmt.Errorf("error saving profile: %v", err)
	}
	return nil
}

func (s *PostgresStore) LoadConversationData(ctx context.Context, key Key) (*models.ConversationData, error) {
	query := `
		SELECT data
		FROM conversation_data
		WHERE conversation_id = $1 AND user_id = $2`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, key.ConversationID, key.UserID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.ConversationData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading conversation data: %v", err)
	}

	data := &models.ConversationData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("error decoding conversation data: %v", err)
	}
	return data, nil
}

func (s *PostgresStore) SaveConversationData(ctx context.Context, key Key, data *models.ConversationData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding conversation data: %v", err)
	}

	query := `
		INSERT INTO conversation_data (conversation_id, user_id, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (conversation_id, user_id) DO UPDATE SET
		       data = EXCLUDED.data,
		       updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, key.ConversationID, key.UserID, raw); err != nil {
		return fmt.Errorf("error saving conversation data: %v", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
