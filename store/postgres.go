package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"

	"mentorhub-chat/models"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

// Postgres is the durable store.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects, verifies the connection and runs the startup
// DDL. A failure here is the caller's cue to fall back to the
// in-memory store.
func OpenPostgres(connStr string) (*Postgres, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	s := &Postgres{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("database connection established")
	return s, nil
}

func (s *Postgres) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			id VARCHAR(36) PRIMARY KEY,
			conversation_id VARCHAR(255) NOT NULL,
			sender_id VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("messages table creation error: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_messages_conversation
		ON messages (conversation_id, created_at)
	`)
	if err != nil {
		return fmt.Errorf("messages index creation error: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(255) PRIMARY KEY,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("users table creation error: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS dashboard (
			id SMALLINT PRIMARY KEY,
			payload JSONB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("dashboard table creation error: %w", err)
	}

	return nil
}

func (s *Postgres) AppendMessage(conversationID, senderID, content string) (models.Message, error) {
	msg := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO messages (id, conversation_id, sender_id, content, created_at) VALUES ($1, $2, $3, $4, $5)",
		msg.ID, msg.ConversationID, msg.SenderID, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return msg, nil
}

func (s *Postgres) History(conversationID string) ([]models.Message, error) {
	rows, err := s.db.Query(`
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, conversationID, models.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, models.HistoryLimit)
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// The query fetches newest-first so the limit keeps the most
	// recent messages; callers want them oldest-first.
	return lo.Reverse(messages), nil
}

func (s *Postgres) FindUser(username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		"SELECT username, password_hash FROM users WHERE username = $1",
		username,
	).Scan(&user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func (s *Postgres) CreateUser(username, passwordHash string) (models.User, error) {
	_, err := s.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES ($1, $2)",
		username, passwordHash,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.User{}, ErrConflict
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return models.User{Username: username, PasswordHash: passwordHash}, nil
}

func (s *Postgres) Dashboard() (models.Dashboard, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM dashboard WHERE id = 1").Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dashboard{}, ErrNotFound
	}
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var dash models.Dashboard
	if err := json.Unmarshal(payload, &dash); err != nil {
		return models.Dashboard{}, fmt.Errorf("corrupt dashboard payload: %w", err)
	}
	return dash, nil
}

func (s *Postgres) SaveDashboard(dash models.Dashboard) error {
	payload, err := json.Marshal(dash)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO dashboard (id, payload) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
	`, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}
