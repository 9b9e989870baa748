package store

import (
	"errors"

	"mentorhub-chat/models"
)

var (
	// ErrNotFound reports a missing user or dashboard record.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a duplicate username on creation.
	ErrConflict = errors.New("already exists")
	// ErrUnavailable reports that the backing store rejected the
	// operation. It is never swallowed by the store itself.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the single persistence contract. The durable and the
// in-memory implementations behave identically from the caller's
// perspective; which one is active is decided once at startup and no
// caller branches on it.
type Store interface {
	// AppendMessage assigns an id and a server-side timestamp,
	// persists the message and returns the stored record.
	AppendMessage(conversationID, senderID, content string) (models.Message, error)

	// History returns up to the HistoryLimit most recent messages of
	// a conversation, ascending by creation time.
	History(conversationID string) ([]models.Message, error)

	FindUser(username string) (models.User, error)
	CreateUser(username, passwordHash string) (models.User, error)

	Dashboard() (models.Dashboard, error)
	SaveDashboard(dash models.Dashboard) error

	Close() error
}
