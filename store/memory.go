package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mentorhub-chat/models"
)

// Memory is the process-local fallback used when the durable store is
// unreachable at startup. Its maps are private and every access goes
// through the Store contract, so callers get the same atomicity
// guarantees the durable store provides.
type Memory struct {
	mutex     sync.RWMutex
	messages  map[string][]models.Message
	users     map[string]models.User
	dashboard *models.Dashboard
}

func NewMemory() *Memory {
	return &Memory{
		messages: make(map[string][]models.Message),
		users:    make(map[string]models.User),
	}
}

func (m *Memory) AppendMessage(conversationID, senderID, content string) (models.Message, error) {
	msg := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}

	m.mutex.Lock()
	m.messages[conversationID] = append(m.messages[conversationID], msg)
	m.mutex.Unlock()

	return msg, nil
}

func (m *Memory) History(conversationID string) ([]models.Message, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	log := m.messages[conversationID]
	if len(log) > models.HistoryLimit {
		log = log[len(log)-models.HistoryLimit:]
	}

	// Appends are in creation order, so the tail is already the most
	// recent slice of the conversation, oldest first.
	out := make([]models.Message, len(log))
	copy(out, log)
	return out, nil
}

func (m *Memory) FindUser(username string) (models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (m *Memory) CreateUser(username, passwordHash string) (models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.users[username]; ok {
		return models.User{}, ErrConflict
	}

	user := models.User{Username: username, PasswordHash: passwordHash}
	m.users[username] = user
	return user, nil
}

func (m *Memory) Dashboard() (models.Dashboard, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.dashboard == nil {
		return models.Dashboard{}, ErrNotFound
	}
	return *m.dashboard, nil
}

func (m *Memory) SaveDashboard(dash models.Dashboard) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.dashboard = &dash
	return nil
}

func (m *Memory) Close() error {
	return nil
}
