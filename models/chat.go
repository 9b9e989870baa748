package models

import "time"

// Message is one chat message. Messages are written exactly once and
// never updated; CreatedAt is assigned by the store.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// User is a chat account. Only the hash of the password is ever kept.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
