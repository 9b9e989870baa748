package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"mentorhub-chat/auth"
	"mentorhub-chat/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// frame is a client-to-server websocket event.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type roomJoinPayload struct {
	RoomID string `json:"roomId"`
}

type roomSendPayload struct {
	RoomID  string `json:"roomId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type dmJoinPayload struct {
	A string `json:"a"`
	B string `json:"b"`
}

type dmSendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

// WebSocketHandler authenticates the handshake and serves the event
// loop until the connection drops. The token travels in the upgrade
// request's token query parameter rather than the Authorization
// header, and is checked before upgrading: a missing or bad token gets
// a plain 401 and never a partial connection.
func WebSocketHandler(c *gin.Context) {
	claims, err := auth.ValidateToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := &Client{conn: conn, username: claims.Username}
	defer func() {
		GlobalHub.Remove(client)
		conn.Close()
	}()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		handleEvent(client, f)
	}
}

func handleEvent(client *Client, f frame) {
	switch f.Event {
	case "room:join":
		var p roomJoinPayload
		if err := json.Unmarshal(f.Data, &p); err != nil || p.RoomID == "" {
			return
		}
		GlobalHub.Join(client, p.RoomID)

	case "message:send":
		var p roomSendPayload
		if err := json.Unmarshal(f.Data, &p); err != nil {
			return
		}
		socketSend(p.RoomID, p.UserID, p.Content)

	case "dm:join":
		var p dmJoinPayload
		if err := json.Unmarshal(f.Data, &p); err != nil {
			return
		}
		GlobalHub.Join(client, models.ConversationKey(p.A, p.B))

	case "dm:send":
		var p dmSendPayload
		if err := json.Unmarshal(f.Data, &p); err != nil {
			return
		}
		socketSend(models.ConversationKey(p.From, p.To), p.From, p.Content)
	}
}

// socketSend is fire and forget: there is no response channel back to
// the sender, so store failures are logged and dropped and empty
// content is a silent no-op.
func socketSend(conversationID, senderID, content string) {
	if _, err := PostMessage(conversationID, senderID, content); err != nil && !errors.Is(err, ErrEmptyContent) {
		slog.Error("socket send failed", "conversationId", conversationID, "err", err)
	}
}
