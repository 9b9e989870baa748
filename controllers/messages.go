package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorhub-chat/models"
)

// ErrEmptyContent rejects messages with no content. On the HTTP path it
// becomes a 400; on the realtime path the send is silently dropped.
var ErrEmptyContent = errors.New("content required")

// PostMessage is the single ingress both transports converge on:
// validate, persist, fan out. The broadcast includes the sender's own
// connection, so clients can rely on the echo as their confirmation.
func PostMessage(conversationID, senderID, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, ErrEmptyContent
	}

	msg, err := Store.AppendMessage(conversationID, senderID, content)
	if err != nil {
		return models.Message{}, err
	}

	GlobalHub.Broadcast(conversationID, Event{Event: "message:new", Data: msg})
	return msg, nil
}

type roomMessageRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type dmMessageRequest struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

func RoomHistory(c *gin.Context) {
	history(c, c.Param("roomId"))
}

func RoomSend(c *gin.Context) {
	var req roomMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content required"})
		return
	}
	send(c, c.Param("roomId"), req.UserID, req.Content)
}

// DMHistory reads a 1:1 transcript. The conversation key is derived
// from the two participants, so /dm/a/b and /dm/b/a read the same log.
func DMHistory(c *gin.Context) {
	history(c, models.ConversationKey(c.Param("a"), c.Param("b")))
}

func DMSend(c *gin.Context) {
	var req dmMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content required"})
		return
	}
	send(c, models.ConversationKey(c.Param("a"), c.Param("b")), req.From, req.Content)
}

func history(c *gin.Context, conversationID string) {
	messages, err := Store.History(conversationID)
	if err != nil {
		slog.Error("history load failed", "conversationId", conversationID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func send(c *gin.Context, conversationID, senderID, content string) {
	msg, err := PostMessage(conversationID, senderID, content)
	switch {
	case errors.Is(err, ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "content required"})
	case err != nil:
		slog.Error("message store failed", "conversationId", conversationID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
	default:
		c.JSON(http.StatusCreated, msg)
	}
}
