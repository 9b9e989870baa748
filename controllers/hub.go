package controllers

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

// Event is a websocket frame going out to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client wraps one websocket connection. The mutex serializes writes;
// gorilla connections support only a single concurrent writer.
type Client struct {
	conn     *websocket.Conn
	username string
	mutex    sync.Mutex
}

func (cl *Client) send(evt Event) error {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.conn.WriteJSON(evt)
}

// Hub tracks which connections belong to which conversation group and
// pushes events to them. Delivery is best effort: a dead member is
// closed and pruned without affecting the rest of the group, and never
// fails the persistence that already happened.
type Hub struct {
	groups map[string]map[*Client]bool
	mutex  sync.Mutex
}

func NewHub() *Hub {
	return &Hub{groups: make(map[string]map[*Client]bool)}
}

var GlobalHub = NewHub()

// Join subscribes the client to a conversation group. Any
// authenticated connection may join any group.
func (h *Hub) Join(client *Client, conversationID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	group, ok := h.groups[conversationID]
	if !ok {
		group = make(map[*Client]bool)
		h.groups[conversationID] = group
	}
	group[client] = true
}

// Remove drops the client from every group it joined. Called when the
// connection goes away; there is no explicit leave protocol.
func (h *Hub) Remove(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conversationID, group := range h.groups {
		delete(group, client)
		if len(group) == 0 {
			delete(h.groups, conversationID)
		}
	}
}

func (h *Hub) Broadcast(conversationID string, evt Event) {
	h.mutex.Lock()
	members := lo.Keys(h.groups[conversationID])
	h.mutex.Unlock()

	for _, client := range members {
		if err := client.send(evt); err != nil {
			slog.Warn("dropping websocket client", "username", client.username, "err", err)
			client.conn.Close()
			h.Remove(client)
		}
	}
}
