package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// Snapshot returns the frame a new viewer starts from.
type Snapshot func() ([]byte, error)

// ServeWs registers the connection as a viewer of sessionID and blocks until
// it closes. The first frame written is the snapshot.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, snapshot Snapshot) {
	client := NewClient(hub, c, sessionID)
	if !attach(hub, client, snapshot) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}

// attach registers client before taking the snapshot, so any change made
// meanwhile is either in the snapshot or queued after registration.
func attach(hub *Hub, client *Client, snapshot Snapshot) bool {
	if !hub.Register(client) {
		return false
	}

	data, err := snapshot()
	if err != nil {
		hub.logger.Warn("Hub", "Snapshot failed", map[string]interface{}{
			"session_id": client.SessionID,
			"error":      err.Error(),
		})
		hub.Unregister(client)
		return false
	}

	hub.Greet(client, data)
	return true
}
