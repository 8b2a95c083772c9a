package handler

import (
	"context"
	"encoding/json"

	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/internal/service"
	internalWS "mockup-editor-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type EditorWsHandler struct {
	editorService service.IEditorService
	hub           *internalWS.Hub
	jwt           fiber.Handler
	logger        logger.ILogger
}

func NewEditorWsHandler(editorService service.IEditorService, hub *internalWS.Hub, jwt fiber.Handler, log logger.ILogger) *EditorWsHandler {
	return &EditorWsHandler{
		editorService: editorService,
		hub:           hub,
		jwt:           jwt,
		logger:        log,
	}
}

func (h *EditorWsHandler) RegisterRoutes(r fiber.Router) {
	// Browsers cannot set headers on the handshake, the middleware also reads ?token=
	r.Get("/editor/v1/ws", h.jwt, h.ServeWs)
}

// ServeWs upgrades the request into a live document feed. The first frame
// carries the current document; later frames follow every change.
func (h *EditorWsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, _ := c.Locals(serverutils.SessionIDKey).(string)

	if _, err := h.editorService.GetDocument(c.UserContext(), sessionID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("EditorWsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID, h.snapshot(sessionID))
			h.logger.Info("EditorWsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *EditorWsHandler) snapshot(sessionID string) internalWS.Snapshot {
	return func() ([]byte, error) {
		doc, err := h.editorService.GetDocument(context.Background(), sessionID)
		if err != nil {
			return nil, err
		}

		return json.Marshal(map[string]interface{}{
			"type":   "document",
			"reason": "snapshot",
			"data":   doc,
		})
	}
}
