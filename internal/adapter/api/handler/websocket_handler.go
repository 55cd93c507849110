package handler

import (
	"net/http"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"carvendor/internal/infrastructure/websocket"
	"carvendor/internal/usecase"
	"carvendor/pkg/logger"
	"carvendor/pkg/response"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub         *websocket.Hub
	authUseCase *usecase.AuthUseCase
}

func NewWebSocketHandler(hub *websocket.Hub, authUseCase *usecase.AuthUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authUseCase: authUseCase,
	}
}

// Catalog upgrades a public connection that receives live car set updates.
func (h *WebSocketHandler) Catalog(c echo.Context) error {
	return h.upgrade(c, websocket.KindCatalog)
}

// Operator upgrades a back office connection that receives inquiry
// notifications. The session token is passed as a query parameter because
// browsers cannot set headers on WebSocket handshakes.
func (h *WebSocketHandler) Operator(c echo.Context) error {
	token := c.QueryParam("token")
	if _, err := h.authUseCase.CurrentPrincipal(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}

	return h.upgrade(c, websocket.KindOperator)
}

func (h *WebSocketHandler) upgrade(c echo.Context, kind string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		ID:   uuid.New().String(),
		Kind: kind,
		Conn: conn,
		Send: make(chan []byte, 16),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
