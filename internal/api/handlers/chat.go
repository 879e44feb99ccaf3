package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"agricoop-backend/internal/service"
)

// ChatHandler handles conflict resolution threads: message history, posting,
// and the live websocket stream
type ChatHandler struct {
	chatService service.ChatServiceInterface
	userService service.UserServiceInterface
	hub         *ChatHub
	upgrader    websocket.Upgrader
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatServiceInterface, userService service.UserServiceInterface, hub *ChatHub) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		userService: userService,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients authenticate via the bearer token already
			// checked by the auth middleware; origin is not re-checked.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SendMessageBody represents the expected request body for posting a message
type SendMessageBody struct {
	Message      string `json:"message" binding:"required"`
	IsResolution bool   `json:"is_resolution"`
}

// ListMessages handles GET /conflicts/:date/messages
// @Summary List conflict thread messages
// @Description Lists a conflict thread's messages, oldest first. Unknown dates yield an empty list.
// @Tags conflicts
// @Produce json
// @Param date path string true "Conflict date (yyyy-MM-dd)"
// @Success 200 {array} models.ChatMessage "Thread messages"
// @Failure 400 {object} ErrorResponse "Malformed conflict date"
// @Security BearerAuth
// @Router /conflicts/{date}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /conflicts/:date/messages
// @Summary Post to a conflict thread
// @Description Appends a message to a conflict thread and broadcasts it to live subscribers
// @Tags conflicts
// @Accept json
// @Produce json
// @Param date path string true "Conflict date (yyyy-MM-dd)"
// @Param message body SendMessageBody true "Message data"
// @Success 201 {object} models.ChatMessage "Stored message"
// @Failure 400 {object} ErrorResponse "Malformed conflict date or empty message"
// @Security BearerAuth
// @Router /conflicts/{date}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var body SendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sender, err := h.userService.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message, err := h.chatService.SendMessage(sender, c.Param("date"), body.Message, body.IsResolution)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// Stream handles GET /conflicts/:date/ws
// @Summary Subscribe to a conflict thread
// @Description Upgrades to a websocket delivering new thread messages as they are posted
// @Tags conflicts
// @Param date path string true "Conflict date (yyyy-MM-dd)"
// @Success 101 "Switching protocols"
// @Failure 400 {object} ErrorResponse "Malformed conflict date"
// @Security BearerAuth
// @Router /conflicts/{date}/ws [get]
func (h *ChatHandler) Stream(c *gin.Context) {
	conflictDate := c.Param("date")
	// Validate before upgrading; a bad date should fail as plain HTTP.
	if _, err := h.chatService.ListMessages(conflictDate); err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	h.hub.Subscribe(conflictDate, conn)
	defer func() {
		h.hub.Unsubscribe(conflictDate, conn)
		conn.Close()
	}()

	// Messages are posted over REST; the read loop only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
