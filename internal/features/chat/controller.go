package chat

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	users_middleware "cofoundry/internal/features/users/middleware"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is handled by the CORS middleware; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ChatController struct {
	chatService *ChatService
}

func (c *ChatController) RegisterPublicRoutes(router *gin.RouterGroup) {
	// Browsers cannot set headers on websocket dials, so the feed
	// authenticates via a token query parameter instead.
	router.GET("/projects/:projectId/chat/ws", c.StreamMessages)
}

func (c *ChatController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/chat", c.ListMessages)
	router.POST("/projects/:projectId/chat", c.SendMessage)
}

// ListMessages
// @Summary Get a project's chat history
// @Tags chat
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} chat.MessagesResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/chat [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	messages, err := c.chatService.ListMessages(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, MessagesResponseDTO{Messages: messages})
}

// SendMessage
// @Summary Send a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body chat.SendMessageRequestDTO true "Message"
// @Success 201 {object} chat.MessageResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/chat [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	message, err := c.chatService.SendMessage(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

// StreamMessages upgrades the connection and pushes every new message
// for the project until the client disconnects.
func (c *ChatController) StreamMessages(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	user := c.resolveUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	subscription, err := c.chatService.Subscribe(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		subscription.Unsubscribe()
		logger.GetLogger().Warn("websocket upgrade failed", "projectId", projectID, "error", err)
		return
	}

	go c.writePump(conn, subscription)
	go c.readPump(conn, subscription)
}

func (c *ChatController) writePump(conn *websocket.Conn, subscription *Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		subscription.Unsubscribe()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-subscription.C:
			if !ok {
				conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains inbound frames so close and pong handling works; the
// feed itself is one-directional.
func (c *ChatController) readPump(conn *websocket.Conn, subscription *Subscription) {
	defer func() {
		subscription.Unsubscribe()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *ChatController) resolveUser(ctx *gin.Context) *users_models.User {
	if user := users_middleware.GetUserFromContext(ctx); user != nil {
		return user
	}

	token := ctx.Query("token")
	if token == "" {
		return nil
	}

	user, err := users_services.GetUserService().GetUserFromToken(token)
	if err != nil {
		return nil
	}

	return user
}
