package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
	"github.com/221-Batuhan/chat-ai-project/internal/service"
	"github.com/221-Batuhan/chat-ai-project/pkg/log"
	"github.com/221-Batuhan/chat-ai-project/pkg/response"
)

// Handler handles HTTP requests for the chat API.
type Handler struct {
	messageService service.MessageService
	userService    service.UserService
}

// NewHandler creates a new HTTP handler.
func NewHandler(messageService service.MessageService, userService service.UserService) *Handler {
	return &Handler{
		messageService: messageService,
		userService:    userService,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		messages := api.Group("/messages")
		{
			messages.GET("", h.ListMessages)
			messages.POST("", h.CreateMessage)
		}

		users := api.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.POST("/register", h.RegisterUser)
		}
	}
}

// ListMessages returns all messages, newest first.
func (h *Handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	messages, err := h.messageService.List(ctx)
	if err != nil {
		response.InternalError(c, "failed to list messages")
		return
	}

	response.Success(c, messages)
}

// CreateMessage validates and persists a message. The created record is
// returned immediately with empty sentiment fields; enrichment happens in
// the background.
func (h *Handler) CreateMessage(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid message payload")
		response.BadRequest(c, "invalid request body")
		return
	}

	message, err := h.messageService.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) {
			response.BadRequest(c, "message text must not be blank")
			return
		}
		l.Error().Err(err).Msg("create message failed")
		response.InternalError(c, "failed to create message")
		return
	}

	response.Created(c, message)
}

// ListUsers returns all users, newest id first.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}

	response.Success(c, users)
}

// RegisterUser registers a username. Registration is idempotent: an existing
// username answers 200 with the stored record, a new one answers 201.
func (h *Handler) RegisterUser(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid register payload")
		response.BadRequest(c, "invalid request body")
		return
	}

	user, created, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameRequired) {
			response.BadRequest(c, "username must not be blank")
			return
		}
		l.Error().Err(err).Msg("register user failed")
		response.InternalError(c, "failed to register user")
		return
	}

	if created {
		response.Created(c, user)
		return
	}
	response.Success(c, user)
}
