package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tasktrack/internal/auth"
	"tasktrack/internal/domain"
	"tasktrack/internal/service"
	"tasktrack/web"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	tasks  service.TaskService
	tokens *auth.Manager
	logger *logrus.Logger
}

func NewHandler(users service.UserService, tasks service.TaskService, tokens *auth.Manager, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		tasks:  tasks,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		tasks := api.Group("/tasks", requireAuth(h.tokens))
		{
			tasks.GET("", h.listTasks)
			tasks.POST("", h.createTask)
			tasks.PUT("/:id", h.updateTask)
			tasks.DELETE("/:id", h.deleteTask)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	web.RegisterRoutes(router)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  userToResponse(user),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  userToResponse(user),
	})
}

func (h *Handler) listTasks(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createTask(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), identity, req.Title, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), identity, id, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), identity, id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// taskIDParam parses the :id route parameter. A malformed id is reported as
// not found, so probing ids reveals nothing about what exists.
func taskIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusNotFound, "task not found")
		return 0, false
	}
	return id, true
}

type authResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type TaskResponse struct {
	ID          int64             `json:"id"`
	OwnerID     int64             `json:"owner_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// fail converts a service error into the stable failure envelope. Internal
// detail stays in the server log.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWithError(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, "user already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrTaskNotFound):
		abortWithError(c, http.StatusNotFound, "task not found")
	default:
		h.logger.WithError(err).Error("request failed")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

type errorResponse struct {
	Status  int     `json:"status"`
	Data    *string `json:"data"`
	Message string  `json:"message"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Status:  status,
		Message: message,
	})
}
