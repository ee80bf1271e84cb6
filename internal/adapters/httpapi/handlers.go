package httpapi

import (
	"net/http"

	"github.com/bnema/dsec/internal/application"
	"github.com/bnema/dsec/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppHandler struct {
	apps   *application.AppService
	logger *zap.Logger
}

func NewAppHandler(apps *application.AppService, logger *zap.Logger) *AppHandler {
	return &AppHandler{apps: apps, logger: logger}
}

// ListApps handles GET /api/apps.
func (h *AppHandler) ListApps(c *gin.Context) {
	summaries, err := h.apps.ListApps(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, success(summaries))
}

// CreateApp handles POST /api/apps.
func (h *AppHandler) CreateApp(c *gin.Context) {
	var req CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure("invalid request body"))
		return
	}
	if req.ID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, failure("id and name are required"))
		return
	}
	if err := domain.AppID(req.ID).Validate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := domain.ValidateAppName(req.Name); err != nil {
		writeError(c, h.logger, err)
		return
	}

	app, err := h.apps.CreateApp(c.Request.Context(), domain.AppID(req.ID), req.Name)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, success(app))
}

// GetApp handles GET /api/apps/:id.
func (h *AppHandler) GetApp(c *gin.Context) {
	app, ok, err := h.apps.GetApp(c.Request.Context(), domain.AppID(c.Param("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, failure("App not found"))
		return
	}

	c.JSON(http.StatusOK, success(app))
}

// DeleteApp handles DELETE /api/apps/:id.
func (h *AppHandler) DeleteApp(c *gin.Context) {
	if err := h.apps.DeleteApp(c.Request.Context(), domain.AppID(c.Param("id"))); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

func (h *AppHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/api/apps")
	{
		group.GET("", h.ListApps)
		group.POST("", h.CreateApp)
		group.GET("/:id", h.GetApp)
		group.DELETE("/:id", h.DeleteApp)
	}
}

type SecretHandler struct {
	secrets *application.SecretService
	logger  *zap.Logger
}

func NewSecretHandler(secrets *application.SecretService, logger *zap.Logger) *SecretHandler {
	return &SecretHandler{secrets: secrets, logger: logger}
}

// ListSecrets handles GET /api/apps/:id/secrets.
func (h *SecretHandler) ListSecrets(c *gin.Context) {
	secrets, err := h.secrets.ListSecrets(c.Request.Context(), domain.AppID(c.Param("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, success(secrets))
}

// GetSecret handles GET /api/apps/:id/secrets/:key.
func (h *SecretHandler) GetSecret(c *gin.Context) {
	secret, err := h.secrets.RequireSecret(c.Request.Context(), domain.AppID(c.Param("id")), c.Param("key"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, success(secret))
}

// AddSecret handles POST /api/apps/:id/secrets.
func (h *SecretHandler) AddSecret(c *gin.Context) {
	var req AddSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure("invalid request body"))
		return
	}
	if req.Key == "" || req.Value == nil {
		c.JSON(http.StatusBadRequest, failure("key and value are required"))
		return
	}

	h.store(c, req.Key, *req.Value, http.StatusCreated)
}

// UpdateSecret handles PUT /api/apps/:id/secrets/:key.
func (h *SecretHandler) UpdateSecret(c *gin.Context) {
	var req UpdateSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure("invalid request body"))
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, failure("value is required"))
		return
	}

	h.store(c, c.Param("key"), *req.Value, http.StatusOK)
}

// DeleteSecret handles DELETE /api/apps/:id/secrets/:key.
func (h *SecretHandler) DeleteSecret(c *gin.Context) {
	if err := h.secrets.DeleteSecret(c.Request.Context(), domain.AppID(c.Param("id")), c.Param("key")); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

func (h *SecretHandler) store(c *gin.Context, key, value string, status int) {
	if err := domain.ValidateSecretKey(key); err != nil {
		writeError(c, h.logger, err)
		return
	}

	secret, err := h.secrets.AddSecret(c.Request.Context(), domain.AppID(c.Param("id")), key, value)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(status, success(secret))
}

func (h *SecretHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/api/apps/:id/secrets")
	{
		group.GET("", h.ListSecrets)
		group.POST("", h.AddSecret)
		group.GET("/:key", h.GetSecret)
		group.PUT("/:key", h.UpdateSecret)
		group.DELETE("/:key", h.DeleteSecret)
	}
}
