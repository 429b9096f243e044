package handler

import (
	"errors"
	"net/http"

	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"
	"citizen-services/internal/metrics"
	"citizen-services/internal/middleware"
	"citizen-services/internal/model"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *service.AuthService
	tokens   *middleware.Tokens
	sessions *service.SessionRegistry
	tr       *i18n.Store
	metrics  *metrics.Metrics
}

func NewAuthHandler(auth *service.AuthService, tokens *middleware.Tokens, sessions *service.SessionRegistry, tr *i18n.Store, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, sessions: sessions, tr: tr, metrics: m}
}

// Login checks the demo credentials and opens a fresh session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	v := viewsFor(h.tr, c)
	citizen, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.Login(false)
		logger.Warn("login.failed", "username", req.Username)
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": v.t("auth.invalid")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := h.sessions.Create(citizen.ID)
	token, err := h.tokens.Issue(citizen.ID, citizen.Name, sess.ID)
	if err != nil {
		logger.Error("login.sign", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}
	h.metrics.Login(true)
	logger.Info("login.ok", "uid", citizen.ID, "sid", sess.ID)

	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: v.citizen(*citizen)})
}

func viewsFor(tr *i18n.Store, c *gin.Context) views {
	return views{tr: tr, l: middleware.LocaleOf(c)}
}
