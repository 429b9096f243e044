package handler

import (
	"net/http"

	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"
	"citizen-services/internal/model"

	"github.com/gin-gonic/gin"
)

type LocaleHandler struct{ tr *i18n.Store }

func NewLocaleHandler(tr *i18n.Store) *LocaleHandler { return &LocaleHandler{tr: tr} }

// Dictionary exports a whole table so the front end can render static labels.
func (h *LocaleHandler) Dictionary(c *gin.Context) {
	l, ok := i18n.Parse(c.Param("locale"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported locale"})
		return
	}
	dict, ok := h.tr.Dictionary(l)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported locale"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": l, "messages": dict})
}

// Set stores the session's locale choice.
func (h *LocaleHandler) Set(c *gin.Context) {
	var req model.LocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	sess := currentSession(c)
	l, err := sess.SetLocale(req.Locale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Info("locale.set", "sid", sess.ID, "locale", l)
	c.JSON(http.StatusOK, gin.H{"locale": l})
}
