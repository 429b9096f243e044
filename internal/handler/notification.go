package handler

import (
	"errors"
	"net/http"

	"citizen-services/internal/i18n"
	"citizen-services/internal/metrics"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	tr      *i18n.Store
	metrics *metrics.Metrics
}

func NewNotificationHandler(tr *i18n.Store, m *metrics.Metrics) *NotificationHandler {
	return &NotificationHandler{tr: tr, metrics: m}
}

func (h *NotificationHandler) List(c *gin.Context) {
	store := currentSession(c).Notifications
	c.JSON(http.StatusOK, viewsFor(h.tr, c).notifications(store.List(), store.UnreadCount()))
}

// Open returns one notification and marks it read.
func (h *NotificationHandler) Open(c *gin.Context) {
	store := currentSession(c).Notifications
	n, changed, err := store.Open(c.Param("id"))
	if errors.Is(err, service.ErrNotificationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if changed {
		h.metrics.Read(1)
	}
	c.JSON(http.StatusOK, viewsFor(h.tr, c).notification(n))
}

// MarkRead is a no-op for unknown ids.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	store := currentSession(c).Notifications
	if store.MarkRead(c.Param("id")) {
		h.metrics.Read(1)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "unreadCount": store.UnreadCount()})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	store := currentSession(c).Notifications
	h.metrics.Read(store.MarkAllRead())
	c.JSON(http.StatusOK, viewsFor(h.tr, c).notifications(store.List(), store.UnreadCount()))
}
