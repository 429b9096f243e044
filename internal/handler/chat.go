package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"
	"citizen-services/internal/metrics"
	"citizen-services/internal/model"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	tr      *i18n.Store
	metrics *metrics.Metrics
}

func NewChatHandler(tr *i18n.Store, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{tr: tr, metrics: m}
}

// Transcript returns the conversation so far plus the popular-question chips.
func (h *ChatHandler) Transcript(c *gin.Context) {
	conv := currentSession(c).Chat
	v := viewsFor(h.tr, c)
	c.JSON(http.StatusOK, model.TranscriptResponse{
		Messages:         v.messages(conv.Transcript()),
		PopularQuestions: v.all(conv.Popular()),
		Typing:           conv.Typing(),
	})
}

// Chat answers after the typing delay has elapsed.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := currentSession(c)
	v := viewsFor(h.tr, c)
	user, bot, err := sess.Chat.Submit(c.Request.Context(), req.Text)
	if err != nil {
		h.fail(c, v, sess.ID, err)
		return
	}
	h.metrics.Chat("ok")
	logger.Info("chat.submit", "sid", sess.ID, "text", user.Content, "reply", bot.Content)
	c.JSON(http.StatusOK, model.ChatResponse{User: v.message(user), Bot: v.message(bot)})
}

// ChatStream emits the accepted user turn, a typing marker, then the bot turn.
func (h *ChatHandler) ChatStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := currentSession(c)
	v := viewsFor(h.tr, c)
	pending, err := sess.Chat.Begin(req.Text)
	if err != nil {
		h.fail(c, v, sess.ID, err)
		return
	}
	defer pending.Cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	sse := &sseWriter{flusher: c.Writer, w: c.Writer}

	sse.event("user", v.message(pending.User))
	sse.event("typing", gin.H{"typing": true})

	bot, err := pending.Wait(c.Request.Context())
	if err != nil {
		h.metrics.Chat("aborted")
		logger.Info("chat.stream.aborted", "sid", sess.ID, "err", err)
		if c.Request.Context().Err() == nil {
			sse.event("error", gin.H{"error": err.Error()})
			sse.done()
		}
		return
	}
	h.metrics.Chat("ok")
	logger.Info("chat.stream", "sid", sess.ID, "text", pending.User.Content, "reply", bot.Content)
	sse.event("message", v.message(bot))
	sse.done()
}

func (h *ChatHandler) fail(c *gin.Context, v views, sid string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		h.metrics.Chat("rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": v.t("chat.error.empty")})
	case errors.Is(err, service.ErrConversationBusy):
		h.metrics.Chat("busy")
		c.JSON(http.StatusConflict, gin.H{"error": v.t("chat.error.busy")})
	case errors.Is(err, service.ErrConversationClosed):
		h.metrics.Chat("aborted")
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.metrics.Chat("aborted")
		logger.Warn("chat.submit.timeout", "sid", sid, "err", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled):
		h.metrics.Chat("aborted")
		logger.Info("chat.submit.aborted", "sid", sid, "err", err)
		c.AbortWithStatus(statusClientClosed)
	default:
		logger.Error("chat.submit", "sid", sid, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// statusClientClosed marks requests whose client went away before the reply.
const statusClientClosed = 499

type sseWriter struct {
	flusher http.Flusher
	w       gin.ResponseWriter
}

func (s *sseWriter) event(name string, data any) {
	j, _ := json.Marshal(data)
	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, j)
	s.flusher.Flush()
}

func (s *sseWriter) done() {
	s.event("done", map[string]string{})
}
