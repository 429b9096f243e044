package handler

import (
	"errors"
	"net/http"
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/metrics"
	"citizen-services/internal/model"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RegisterHandler struct {
	svc     *service.RegistrationService
	tr      *i18n.Store
	metrics *metrics.Metrics
}

func NewRegisterHandler(svc *service.RegistrationService, tr *i18n.Store, m *metrics.Metrics) *RegisterHandler {
	return &RegisterHandler{svc: svc, tr: tr, metrics: m}
}

// Register forwards the full profile form. Webhook failures still answer 200 with ok=false.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if !h.bind(c, &req) {
		return
	}
	start := time.Now()
	resp := h.svc.Register(c.Request.Context(), viewsFor(h.tr, c).l, req)
	h.metrics.WebhookDuration.Observe(time.Since(start).Seconds())
	h.metrics.Registration("profile", resp.OK)
	c.JSON(http.StatusOK, resp)
}

func (h *RegisterHandler) RegisterQuick(c *gin.Context) {
	var req model.QuickRegistrationRequest
	if !h.bind(c, &req) {
		return
	}
	start := time.Now()
	resp := h.svc.RegisterQuick(c.Request.Context(), viewsFor(h.tr, c).l, req)
	h.metrics.WebhookDuration.Observe(time.Since(start).Seconds())
	h.metrics.Registration("quick", resp.OK)
	c.JSON(http.StatusOK, resp)
}

// bind answers 422 with one localized message per failing field.
func (h *RegisterHandler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	v := viewsFor(h.tr, c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		base := "validation." + fe.Field()
		msg := v.tOr(base+"."+fe.Tag(), base)
		if msg == base {
			msg = v.t("validation.invalid")
		}
		fields[fe.Field()] = msg
	}
	c.JSON(http.StatusUnprocessableEntity, model.ValidationErrorResponse{Error: v.t("validation.invalid"), Fields: fields})
	return false
}
