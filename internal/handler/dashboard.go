package handler

import (
	"net/http"

	"citizen-services/internal/i18n"
	"citizen-services/internal/middleware"
	"citizen-services/internal/model"
	"citizen-services/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	auth *service.AuthService
	tr   *i18n.Store
}

func NewDashboardHandler(auth *service.AuthService, tr *i18n.Store) *DashboardHandler {
	return &DashboardHandler{auth: auth, tr: tr}
}

// Home returns everything the home view shows.
func (h *DashboardHandler) Home(c *gin.Context) {
	citizen, ok := h.auth.Lookup(c.GetInt(middleware.UserIDKey))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	dash := currentSession(c).Dashboard
	v := viewsFor(h.tr, c)
	profile := v.citizen(*citizen)

	resp := model.DashboardResponse{
		Greeting: h.tr.Tf(v.l, "home.greeting", profile.Name),
		Citizen:  profile,
	}
	for _, s := range dash.Stats() {
		resp.Stats = append(resp.Stats, v.stat(s))
	}
	for _, d := range dash.Documents() {
		resp.Documents = append(resp.Documents, v.document(d))
	}
	for _, r := range dash.Recommendations() {
		resp.Recommendations = append(resp.Recommendations, v.recommendation(r))
	}
	c.JSON(http.StatusOK, resp)
}
