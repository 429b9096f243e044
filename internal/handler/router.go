package handler

import (
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"citizen-services/internal/config"
	"citizen-services/internal/i18n"
	"citizen-services/internal/metrics"
	"citizen-services/internal/middleware"
	"citizen-services/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const notFoundPage = "404.html"

type Deps struct {
	Config       *config.Config
	Translations *i18n.Store
	Auth         *service.AuthService
	Tokens       *middleware.Tokens
	Sessions     *service.SessionRegistry
	Registration *service.RegistrationService
	Metrics      *metrics.Metrics
	// Static holds index.html, 404.html and the front-end assets.
	Static fs.FS
}

func NewRouter(d Deps) (*gin.Engine, error) {
	tr := d.Translations
	authH := NewAuthHandler(d.Auth, d.Tokens, d.Sessions, tr, d.Metrics)
	chatH := NewChatHandler(tr, d.Metrics)
	notifH := NewNotificationHandler(tr, d.Metrics)
	dashH := NewDashboardHandler(d.Auth, tr)
	regH := NewRegisterHandler(d.Registration, tr, d.Metrics)
	localeH := NewLocaleHandler(tr)
	pages := &staticViews{fs: d.Static, tr: tr}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"X-New-Token"},
		AllowCredentials: true,
	}))
	if d.Static != nil {
		tmpl, err := template.ParseFS(d.Static, notFoundPage)
		if err != nil {
			return nil, err
		}
		r.SetHTMLTemplate(tmpl)
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	public := r.Group("/api", middleware.Locale(tr, nil))
	public.POST("/login", authH.Login)
	public.GET("/i18n/:locale", localeH.Dictionary)

	api := r.Group("/api", middleware.JWTAuth(d.Tokens), SessionScope(d.Sessions), middleware.Locale(tr, sessionLocale))
	api.GET("/dashboard", dashH.Home)
	api.GET("/notifications", notifH.List)
	api.POST("/notifications/read-all", notifH.MarkAllRead)
	api.GET("/notifications/:id", notifH.Open)
	api.POST("/notifications/:id/read", notifH.MarkRead)
	api.GET("/chat", chatH.Transcript)
	api.POST("/chat", chatH.Chat)
	api.POST("/chat/stream", chatH.ChatStream)
	api.PUT("/locale", localeH.Set)
	api.POST("/register", regH.Register)
	api.POST("/register/quick", regH.RegisterQuick)

	r.GET("/", pages.index)
	r.GET("/chat", pages.index)
	r.NoRoute(middleware.Locale(tr, nil), pages.fallback)
	return r, nil
}

type staticViews struct {
	fs fs.FS
	tr *i18n.Store
}

func (s *staticViews) index(c *gin.Context) {
	if !s.serve(c, "index.html") {
		s.notFound(c)
	}
}

// fallback serves an embedded asset, or the not-found view. Unknown API paths get JSON.
func (s *staticViews) fallback(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	name := strings.TrimPrefix(path.Clean(p), "/")
	if name != "" && name != notFoundPage && s.serve(c, name) {
		return
	}
	s.notFound(c)
}

func (s *staticViews) serve(c *gin.Context, name string) bool {
	if s.fs == nil {
		return false
	}
	data, err := fs.ReadFile(s.fs, name)
	if err != nil {
		return false
	}
	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	c.Data(http.StatusOK, ctype, data)
	return true
}

func (s *staticViews) notFound(c *gin.Context) {
	l := middleware.LocaleOf(c)
	msg := s.tr.T(l, "view.notFound")
	if s.fs == nil {
		c.String(http.StatusNotFound, msg)
		return
	}
	c.HTML(http.StatusNotFound, notFoundPage, gin.H{
		"Lang":    string(l),
		"Message": msg,
		"Home":    s.tr.T(l, "header.home"),
	})
}
