package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"keynudge/internal/checkout"
	"keynudge/internal/config"
	"keynudge/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Nudger produces a free-form reply when no keyword rule matches
type Nudger interface {
	Nudge(ctx context.Context, text string) (string, error)
}

// Server holds the router and the process-wide dependencies shared by handlers
type Server struct {
	cfg      *config.Config
	payments checkout.Provider
	nudger   Nudger
	router   *gin.Engine
}

// NewServer creates the HTTP server. payments and nudger may be nil, which
// disables checkout routes and AI replies respectively.
func NewServer(cfg *config.Config, payments checkout.Provider, nudger Nudger) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		cfg:      cfg,
		payments: payments,
		nudger:   nudger,
		router:   router,
	}

	router.SetHTMLTemplate(template.Must(
		template.New("").Funcs(template.FuncMap{"money": formatAmount}).ParseFS(templatesFS, "templates/*.html"),
	))

	router.Use(requestIDMiddleware(), corsMiddleware())
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	r := s.router

	r.GET("/health", s.healthCheck)

	// Transcript webhooks
	r.POST("/webhook", s.handleWebhook)
	r.POST("/webhook/assist", s.handleAssistWebhook)

	// Demo pages
	r.GET("/", s.handleIndex)
	r.GET("/demo/promo-codes", s.handlePromoCodesPage)
	r.GET("/demo/discounts", s.handleDiscountsPage)
	r.GET("/cancel", s.handleCancel)

	payments := r.Group("", s.requirePayments())
	{
		payments.POST("/create-checkout-session", s.handleCreateCheckoutForm)
		payments.GET("/success", s.handleSuccess)
	}

	api := r.Group("/api/checkout", s.requirePayments())
	{
		api.POST("/sessions", s.handleAPICreateSession)
		api.GET("/sessions/:id", s.handleAPIGetSession)
	}
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":   "ok",
		"service":  "keynudge",
		"base_url": s.cfg.BaseURL,
		"payments": s.payments != nil,
		"ai":       s.nudger != nil,
	})
}
