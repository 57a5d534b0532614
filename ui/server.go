package ui

import (
	"html/template"
	"net/http"
	"time"

	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/ui/middleware"
	"launchdash/ui/services"

	"github.com/gin-gonic/gin"
)

// Options configures the dashboard servers
type Options struct {
	GinMode         string
	SliderStep      float64
	SliderMarkEvery int
	ChartWidth      float64
	ChartHeight     float64
	Logger          *internal.Logger
}

func (o Options) withDefaults() Options {
	if o.GinMode == "" {
		o.GinMode = gin.ReleaseMode
	}
	if o.SliderStep <= 0 {
		o.SliderStep = launch.DefaultSliderStep
	}
	if o.SliderMarkEvery <= 0 {
		o.SliderMarkEvery = launch.DefaultSliderMarkEvery
	}
	if o.ChartWidth <= 0 {
		o.ChartWidth = 640
	}
	if o.ChartHeight <= 0 {
		o.ChartHeight = 420
	}
	if o.Logger == nil {
		o.Logger = internal.DefaultLogger
	}
	return o
}

// Server is the full dashboard: HTML page, charts, JSON API, report and export
type Server struct {
	router    *gin.Engine
	query     *services.QueryService
	render    *services.RenderService
	templates *template.Template
	logger    *internal.Logger
}

// NewServer wires the dashboard around an already loaded dataset
func NewServer(ds *launch.Dataset, opts Options) (*Server, error) {
	opts = opts.withDefaults()
	gin.SetMode(opts.GinMode)

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	query := services.NewQueryService(ds, opts.SliderStep, opts.SliderMarkEvery, opts.Logger)
	s := &Server{
		router:    gin.New(),
		query:     query,
		render:    services.NewRenderService(query, opts.ChartWidth, opts.ChartHeight),
		templates: templates,
		logger:    opts.Logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.logger.Info("[Server] Dashboard ready: %d launches, %d sites", ds.Len(), len(ds.Sites()))
	return s, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.LoggerWithWriter(s.logger.Writer()))
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/report", s.handleReport)
	s.router.GET("/charts/:chart", s.handleChart)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/sites", s.handleSites)
	api.GET("/slider", s.handleSlider)
	api.GET("/outcomes", s.handleOutcomes)
	api.GET("/scatter", s.handleScatter)
	api.GET("/summary", s.handleSummary)
	api.GET("/export.xlsx", s.handleExport)
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer builds a listener-ready server for addr
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// renderTemplate executes a page template into the response
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		s.logger.Error("[Server] Template %s failed: %v", templateName, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
