// Package web serves the portfolio: server-rendered pages plus the small
// interaction endpoints the pages poll and post to.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/analytics"
	"github.com/Zachkp/cosmic-portfolio/internal/content"
	"github.com/Zachkp/cosmic-portfolio/internal/logging"
	"github.com/Zachkp/cosmic-portfolio/internal/reveal"
	"github.com/Zachkp/cosmic-portfolio/internal/visit"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators a Server renders and mutates.
type Deps struct {
	Content   *content.Store
	Visits    *visit.Registry
	Analytics *analytics.Store
	Logger    *zap.Logger
	Mode      string
}

// Server is the HTTP front of the site.
type Server struct {
	engine  *gin.Engine
	content *content.Store
	visits  *visit.Registry
	log     *zap.Logger
}

// New builds the router and parses the embedded templates.
func New(d Deps) (*Server, error) {
	if d.Content == nil {
		return nil, errors.New("web: content store is required")
	}
	if d.Visits == nil {
		return nil, errors.New("web: visit registry is required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Mode != "" {
		gin.SetMode(d.Mode)
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	s := &Server{
		engine:  gin.New(),
		content: d.Content,
		visits:  d.Visits,
		log:     d.Logger,
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(logging.Requests(d.Logger), gin.CustomRecovery(s.renderPanic))
	if d.Analytics != nil {
		s.engine.Use(analytics.Middleware(d.Analytics, d.Logger))
	}
	s.engine.StaticFS("/static", http.FS(static))
	s.routes(d.Analytics)
	return s, nil
}

func (s *Server) routes(stats *analytics.Store) {
	r := s.engine
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/stats", s.stats(stats))

	r.GET("/projects-showcase/:id", s.projectDetail)

	pages := r.Group("/", s.withVisit)
	pages.GET("/", s.splashPage)
	pages.GET("/home", s.homePage)
	pages.GET("/about", s.aboutPage)
	pages.GET("/skills-matrix", s.skillsPage)
	pages.GET("/projects-showcase", s.projectsPage)
	pages.GET("/experience-timeline", s.experiencePage)
	pages.GET("/contact", s.contactPage)

	live := r.Group("/", s.requireVisit)
	live.POST("/splash/enter", s.splashEnter)
	live.GET("/splash/state", s.splashState)
	live.POST("/reveal", s.revealSections)
	live.POST("/contact", s.contactSubmit)
	live.GET("/contact/status", s.contactStatus)
	live.POST("/contact/dismiss", s.contactDismiss)

	// Stray requests such as /favicon.ico must not unmount the page the
	// visitor is looking at, so the 404 page is rendered without a visit.
	r.NoRoute(s.notFound)
}

// Handler exposes the router for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

// renderPanic is the page error boundary: the panic is logged and the visitor
// gets the fallback page while the process keeps serving.
func (s *Server) renderPanic(c *gin.Context, recovered any) {
	s.log.Error("page render panicked",
		zap.String("path", c.Request.URL.Path),
		zap.Any("panic", recovered))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title": "Something went wrong",
	})
	c.Abort()
}

var funcs = template.FuncMap{
	"ms": func(d time.Duration) int64 { return d.Milliseconds() },
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
	"add": func(a, b int) int { return a + b },
	// css marks styles built by the server as safe for style attributes.
	"css": func(s string) template.CSS { return template.CSS(s) },
	"section": func(t *reveal.Tracker, id string) sectionAttrs {
		return sectionAttrs{ID: id, Style: t.Style(id).CSS()}
	},
}

// sectionAttrs opens a section that fades in on scroll.
type sectionAttrs struct {
	ID    string
	Style string
}
