// Package web serves the portfolio over HTTP with gin.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/profile"
	"github.com/shubham-kumr/portfolio/internal/scheduler"
	"github.com/shubham-kumr/portfolio/internal/splash"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	Profile   *profile.Profile
	Formatter *localtime.Formatter
	Timings   splash.Timings
	Lang      string
	StaticDir string
	ImagesDir string
	// Clock is used for the first reading in the loading shell.
	Clock scheduler.Clock
}

// Server is the HTTP host for the loading and profile views.
type Server struct {
	opts   Options
	tmpl   *template.Template
	engine *gin.Engine
}

// New builds the router and parses the embedded templates.
func New(opts Options) (*Server, error) {
	if opts.Profile == nil || opts.Formatter == nil {
		return nil, errors.New("web: profile and formatter are required")
	}
	if opts.Clock == nil {
		opts.Clock = scheduler.RealClock{}
	}
	if opts.Lang == "" {
		opts.Lang = "en"
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{opts: opts, tmpl: tmpl}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}
	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}
	s.setupRoutes(r)
	s.engine = r
	return s, nil
}

func (s *Server) setupRoutes(r *gin.Engine) {
	// Loading shell; progress and clock arrive over the stream
	r.GET("/", func(c *gin.Context) {
		data := s.pageData()
		data["progress"] = 0
		data["reading"] = s.opts.Formatter.Format(s.opts.Clock.Now())
		c.HTML(http.StatusOK, "index.html", data)
	})

	r.GET("/loading/stream", s.streamLoading)

	r.GET("/profile", func(c *gin.Context) {
		c.HTML(http.StatusOK, "profile.html", s.pageData())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) pageData() gin.H {
	top, bottom := s.opts.Profile.SkillRows()
	return gin.H{
		"lang":         s.opts.Lang,
		"profile":      s.opts.Profile,
		"skillsTop":    top,
		"skillsBottom": bottom,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled. Open loading
// streams see ctx as their request context, so they end on shutdown too.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("Shutting down portfolio server")
		return srv.Shutdown(shutdownCtx)
	}
}
