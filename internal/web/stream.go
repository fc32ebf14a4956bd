package web

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/scheduler"
	"github.com/shubham-kumr/portfolio/internal/splash"
)

// streamLoading runs one splash screen per request. The handler goroutine
// is the screen's loop, so every event is written from here and nothing
// fires once the request returns.
func (s *Server) streamLoading(c *gin.Context) {
	id := uuid.NewString()
	loop := scheduler.NewLoop()
	out := &sseRenderer{c: c, server: s, loop: loop}
	screen := splash.NewScreen(loop, s.opts.Formatter, out, s.opts.Timings)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	log.Printf("Loading stream %s opened", id)
	screen.Activate()
	err := loop.Run(c.Request.Context())
	screen.Deactivate()

	if err != nil {
		log.Printf("Loading stream %s closed by client at %d%%", id, screen.Progress())
		return
	}
	log.Printf("Loading stream %s finished", id)
}

// sseRenderer turns screen updates into server-sent events.
type sseRenderer struct {
	c      *gin.Context
	server *Server
	loop   *scheduler.Loop
}

func (r *sseRenderer) send(event, data string) {
	r.c.SSEvent(event, data)
	r.c.Writer.Flush()
}

func (r *sseRenderer) Progress(value int) {
	r.send("progress", strconv.Itoa(value))
}

func (r *sseRenderer) Clock(reading localtime.Reading) {
	r.send("date", reading.Date)
	r.send("time", reading.Time)
}

// Profile sends the rendered profile and ends the stream.
func (r *sseRenderer) Profile() {
	var buf bytes.Buffer
	if err := r.server.tmpl.ExecuteTemplate(&buf, "profile-content", r.server.pageData()); err != nil {
		log.Printf("Error rendering profile: %v", err)
	} else {
		r.send("profile", buf.String())
	}
	r.loop.Stop()
}
