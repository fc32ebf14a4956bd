package tui

import (
	"context"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/profile"
	"github.com/shubham-kumr/portfolio/internal/scheduler"
	"github.com/shubham-kumr/portfolio/internal/splash"
)

// sender is the part of tea.Program the renderer needs.
type sender interface {
	Send(msg tea.Msg)
}

// programRenderer forwards splash updates to the Bubble Tea program.
type programRenderer struct {
	p sender
}

func (r programRenderer) Progress(v int) { r.p.Send(progressMsg(v)) }
func (r programRenderer) Clock(reading localtime.Reading) { r.p.Send(clockMsg(reading)) }
func (r programRenderer) Profile() { r.p.Send(profileMsg{}) }

// Run shows the portfolio in the terminal until the user quits or ctx is
// cancelled. Quitting tears the splash screen down.
func Run(ctx context.Context, p *profile.Profile, f *localtime.Formatter, t splash.Timings, opts ...tea.ProgramOption) error {
	loop := scheduler.NewLoop()
	model := NewModel(p, f.Format(loop.Now()))

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	prog := tea.NewProgram(model, opts...)

	// Log output would tear through the alt screen.
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	loopCtx, cancel := context.WithCancel(ctx)
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		screen := splash.NewScreen(loop, f, programRenderer{p: prog}, t)
		screen.Activate()
		_ = loop.Run(loopCtx)
		screen.Deactivate()
	}()

	_, err := prog.Run()
	cancel()
	<-loopDone
	return err
}
