// Package tui renders the portfolio in a terminal with Bubble Tea. The
// splash screen runs on a scheduler loop and reaches the model as messages.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shubham-kumr/portfolio/internal/loading"
	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/profile"
)

// progressMsg carries a new loading counter value.
type progressMsg int

// clockMsg carries a fresh zone clock reading.
type clockMsg localtime.Reading

// profileMsg signals the switch to the profile view.
type profileMsg struct{}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for both views.
type Model struct {
	profile  *profile.Profile
	view     loading.View
	progress int
	reading  localtime.Reading
	width    int
	height   int

	// viewport scrolls the profile page, which is taller than most terminals.
	viewport viewport.Model
}

// NewModel returns a model showing the loading view at 0.
func NewModel(p *profile.Profile, first localtime.Reading) Model {
	return Model{
		profile:  p,
		view:     loading.ViewLoading,
		reading:  first,
		width:    defaultWidth,
		height:   defaultHeight,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		if m.view == loading.ViewProfile {
			m.setProfileContent()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.view == loading.ViewProfile {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case progressMsg:
		if int(msg) > m.progress {
			m.progress = int(msg)
		}
	case clockMsg:
		if m.view == loading.ViewLoading {
			m.reading = localtime.Reading(msg)
		}
	case profileMsg:
		m.view = loading.ViewProfile
		m.setProfileContent()
		m.viewport.GotoTop()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.view == loading.ViewProfile {
		return m.viewport.View()
	}
	return m.loadingView()
}

func (m Model) loadingView() string {
	lines := []string{
		progressStyle.Render(fmt.Sprintf("%d", m.progress)),
		textStyle.Render(m.reading.Date),
		textStyle.Render(m.reading.Time),
		textStyle.Render(m.profile.Location.Coordinates),
		textStyle.Render(m.profile.Location.City),
		"",
		textStyle.Render(m.profile.Name),
	}
	block := strings.Join(lines, "\n")

	// Anchor to the bottom-left corner like the web splash.
	if m.height > len(lines)+2 {
		block = strings.Repeat("\n", m.height-len(lines)-2) + block
	}
	return loadingStyle.Render(block)
}

// setProfileContent wraps the profile to the viewport width up front so the
// viewport's line count matches what is drawn.
func (m *Model) setProfileContent() {
	content := m.profileContent()
	if m.viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(m.viewport.Width).Render(content)
	}
	m.viewport.SetContent(content)
}

func (m Model) profileContent() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.profile.Greeting))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.profile.Tagline))
	b.WriteString("\n\n")

	for _, l := range m.profile.Links {
		b.WriteString(linkStyle.Render(l.Label+": "+l.Href) + "\n")
	}
	if m.profile.Resume != "" {
		b.WriteString(linkStyle.Render("Resume: "+m.profile.Resume) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("projects") + "\n")
	for _, p := range m.profile.Projects {
		b.WriteString(cardStyle.Render(p.Title+"\n"+dimStyle.Render(p.Description)+"\n"+linkStyle.Render(p.Href)) + "\n")
	}

	top, bottom := m.profile.SkillRows()
	b.WriteString("\n" + headingStyle.Render("Skills") + "\n")
	b.WriteString(textStyle.Render(strings.Join(top, "  ·  ")) + "\n")
	b.WriteString(textStyle.Render(strings.Join(bottom, "  ·  ")) + "\n")

	b.WriteString("\n" + headingStyle.Render("Get in Touch") + "\n")
	if m.profile.ContactBlurb != "" {
		b.WriteString(dimStyle.Render(m.profile.ContactBlurb) + "\n")
	}
	b.WriteString(linkStyle.Render(m.profile.Email) + "\n\n")
	b.WriteString(dimStyle.Render("↑/↓ scroll · q to quit"))

	return b.String()
}
