package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rigidsim/internal/config"
	"github.com/san-kum/rigidsim/internal/engine"
	"github.com/san-kum/rigidsim/internal/metrics"
)

const (
	canvasW   = 72
	canvasH   = 22
	frameRate = 30
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

type Model struct {
	scenario *config.Scenario
	eng      *engine.Engine
	kinetic  *metrics.Kinetic

	paused  bool
	done    bool
	err     error
	history []float64

	minX, maxX float64
	minY, maxY float64
}

func NewLive(s *config.Scenario) (*Model, error) {
	m := &Model{scenario: s, kinetic: metrics.NewKinetic()}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) reset() error {
	if m.eng != nil {
		m.eng.Shutdown()
	}
	eng, _, err := m.scenario.Build()
	if err != nil {
		return err
	}
	m.eng = eng
	m.kinetic.Reset()
	eng.AddMetric(m.kinetic)
	m.paused = false
	m.done = false
	m.history = m.history[:0]
	m.bounds()
	return nil
}

// bounds fixes the world window from the initial AABBs so the camera does
// not swim while bodies move.
func (m *Model) bounds() {
	m.minX, m.maxX = -10, 10
	m.minY, m.maxY = -2, 12
	items, err := m.eng.Snapshot()
	if err != nil || len(items) == 0 {
		return
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, it := range items {
		box := it.Body.AABB()
		minX = math.Min(minX, box.Min.X())
		maxX = math.Max(maxX, box.Max.X())
		minY = math.Min(minY, box.Min.Y())
		maxY = math.Max(maxY, box.Max.Y())
	}
	m.minX, m.maxX = minX-1, maxX+1
	m.minY, m.maxY = minY-1, maxY+1
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			if err := m.reset(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil
	case tickMsg:
		if !m.paused && !m.done {
			if err := m.advance(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, tick()
	}
	return m, nil
}

// advance runs enough fixed steps to keep the view near real time.
func (m *Model) advance() error {
	steps := int(1 / (frameRate * m.scenario.Dt))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		if m.eng.Step() >= m.scenario.Steps {
			m.done = true
			return nil
		}
		if err := m.eng.Update(m.scenario.Dt); err != nil {
			return err
		}
	}
	m.history = append(m.history, m.kinetic.Value())
	if len(m.history) > canvasW {
		m.history = m.history[len(m.history)-canvasW:]
	}
	return nil
}

func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var b strings.Builder
	b.WriteString(cyan.Render(fmt.Sprintf(" rigidsim [%s]", m.scenario.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.renderCanvas())
	b.WriteString("\n")

	status := green.Render("running")
	if m.paused {
		status = yellow.Render("paused")
	} else if m.done {
		status = dim.Render("finished")
	}
	b.WriteString(fmt.Sprintf(" %s  %s  %s  %s\n",
		status,
		white.Render(fmt.Sprintf("step %d/%d", m.eng.Step(), m.scenario.Steps)),
		white.Render(fmt.Sprintf("t=%.2fs", m.eng.Time())),
		white.Render(fmt.Sprintf("bodies %d", m.eng.BodyCount())),
	))
	b.WriteString(dim.Render(fmt.Sprintf(" kinetic energy %.3f J", m.kinetic.Value())))
	b.WriteString("\n")

	if len(m.history) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(canvasW),
			asciigraph.Caption("kinetic energy"),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(" space pause  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCanvas projects each body's AABB onto the XY plane.
func (m *Model) renderCanvas() string {
	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	items, err := m.eng.Snapshot()
	if err == nil {
		for _, it := range items {
			box := it.Body.AABB()
			glyph := 'o'
			if it.Body.Static {
				glyph = '#'
			}
			x0, y0 := m.project(box.Min.X(), box.Max.Y())
			x1, y1 := m.project(box.Max.X(), box.Min.Y())
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					if x >= 0 && x < canvasW && y >= 0 && y < canvasH {
						grid[y][x] = glyph
					}
				}
			}
		}
	}

	var b strings.Builder
	border := dim.Render(" +" + strings.Repeat("-", canvasW) + "+")
	b.WriteString(border)
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(dim.Render(" |"))
		b.WriteString(white.Render(string(row)))
		b.WriteString(dim.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}

func (m *Model) project(wx, wy float64) (int, int) {
	x := int((wx - m.minX) / (m.maxX - m.minX) * float64(canvasW-1))
	y := int((m.maxY - wy) / (m.maxY - m.minY) * float64(canvasH-1))
	return x, y
}

// Run blocks until the view quits.
func Run(s *config.Scenario) error {
	m, err := NewLive(s)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}
