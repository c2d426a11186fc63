package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/metrics"
)

const (
	graphWidth      = 70
	graphHeight     = 14
	historyCapacity = 200
)

type TickMsg time.Time

// LiveModel advances a system on a timer and draws its density.
type LiveModel struct {
	system        dynamo.System
	dt, t         float64
	step          int
	maxSteps      int
	stepsPerFrame int
	frameRate     int
	running       bool
	mass0         float64
	spread        []float64
	err           error
}

// NewLiveModel animates system for maxSteps steps (unbounded when zero),
// taking stepsPerFrame steps per frame at frameRate frames per second.
func NewLiveModel(system dynamo.System, dt float64, maxSteps, stepsPerFrame, frameRate int) LiveModel {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	if frameRate < 1 {
		frameRate = 30
	}
	p := system.Density()
	return LiveModel{
		system:        system,
		dt:            dt,
		maxSteps:      maxSteps,
		stepsPerFrame: stepsPerFrame,
		frameRate:     frameRate,
		running:       true,
		mass0:         p.Sum(),
		spread:        []float64{metrics.SpreadOf(p)},
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running && !m.done()
		case "n":
			if !m.running {
				m.advance(1)
			}
		case "+", "=":
			m.stepsPerFrame *= 2
		case "-":
			m.stepsPerFrame = max(m.stepsPerFrame/2, 1)
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.advance(m.stepsPerFrame)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) advance(steps int) {
	for i := 0; i < steps && !m.done(); i++ {
		if err := m.system.Advance(); err != nil {
			m.err = err
			m.running = false
			return
		}
		m.step++
		m.t += m.dt
	}
	m.spread = append(m.spread, metrics.SpreadOf(m.system.Density()))
	if len(m.spread) > historyCapacity {
		m.spread = m.spread[len(m.spread)-historyCapacity:]
	}
	if m.done() {
		m.running = false
	}
}

func (m LiveModel) done() bool {
	return m.err != nil || (m.maxSteps > 0 && m.step >= m.maxSteps)
}

// Step returns the number of steps taken so far.
func (m LiveModel) Step() int { return m.step }

// Running reports whether the animation is advancing.
func (m LiveModel) Running() bool { return m.running }

func (m LiveModel) Err() error { return m.err }

func (m LiveModel) View() string {
	p := m.system.Density()

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.err != nil:
		status = StatusError.Render("ERROR")
	case m.done():
		status = StatusPaused.Render("DONE")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}

	header := Title.Render(fmt.Sprintf("%s ring, %d sites", m.system.Name(), m.system.Sites())) + "  " + status
	graph := GraphStyle.Render(PlotDensity(p, fmt.Sprintf("density at t=%.4f", m.t), graphWidth, graphHeight))

	var stats strings.Builder
	stats.WriteString(line("time", fmt.Sprintf("%.4f", m.t)))
	stats.WriteString(line("step", fmt.Sprintf("%d", m.step)))
	stats.WriteString(line("steps/frame", fmt.Sprintf("%d", m.stepsPerFrame)))
	stats.WriteString(line("mass", fmt.Sprintf("%.6f", p.Sum())))
	if m.mass0 != 0 {
		stats.WriteString(line("mass drift", fmt.Sprintf("%.2e", (p.Sum()-m.mass0)/m.mass0)))
	}
	stats.WriteString(line("spread", fmt.Sprintf("%.3f", metrics.SpreadOf(p))))
	stats.WriteString(line("bounded", fmt.Sprintf("%v", p.InUnitInterval())))
	stats.WriteString("\n" + Subtle.Render("spread ") + Sparkline(m.spread, 40))
	if m.maxSteps > 0 {
		stats.WriteString("\n" + ProgressBar(float64(m.step)/float64(m.maxSteps), 40))
	}
	if m.err != nil {
		stats.WriteString("\n" + StatusError.Render(m.err.Error()))
	}

	help := KeyHint.Render("space pause  n step  +/- speed  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, graph, Panel.Render(stats.String()), help)
}

// RunLive starts the Bubble Tea program and blocks until it exits.
func RunLive(m LiveModel) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
