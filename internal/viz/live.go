package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avasil/metadyn/internal/bias"
	"github.com/avasil/metadyn/internal/landscape"
	"github.com/avasil/metadyn/internal/sampler"
)

const (
	historyCapacity = 600
	stepsPerTick    = 10
	profileWidth    = 60
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives a sampling run interactively, stepping the walker a few
// times per frame and plotting the trajectory and the growing bias.
type Model struct {
	pot     landscape.Potential
	smp     sampler.Sampler
	meta    *bias.Metadynamics
	potName string

	x       float64
	startX  float64
	step    int
	running bool

	positions []float64
}

func NewModel(pot landscape.Potential, smp sampler.Sampler, meta *bias.Metadynamics, start float64, potName string) Model {
	return Model{
		pot:       pot,
		smp:       smp,
		meta:      meta,
		potName:   potName,
		x:         start,
		startX:    start,
		running:   true,
		positions: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerTick; i++ {
				m.advance()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) advance() {
	m.x = m.smp.Step(m.pot, m.x)
	if m.meta != nil {
		m.meta.NotifyStep(m.x)
	}
	m.step++

	m.positions = append(m.positions, m.x)
	if len(m.positions) > historyCapacity {
		m.positions = m.positions[1:]
	}
}

func (m *Model) reset() {
	m.x = m.startX
	m.step = 0
	m.positions = m.positions[:0]
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(strings.ToUpper(m.potName)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n")
	} else {
		s.WriteString("PAUSED\n")
	}

	if len(m.positions) > 1 {
		chart := asciigraph.Plot(m.positions, asciigraph.Height(8), asciigraph.Width(profileWidth), asciigraph.Caption("Position"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.meta != nil {
		profile := downsample(m.meta.Grid().Energy(), profileWidth)
		if len(profile) > 1 {
			chart := asciigraph.Plot(profile, asciigraph.Height(6), asciigraph.Width(profileWidth), asciigraph.Caption("Bias profile"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.step)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%.4f", m.x)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.pot.Energy(m.x))) + "\n")
	if m.meta != nil {
		s.WriteString(labelStyle.Render("Deposits") + valueStyle.Render(fmt.Sprintf("%d", m.meta.Updates())) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  Q:Quit"))
	return s.String()
}

// downsample keeps every k-th value so wide grids fit the chart width.
func downsample(vals []float64, maxPoints int) []float64 {
	if len(vals) <= maxPoints {
		return vals
	}
	stride := (len(vals) + maxPoints - 1) / maxPoints
	out := make([]float64, 0, maxPoints)
	for i := 0; i < len(vals); i += stride {
		out = append(out, vals[i])
	}
	return out
}
