package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"diffsim/internal/diffusion"
)

const defaultFrameRate = 30

type TickMsg time.Time

// Model steps the simulation between frames and renders the evolving
// profile.
type Model struct {
	params        diffusion.Params
	stepper       *diffusion.Stepper
	grid          diffusion.Grid
	initial       diffusion.Field
	totalSteps    int
	stepsPerFrame int
	frameRate     int
	running       bool
}

// NewModel prepares a live view of a run. The setup is validated the same
// way a batch run is: invalid parameters or an unstable timestep fail here,
// before the program starts.
func NewModel(p diffusion.Params, cfg diffusion.Config, frameRate int) (Model, error) {
	x, err := diffusion.NewGrid(p.Length, p.Spacing)
	if err != nil {
		return Model{}, err
	}
	c0 := diffusion.StepProfile(x, p.SplitPoint(), p.CLeft, p.CRight)

	dt := cfg.Dt
	if dt == 0 {
		dt = diffusion.StableStep(p.Spacing, p.Diffusivity)
	}

	stepper, err := diffusion.NewStepper(p, dt, c0)
	if err != nil {
		return Model{}, err
	}

	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}

	// Pace the run so the whole evolution plays out in a few seconds,
	// with at least one step per frame.
	stepsPerFrame := cfg.Steps / (frameRate * 5)
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}

	return Model{
		params:        p,
		stepper:       stepper,
		grid:          x,
		initial:       c0.Clone(),
		totalSteps:    cfg.Steps,
		stepsPerFrame: stepsPerFrame,
		frameRate:     frameRate,
		running:       true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation between frames.
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
		case "+", "=":
			m.stepsPerFrame *= 2
		case "-", "_":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerFrame && m.stepper.Steps() < m.totalSteps; i++ {
				m.stepper.Step()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) reset() {
	dt := m.stepper.Dt()
	stepper, err := diffusion.NewStepper(m.params, dt, m.initial)
	if err != nil {
		// The same inputs were accepted at construction.
		return
	}
	m.stepper = stepper
	m.running = true
}

// View renders the current profile and run statistics.
func (m Model) View() string {
	c := m.stepper.Field()

	status := "RUNNING"
	if m.stepper.Steps() >= m.totalSteps {
		status = "DONE"
	} else if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("1D DIFFUSION") + "\n")
	s.WriteString(RenderProfile(c, fmt.Sprintf("C(x) at t=%.4fs", m.stepper.Time())))
	s.WriteString("\n\n")
	s.WriteString(statLine("status", "%s", status) + "\n")
	s.WriteString(statLine("step", "%d / %d", m.stepper.Steps(), m.totalSteps) + "\n")
	s.WriteString(statLine("dt", "%.6fs", m.stepper.Dt()) + "\n")
	s.WriteString(statLine("D*dt/dx^2", "%.4f", m.stepper.Ratio()) + "\n")
	s.WriteString(statLine("range", "[%.3f, %.3f]", c.Min(), c.Max()) + "\n")
	s.WriteString(statLine("speed", "%d steps/frame", m.stepsPerFrame) + "\n")
	s.WriteString(helpStyle.Render("space: pause  r: reset  +/-: speed  q: quit"))
	return s.String()
}
