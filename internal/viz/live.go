package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbital/internal/celestial"
	"github.com/san-kum/orbital/internal/system"
)

const (
	canvasWidth     = 80
	canvasHeight    = 36
	historyCapacity = 600

	// View half-widths in AU, matching the inner/outer split of the
	// catalog: 3 AU frames the terrestrial planets, 50 AU frames
	// everything out to Pluto.
	innerLimitAU = 3.0
	outerLimitAU = 50.0
)

type TickMsg time.Time

// Session drives a System from an animation loop. It owns everything the
// core deliberately does not: pause state, the time-scale multiplier,
// the focused body, the view window, and trail visibility.
type Session struct {
	sys   *system.System
	dt    float64 // base sub-step [s]
	batch int     // sub-steps per tick
	fps   int

	paused     bool
	timeScale  float64
	focus      int
	innerView  bool
	showTrails bool

	canvas     *Canvas
	energyHist []float64
	fatal      error
}

// NewSession wires a session around an initialized System. dt is the base
// physics sub-step, batch the number of sub-steps per animation tick.
func NewSession(sys *system.System, dt float64, batch, fps int) *Session {
	if batch < 1 {
		batch = 1
	}
	if fps < 1 {
		fps = 30
	}
	return &Session{
		sys:        sys,
		dt:         dt,
		batch:      batch,
		fps:        fps,
		timeScale:  1.0,
		focus:      0,
		innerView:  true,
		showTrails: true,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		energyHist: make([]float64, 0, historyCapacity),
	}
}

// Run starts the bubbletea program and blocks until quit.
func Run(s *Session) error {
	_, err := tea.NewProgram(s, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	return s.fatal
}

func (s *Session) Init() tea.Cmd {
	return s.tick()
}

func (s *Session) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(s.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case " ":
			s.paused = !s.paused
		case "+", "=":
			s.timeScale = math.Min(s.timeScale*2, 64)
		case "-", "_":
			s.timeScale = math.Max(s.timeScale/2, 1.0/64)
		case "tab":
			s.focus = (s.focus + 1) % s.sys.BodyCount()
		case "shift+tab":
			s.focus = (s.focus + s.sys.BodyCount() - 1) % s.sys.BodyCount()
		case "i":
			s.innerView = !s.innerView
		case "t":
			s.showTrails = !s.showTrails
		}
	case TickMsg:
		if !s.paused && s.fatal == nil {
			// Pause and speed never reach the core: they only shape
			// the dt handed to Simulate here.
			dt := s.dt * s.timeScale
			if err := s.sys.Simulate(float64(s.batch)*dt, dt); err != nil {
				s.fatal = err
				return s, tea.Quit
			}
			s.energyHist = append(s.energyHist, s.sys.EnergyError())
			if len(s.energyHist) > historyCapacity {
				s.energyHist = s.energyHist[1:]
			}
		}
		s.draw()
		return s, s.tick()
	}
	return s, nil
}

// project maps AU coordinates to canvas sub-pixels for the current view.
func (s *Session) project(xAU, yAU float64) (int, int) {
	limit := outerLimitAU
	if s.innerView {
		limit = innerLimitAU
	}
	cw, ch := float64(canvasWidth*2), float64(canvasHeight*4)
	px := (xAU/limit + 1) / 2 * cw
	py := (1 - yAU/limit) / 2 * ch
	return int(px), int(py)
}

func (s *Session) draw() {
	s.canvas.Clear()

	if s.showTrails {
		for i := 0; i < s.sys.BodyCount(); i++ {
			traj, err := s.sys.TrajectoryAU(i)
			if err != nil || len(traj) < 2 {
				continue
			}
			prevX, prevY := s.project(traj[0].X, traj[0].Y)
			for _, p := range traj[1:] {
				x, y := s.project(p.X, p.Y)
				s.canvas.Line(prevX, prevY, x, y)
				prevX, prevY = x, y
			}
		}
	}

	for i, p := range s.sys.PositionsAU() {
		x, y := s.project(p.X, p.Y)
		if i == 0 {
			s.canvas.Blob(x, y, 1)
			continue
		}
		s.canvas.Set(x, y)
	}
}

func (s *Session) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("SOLAR SYSTEM") + "\n")
	status := "RUNNING"
	if s.fatal != nil {
		status = warnStyle.Render("FATAL: " + s.fatal.Error())
	} else if s.paused {
		status = "PAUSED"
	}
	b.WriteString(status + "\n\n")

	if len(s.energyHist) > 1 {
		chart := asciigraph.Plot(s.energyHist,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("energy drift"))
		b.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	days := s.sys.SimulatedDays()
	b.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.1f d (%.3f yr)", days, s.sys.SimulatedYears())) + "\n")
	b.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", s.sys.StepCount())) + "\n")
	b.WriteString(labelStyle.Render("Energy err") + valueStyle.Render(fmt.Sprintf("%.3e", s.sys.EnergyError())) + "\n")
	b.WriteString(labelStyle.Render("Time scale") + valueStyle.Render(fmt.Sprintf("%gx", s.timeScale)) + "\n")
	view := "outer"
	if s.innerView {
		view = "inner"
	}
	b.WriteString(labelStyle.Render("View") + valueStyle.Render(view) + "\n")

	b.WriteString("\n" + focusStyle.Render("> "+s.sys.Names()[s.focus]) + "\n")
	if speed, err := s.sys.Speed(s.focus); err == nil {
		b.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f km/s", speed/1000)) + "\n")
	}
	if dist, err := s.sys.DistanceFromSun(s.focus); err == nil && s.focus != 0 {
		b.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.4f AU", dist/celestial.AU)) + "\n")
	}

	b.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause +/-:Speed Tab:Focus\nI:Inner/Outer T:Trails Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(s.canvas.String()),
		statsStyle.Render(b.String()))
}
