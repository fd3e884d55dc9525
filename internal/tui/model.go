// Package tui draws a planar world in the terminal and steps the GJK search
// between two of its bodies one iteration at a time.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/akmonengine/planar"
	"github.com/akmonengine/planar/gjk"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var ErrNotEnoughBodies = errors.New("tui: the world needs at least two bodies")

const (
	// micro-pixels per world unit at zoom 1
	defaultScale = 10.0
	// directions sampled for the Minkowski outline
	outlineSamples = 630
	// samples for the circle boundaries
	boundarySamples = 96
	moveStep        = 0.25
)

type keyMap struct {
	Step    key.Binding
	Reset   key.Binding
	Select  key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Reset, k.Select, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Reset, k.Select},
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Step:    key.NewBinding(key.WithKeys(" ", "n"), key.WithHelp("space/n", "step")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Select:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select shape")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	width  int
	height int

	zoom float64

	status string
	keys   keyMap
	help   help.Model

	world  *planar.World
	logger *zap.Logger

	// the two bodies under inspection, and which one the arrows move
	pair     [2]*planar.Body
	selected int

	solver   *gjk.Solver
	err      error
	outline  []mgl64.Vec2
	overlaps []planar.Overlap
}

// New inspects the first two bodies of world. A nil logger disables logging.
func New(world *planar.World, logger *zap.Logger) (Model, error) {
	if len(world.Bodies) < 2 {
		return Model{}, ErrNotEnoughBodies
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		zoom:   1.0,
		keys:   defaultKeyMap(),
		help:   help.New(),
		world:  world,
		logger: logger,
		pair:   [2]*planar.Body{world.Bodies[0], world.Bodies[1]},
		solver: &gjk.Solver{},
	}
	m.reset()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// reset restarts the search on the current pair and refreshes the world overlaps
func (m *Model) reset() {
	a, b := m.pair[0].Shape, m.pair[1].Shape

	m.err = m.solver.Reset(a, b, m.world.MaxIterations)
	if m.err != nil {
		m.outline = nil
		m.status = "invalid shape: " + m.err.Error()
		m.logger.Error("solver reset", zap.Error(m.err))
		return
	}
	m.outline = gjk.Outline(a, b, outlineSamples)

	m.overlaps, m.err = m.world.Detect(context.Background())
	if m.err != nil {
		m.status = "detect: " + m.err.Error()
		m.logger.Error("detect", zap.Error(m.err))
		return
	}

	m.status = fmt.Sprintf("%s vs %s: %s", m.pair[0].Id, m.pair[1].Id, m.solver.Outcome())
}

// step runs one GJK iteration on the current pair
func (m *Model) step() {
	if m.err != nil {
		return
	}
	before := m.solver.Outcome()
	outcome := m.solver.Step()
	m.status = fmt.Sprintf("iteration %d: %s", m.solver.Iterations(), outcome)

	if before == gjk.Searching && outcome != gjk.Searching {
		m.logger.Debug("verdict",
			zap.String("bodyA", m.pair[0].Id),
			zap.String("bodyB", m.pair[1].Id),
			zap.Stringer("outcome", outcome),
			zap.Int("iterations", m.solver.Iterations()),
		)
	}
}

// move translates the selected body and restarts the search
func (m *Model) move(delta mgl64.Vec2) {
	m.pair[m.selected].Translate(delta)
	m.reset()
}

// scale is the number of micro-pixels per world unit
func (m Model) scale() float64 {
	return defaultScale * m.zoom
}
