package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			m.step()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.Select):
			m.selected = 1 - m.selected
			m.status = "selected " + m.pair[m.selected].Id
		case key.Matches(msg, m.keys.Up):
			m.move(mgl64.Vec2{0, moveStep})
		case key.Matches(msg, m.keys.Down):
			m.move(mgl64.Vec2{0, -moveStep})
		case key.Matches(msg, m.keys.Left):
			m.move(mgl64.Vec2{-moveStep, 0})
		case key.Matches(msg, m.keys.Right):
			m.move(mgl64.Vec2{moveStep, 0})
		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < 16 {
				m.zoom *= 1.25
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > 0.1 {
				m.zoom /= 1.25
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}
