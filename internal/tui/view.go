package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/akmonengine/planar/gjk"
	"github.com/akmonengine/planar/shape"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
)

const panelWidth = 36

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth := max(panelWidth+10, m.width)

	header := titleStyle.Render(" planar ─ GJK overlap viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	help := m.help.View(m.keys)
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, help)

	contentHeight := max(4, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	canvasWidth := contentWidth - panelWidth - 1

	c := newCanvas(canvasWidth, contentHeight)
	m.draw(c)
	canvasView := lipgloss.NewStyle().Width(canvasWidth).Height(contentHeight).Render(c.render())

	panel := boxStyle.Width(panelWidth - 2).Render(m.renderPanel())

	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, " ", panel)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// toMicro maps a world point to canvas micro-pixels, origin at the canvas center
func (m Model) toMicro(c *canvas, p mgl64.Vec2) (int, int) {
	w, h := c.microSize()
	s := m.scale()
	x := float64(w/2) + p.X()*s
	y := float64(h/2) - p.Y()*s
	return int(math.Round(x)), int(math.Round(y))
}

func (m Model) draw(c *canvas) {
	m.drawAxes(c)

	for _, p := range m.outline {
		mx, my := m.toMicro(c, p)
		c.setPixel(mx, my, layerOutline)
	}

	for _, body := range m.world.Bodies {
		if body == m.pair[0] || body == m.pair[1] {
			continue
		}
		m.drawShape(c, body.Shape, layerAxes)
	}
	m.drawShape(c, m.pair[1].Shape, layerShapeB)
	m.drawShape(c, m.pair[0].Shape, layerShapeA)

	if m.err == nil {
		m.drawSimplex(c)
	}
}

func (m Model) drawAxes(c *canvas) {
	w, h := c.microSize()
	ox, oy := m.toMicro(c, mgl64.Vec2{})
	c.drawLine(0, oy, w-1, oy, layerAxes)
	c.drawLine(ox, 0, ox, h-1, layerAxes)

	// unit ticks, skipped when they would merge
	s := m.scale()
	if s < 4 {
		return
	}
	for i := 1; float64(i)*s < float64(max(w, h)); i++ {
		d := int(math.Round(float64(i) * s))
		for _, x := range []int{ox - d, ox + d} {
			c.setPixel(x, oy-1, layerAxes)
			c.setPixel(x, oy+1, layerAxes)
		}
		for _, y := range []int{oy - d, oy + d} {
			c.setPixel(ox-1, y, layerAxes)
			c.setPixel(ox+1, y, layerAxes)
		}
	}
}

func (m Model) drawShape(c *canvas, s shape.Shape, l layer) {
	points := shape.Boundary(s, boundarySamples)
	for i, p := range points {
		q := points[(i+1)%len(points)]
		x0, y0 := m.toMicro(c, p)
		x1, y1 := m.toMicro(c, q)
		c.drawLine(x0, y0, x1, y1, l)
	}
}

func (m Model) drawSimplex(c *canvas) {
	simplex := m.solver.Simplex()
	if simplex.Count >= 2 {
		ax, ay := m.toMicro(c, simplex.A())
		bx, by := m.toMicro(c, simplex.B())
		c.drawLine(ax, ay, bx, by, layerSimplex)
	}
	if m.solver.Iterations() > 0 {
		cx, cy := m.toMicro(c, m.solver.Support())
		c.mark(cx, cy, 'C', pointCStyle)
	}
	if simplex.Count >= 2 {
		bx, by := m.toMicro(c, simplex.B())
		c.mark(bx, by, 'B', pointBStyle)
	}
	if simplex.Count >= 1 {
		ax, ay := m.toMicro(c, simplex.A())
		c.mark(ax, ay, 'A', pointAStyle)
	}
}

func (m Model) renderPanel() string {
	lines := []string{
		titleStyle.Render("pair"),
		fmt.Sprintf("%s vs %s", m.pair[0].Id, m.pair[1].Id),
		dimStyle.Render("moving " + m.pair[m.selected].Id),
		"",
	}

	if m.err != nil {
		lines = append(lines, outcomeStyles["inconclusive"].Render("error"), m.err.Error())
		return strings.Join(lines, "\n")
	}

	outcome := m.solver.Outcome()
	simplex := m.solver.Simplex()
	lines = append(lines,
		titleStyle.Render("gjk"),
		"outcome   "+renderOutcome(outcome),
		fmt.Sprintf("iteration %d", m.solver.Iterations()),
		"direction "+formatVec(m.solver.Direction()),
	)
	if simplex.Count >= 1 {
		lines = append(lines, pointAStyle.Render("A")+"         "+formatVec(simplex.A()))
	}
	if simplex.Count >= 2 {
		lines = append(lines, pointBStyle.Render("B")+"         "+formatVec(simplex.B()))
	}
	if m.solver.Iterations() > 0 {
		lines = append(lines, pointCStyle.Render("C")+"         "+formatVec(m.solver.Support()))
	}

	lines = append(lines, "", titleStyle.Render("world"))
	if len(m.overlaps) == 0 {
		lines = append(lines, dimStyle.Render("no overlaps"))
	}
	for _, o := range m.overlaps {
		lines = append(lines, fmt.Sprintf("%s/%s %s", o.BodyA.Id, o.BodyB.Id, renderOutcome(o.Outcome)))
	}

	return strings.Join(lines, "\n")
}

func renderOutcome(o gjk.Outcome) string {
	return outcomeStyles[o.String()].Render(o.String())
}

func formatVec(v mgl64.Vec2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X(), v.Y())
}
