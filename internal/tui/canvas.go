package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// layer orders what is drawn on a cell; the highest layer picks the cell color
type layer uint8

const (
	layerNone layer = iota
	layerAxes
	layerOutline
	layerShapeB
	layerShapeA
	layerSimplex
)

// canvas is a braille buffer: every terminal cell holds 2x4 micro-pixels
type canvas struct {
	w, h    int       // in cells
	m       [][]uint8 // per-cell 8-bit mask
	layers  [][]layer
	markers map[[2]int]marker
}

type marker struct {
	r     rune
	style lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	w, h = max(1, w), max(1, h)
	m := make([][]uint8, h)
	layers := make([][]layer, h)
	for i := range m {
		m[i] = make([]uint8, w)
		layers[i] = make([]layer, w)
	}
	return &canvas{w: w, h: h, m: m, layers: layers, markers: make(map[[2]int]marker)}
}

// microSize returns the canvas size in micro-pixels
func (c *canvas) microSize() (int, int) {
	return c.w * 2, c.h * 4
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (c *canvas) setPixel(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.m[cy][cx] |= bit
	c.layers[cy][cx] = max(c.layers[cy][cx], l)
}

// drawLine draws a line on the microgrid using Bresenham
func (c *canvas) drawLine(x0, y0, x1, y1 int, l layer) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// mark writes a letter over the cell holding micro-pixel (mx, my)
func (c *canvas) mark(mx, my int, r rune, style lipgloss.Style) {
	if mx < 0 || my < 0 || mx/2 >= c.w || my/4 >= c.h {
		return
	}
	c.markers[[2]int{mx / 2, my / 4}] = marker{r: r, style: style}
}

// toLines returns the unstyled rows of the canvas
func (c *canvas) toLines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			row[x] = c.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// render returns the rows with runs of same-layer cells styled together
func (c *canvas) render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		var run []rune
		runLayer := layerNone
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(layerStyles[runLayer].Render(string(run)))
				run = run[:0]
			}
		}

		for x := 0; x < c.w; x++ {
			if mk, ok := c.markers[[2]int{x, y}]; ok {
				flush()
				sb.WriteString(mk.style.Render(string(mk.r)))
				continue
			}
			l := c.layers[y][x]
			if l != runLayer {
				flush()
				runLayer = l
			}
			run = append(run, c.glyph(x, y))
		}
		flush()

		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *canvas) glyph(x, y int) rune {
	if mk, ok := c.markers[[2]int{x, y}]; ok {
		return mk.r
	}
	mask := c.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
