package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	// A is red, B green, C blue, the Minkowski outline violet
	pointAStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	pointBStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	pointCStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)

	outcomeStyles = map[string]lipgloss.Style{
		"separated":    lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		"overlapping":  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		"inconclusive": lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		"searching":    dimStyle,
	}

	layerStyles = map[layer]lipgloss.Style{
		layerNone:    lipgloss.NewStyle(),
		layerAxes:    dimStyle,
		layerOutline: lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
		layerShapeB:  lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
		layerShapeA:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		layerSimplex: lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
	}
)
