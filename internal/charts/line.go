package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ospreyhr/attriview/internal/shared"
)

const (
	defaultPlotHeight = 10
	pointSpacing      = 4 // columns between consecutive points
)

// weightMarkers encode observation counts in marker size, smallest to largest.
var weightMarkers = []rune{'·', '∙', '•', '●'}

// Point is one plotted observation group: x position, mean y, and the
// number of rows behind it.
type Point struct {
	X      float64
	Y      float64
	Weight int
}

// LineChart draws a mean line with weight-encoded markers. Gradient colors
// markers from low to high weight.
type LineChart struct {
	Title     string
	Height    int
	LineColor string
	Gradient  []string
}

// Render plots points sorted by X. Markers grow and shift color with Weight;
// the connecting line is interpolated between consecutive points.
func (l LineChart) Render(points []Point) string {
	var sb strings.Builder
	if l.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(l.Title))
		sb.WriteString("\n")
	}
	if len(points) == 0 {
		sb.WriteString("(no data)\n")
		return sb.String()
	}

	height := l.Height
	if height <= 0 {
		height = defaultPlotHeight
	}

	minY, maxY := points[0].Y, points[0].Y
	maxW := 1
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		if p.Weight > maxW {
			maxW = p.Weight
		}
	}

	cols := (len(points)-1)*pointSpacing + 1
	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	row := func(y float64) int {
		if maxY == minY {
			return height / 2
		}
		r := int(math.Round((maxY - y) / (maxY - minY) * float64(height-1)))
		return r
	}

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(l.LineColor))

	// connecting line first, markers paint over it
	for i := 0; i+1 < len(points); i++ {
		r0, r1 := row(points[i].Y), row(points[i+1].Y)
		for step := 1; step < pointSpacing; step++ {
			f := float64(step) / pointSpacing
			r := int(math.Round(float64(r0) + f*float64(r1-r0)))
			grid[r][i*pointSpacing+step] = lineStyle.Render("·")
		}
	}

	for i, p := range points {
		bucket := 0
		if maxW > 1 {
			bucket = (p.Weight - 1) * (len(weightMarkers) - 1) / (maxW - 1)
		}
		marker := string(weightMarkers[bucket])
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(l.gradientColor(bucket)))
		grid[row(p.Y)][i*pointSpacing] = style.Render(marker)
	}

	yLabelWidth := len(shared.FormatFloat(round4(maxY)))
	if w := len(shared.FormatFloat(round4(minY))); w > yLabelWidth {
		yLabelWidth = w
	}

	for r := range grid {
		label := strings.Repeat(" ", yLabelWidth)
		if r == 0 {
			label = fmt.Sprintf("%*s", yLabelWidth, shared.FormatFloat(round4(maxY)))
		} else if r == height-1 {
			label = fmt.Sprintf("%*s", yLabelWidth, shared.FormatFloat(round4(minY)))
		}
		sb.WriteString(label)
		sb.WriteString(" │")
		sb.WriteString(strings.Join(grid[r], ""))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", yLabelWidth))
	sb.WriteString(" └")
	sb.WriteString(strings.Repeat("─", cols))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", yLabelWidth+2))
	sb.WriteString(shared.FormatFloat(points[0].X))
	last := shared.FormatFloat(points[len(points)-1].X)
	pad := cols - len(shared.FormatFloat(points[0].X)) - len(last)
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(last)
	}
	sb.WriteString("\n")

	return sb.String()
}

// RenderLabeled plots categorical values as an evenly spaced line, printing
// the category labels beneath the axis.
func (l LineChart) RenderLabeled(labels []string, values []float64) string {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: float64(i), Y: v, Weight: 1}
	}

	out := l.Render(points)
	if len(labels) == 0 {
		return out
	}

	// swap the numeric x annotations for the first and last label
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > 0 {
		lines[len(lines)-1] = "  " + labels[0] + " … " + labels[len(labels)-1]
	}
	return strings.Join(lines, "\n") + "\n"
}

func (l LineChart) gradientColor(bucket int) string {
	if len(l.Gradient) == 0 {
		return l.LineColor
	}
	if bucket >= len(l.Gradient) {
		bucket = len(l.Gradient) - 1
	}
	return l.Gradient[bucket]
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
