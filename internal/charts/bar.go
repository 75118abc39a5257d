package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ospreyhr/attriview/internal/shared"
)

const defaultBarWidth = 40

// BarChart renders labeled horizontal bars. Colors holds one token for the
// whole chart or one per category, cycled when shorter than the data.
type BarChart struct {
	Title  string
	Colors []string
	Width  int

	// Max pins the scale so animated repaints don't rescale mid-sweep.
	// Zero means scale to the largest value in the render call.
	Max float64
}

// Render draws one bar per label. Values and labels are parallel; label
// order is preserved exactly as given.
func (b BarChart) Render(labels []string, values []float64) string {
	width := b.Width
	if width <= 0 {
		width = defaultBarWidth
	}

	max := b.Max
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var sb strings.Builder
	if b.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(b.Title))
		sb.WriteString("\n")
	}

	for i, label := range labels {
		v := 0.0
		if i < len(values) {
			v = values[i]
		}

		cells := 0
		if max > 0 {
			cells = int(v / max * float64(width))
		}
		if cells > width {
			cells = width
		}

		bar := strings.Repeat("█", cells)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(b.color(i)))
		display := math.Round(v*1e4) / 1e4
		fmt.Fprintf(&sb, "%-*s %s %s\n", labelWidth, label, style.Render(bar), shared.FormatFloat(display))
	}

	return sb.String()
}

func (b BarChart) color(i int) string {
	if len(b.Colors) == 0 {
		return "#FFFFFF"
	}
	return b.Colors[i%len(b.Colors)]
}
