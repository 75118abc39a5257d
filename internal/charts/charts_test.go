package charts

import (
	"strings"
	"testing"
)

func TestBarChart(t *testing.T) {
	t.Run("preserves label order", func(t *testing.T) {
		b := BarChart{Width: 10}
		out := b.Render([]string{"18-19", "20-29", "30-39"}, []float64{5, 12, 3})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 bars, got %d lines", len(lines))
		}
		for i, prefix := range []string{"18-19", "20-29", "30-39"} {
			if !strings.HasPrefix(lines[i], prefix) {
				t.Errorf("line %d: expected prefix %s, got %q", i, prefix, lines[i])
			}
		}
	})

	t.Run("largest value fills the width", func(t *testing.T) {
		b := BarChart{Width: 10}
		out := b.Render([]string{"a", "b"}, []float64{5, 10})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if got := strings.Count(lines[1], "█"); got != 10 {
			t.Errorf("expected 10 cells for max value, got %d", got)
		}
		if got := strings.Count(lines[0], "█"); got != 5 {
			t.Errorf("expected 5 cells for half value, got %d", got)
		}
	})

	t.Run("pinned max keeps scale stable", func(t *testing.T) {
		b := BarChart{Width: 10, Max: 20}
		out := b.Render([]string{"a"}, []float64{10})
		if got := strings.Count(out, "█"); got != 5 {
			t.Errorf("expected 5 cells against pinned max, got %d", got)
		}
	})

	t.Run("zero values render empty bars", func(t *testing.T) {
		b := BarChart{Width: 10}
		out := b.Render([]string{"a", "b"}, []float64{0, 0})
		if strings.Contains(out, "█") {
			t.Error("expected no bar cells for all-zero values")
		}
	})

	t.Run("title", func(t *testing.T) {
		b := BarChart{Title: "Unit Frequency", Width: 10}
		out := b.Render([]string{"HR"}, []float64{1})
		if !strings.Contains(out, "Unit Frequency") {
			t.Error("expected title in output")
		}
	})
}

func TestLineChart(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		out := LineChart{}.Render(nil)
		if !strings.Contains(out, "(no data)") {
			t.Errorf("expected placeholder, got %q", out)
		}
	})

	t.Run("draws one marker per point", func(t *testing.T) {
		l := LineChart{Height: 5}
		points := []Point{
			{X: 2, Y: 0.1, Weight: 1},
			{X: 4, Y: 0.5, Weight: 10},
			{X: 6, Y: 0.3, Weight: 5},
		}
		out := l.Render(points)

		markers := 0
		for _, m := range weightMarkers {
			markers += strings.Count(out, string(m))
		}
		// connecting line also uses '·', so at least one marker per point
		if markers < len(points) {
			t.Errorf("expected at least %d markers, got %d", len(points), markers)
		}

		if !strings.Contains(out, "0.5") {
			t.Error("expected max y annotation")
		}
		if !strings.Contains(out, "0.1") {
			t.Error("expected min y annotation")
		}
	})

	t.Run("weight picks the marker size", func(t *testing.T) {
		l := LineChart{Height: 3}
		out := l.Render([]Point{
			{X: 0, Y: 0, Weight: 1},
			{X: 1, Y: 1, Weight: 100},
		})
		if !strings.Contains(out, string(weightMarkers[0])) {
			t.Error("expected smallest marker for weight 1")
		}
		if !strings.Contains(out, string(weightMarkers[len(weightMarkers)-1])) {
			t.Error("expected largest marker for max weight")
		}
	})

	t.Run("labeled variant prints category labels", func(t *testing.T) {
		l := LineChart{Height: 4}
		out := l.RenderLabeled([]string{"Clinton", "Lebanon", "Springfield"}, []float64{0.1, 0.3, 0.2})
		if !strings.Contains(out, "Clinton") || !strings.Contains(out, "Springfield") {
			t.Errorf("expected first and last labels, got %q", out)
		}
	})
}
