// Package charts renders the dashboard's terminal charts and generates the
// growing-bars animation.
//
// [Sweep] is the animation core: a lazy, finite, restartable sequence of
// (category, value) frames. It owns the step-size policy and the per-frame
// delay arithmetic but never sleeps; the TUI schedules repaints from tick
// messages, which keeps the stepping logic unit-testable without a clock.
//
// [BarChart] and [LineChart] are pure string renderers over lipgloss. Every
// repaint fully replaces the previous chart content.
package charts
