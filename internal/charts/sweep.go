package charts

import (
	"fmt"
	"math"
	"time"

	"github.com/ospreyhr/attriview/internal/shared"
)

// Step policy: charts whose largest bar exceeds coarseThreshold grow in
// whole-unit steps with a longer frame time, smaller charts grow in tenths.
// Bigger values take bigger steps, so total duration stays roughly constant.
const (
	coarseThreshold = 8
	coarseStep      = 1.0
	coarseStepTime  = 300 * time.Millisecond
	fineStep        = 0.1
	fineStepTime    = 100 * time.Millisecond
)

// Frame is one repaint of the growing-bars animation: category cat's
// displayed value becomes Value.
type Frame struct {
	Category int
	Value    float64
}

// Sweep generates the frame sequence for an animated bar chart. Categories
// grow one at a time in input order, each from zero to its target. The
// generator holds no clock; the caller owns pacing via [Sweep.Delay].
//
// Frame values are computed from the frame index rather than accumulated, so
// the final frame of every category lands exactly on the target.
type Sweep struct {
	labels    []string
	targets   []float64
	display   []float64
	step      float64
	stepTime  time.Duration
	maxTarget float64
	cat       int
	iter      int
}

// NewSweep builds a sweep over parallel label/target slices. Targets must be
// finite and non-negative; a zero target yields zero frames for its category.
func NewSweep(labels []string, targets []float64) (*Sweep, error) {
	if len(labels) == 0 || len(labels) != len(targets) {
		return nil, fmt.Errorf("%w: need equal, non-empty labels and targets", shared.ErrInvalidInput)
	}

	maxTarget := 0.0
	for i, t := range targets {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return nil, fmt.Errorf("%w: target %d (%s) is %v", shared.ErrInvalidInput, i, labels[i], t)
		}
		if t > maxTarget {
			maxTarget = t
		}
	}

	s := &Sweep{
		labels:    labels,
		targets:   targets,
		display:   make([]float64, len(targets)),
		maxTarget: maxTarget,
	}

	if maxTarget > coarseThreshold {
		s.step, s.stepTime = coarseStep, coarseStepTime
	} else {
		s.step, s.stepTime = fineStep, fineStepTime
	}

	return s, nil
}

// frames returns the number of repaints category i needs: ceil(target/step).
func (s *Sweep) frames(i int) int {
	return int(math.Ceil(s.targets[i] / s.step))
}

// Next advances the sweep one frame. The returned frame carries the category
// index and its new displayed value, clamped to the target. ok is false once
// every category has completed.
func (s *Sweep) Next() (Frame, bool) {
	for s.cat < len(s.targets) {
		if s.iter >= s.frames(s.cat) {
			s.cat++
			s.iter = 0
			continue
		}

		s.iter++
		v := float64(s.iter) * s.step
		if v > s.targets[s.cat] {
			v = s.targets[s.cat]
		}
		s.display[s.cat] = v
		return Frame{Category: s.cat, Value: v}, true
	}
	return Frame{}, false
}

// Reset rewinds the sweep to its initial all-zero state.
func (s *Sweep) Reset() {
	s.cat = 0
	s.iter = 0
	for i := range s.display {
		s.display[i] = 0
	}
}

// Done reports whether no frames remain.
func (s *Sweep) Done() bool {
	for i := s.cat; i < len(s.targets); i++ {
		remaining := s.frames(i)
		if i == s.cat {
			remaining -= s.iter
		}
		if remaining > 0 {
			return false
		}
	}
	return true
}

// Delay is the pause between repaints: the step time scaled down by the
// largest target, normalizing perceived speed across magnitudes.
func (s *Sweep) Delay() time.Duration {
	if s.maxTarget <= 0 {
		return s.stepTime
	}
	return time.Duration(float64(s.stepTime) / s.maxTarget)
}

// Display returns a snapshot of every category's current displayed value.
func (s *Sweep) Display() []float64 {
	out := make([]float64, len(s.display))
	copy(out, s.display)
	return out
}

// Labels returns the category labels in input order.
func (s *Sweep) Labels() []string { return s.labels }

// Step returns the per-frame increment chosen by the step policy.
func (s *Sweep) Step() float64 { return s.step }
