package scroll

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrNegativeExtent  = errors.New("scroll extent must not be negative")
	ErrInvalidVelocity = errors.New("scroll velocity must be positive")
)

// Unit tells how the Y component of a Delta is measured.
type Unit int

const (
	// Lines are wheel notches; they are multiplied by the velocity.
	Lines Unit = iota
	// Pixels are applied as they are.
	Pixels
)

func (u Unit) String() string {
	switch u {
	case Lines:
		return "lines"
	case Pixels:
		return "pixels"
	}
	return "unknown"
}

// Delta is a single scroll input. A positive Y moves the viewport towards
// the top of the content.
type Delta struct {
	Unit Unit
	Y    float64
}

func LineDelta(y float64) Delta {
	return Delta{Unit: Lines, Y: y}
}

func PixelDelta(y float64) Delta {
	return Delta{Unit: Pixels, Y: y}
}

// State accumulates scroll deltas into an offset clamped to [0, extent].
// It is owned by a single widget and mutated only from its event handler.
type State struct {
	offset   float64
	extent   float64
	velocity float64
}

func New(extent, velocity float64) (*State, error) {
	if !(extent >= 0) {
		return nil, errors.Wrapf(ErrNegativeExtent, "got %v", extent)
	}
	if !(velocity > 0) {
		return nil, errors.Wrapf(ErrInvalidVelocity, "got %v", velocity)
	}
	return &State{extent: extent, velocity: velocity}, nil
}

// Apply updates the offset with d and returns the new offset.
func (s *State) Apply(d Delta) float64 {
	dy := d.Y
	if d.Unit == Lines {
		dy *= s.velocity
	}
	if math.IsNaN(dy) {
		return s.offset
	}
	s.offset = s.clamp(s.offset - dy)
	return s.offset
}

// SetExtent sets the clamp ceiling to the distance the content can actually
// be scrolled and pulls the current offset back inside it.
func (s *State) SetExtent(contentHeight, viewportHeight float64) {
	extent := contentHeight - viewportHeight
	if !(extent > 0) {
		extent = 0
	}
	s.extent = extent
	s.offset = s.clamp(s.offset)
}

func (s *State) SetOffset(offset float64) {
	if math.IsNaN(offset) {
		return
	}
	s.offset = s.clamp(offset)
}

func (s *State) SetVelocity(velocity float64) error {
	if !(velocity > 0) {
		return errors.Wrapf(ErrInvalidVelocity, "got %v", velocity)
	}
	s.velocity = velocity
	return nil
}

func (s *State) Offset() float64 {
	return s.offset
}

func (s *State) Extent() float64 {
	return s.extent
}

func (s *State) Velocity() float64 {
	return s.velocity
}

// Progress returns how far the content is scrolled, from 0 at the top to 1
// at the bottom. It is relative to the extent, so it is not a scroll
// fraction for window.VisibleRange; use window.Metrics.Fraction for that.
func (s *State) Progress() float64 {
	if s.extent <= 0 {
		return 0
	}
	return s.offset / s.extent
}

func (s *State) AtTop() bool {
	return s.offset <= 0
}

func (s *State) AtBottom() bool {
	return s.offset >= s.extent
}

func (s *State) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), s.extent)
}
