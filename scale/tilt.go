package scale

import (
	"math"
	"time"

	"github.com/drake/balance/errors"
)

// MaxAngle bounds both the target and the displayed angle, in degrees.
const MaxAngle = 15.0

// Defaults for the easing loop.
const (
	DefaultSmoothing   = 0.20
	DefaultSnapEpsilon = 0.05
	DefaultInterval    = 30 * time.Millisecond
)

// State is the controller's position in its state machine.
type State int

const (
	Idle State = iota
	Converging
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Converging:
		return "converging"
	default:
		return "unknown"
	}
}

// Scheduler arranges for Tick(gen) to be called after d.
// Implementations must not call back synchronously.
type Scheduler interface {
	Schedule(d time.Duration, gen uint64)
}

// TiltOptions tunes the easing loop.
type TiltOptions struct {
	Smoothing   float64       // fraction of the remaining distance covered per tick
	SnapEpsilon float64       // a step smaller than this ends the loop
	Interval    time.Duration // delay between ticks
}

// DefaultTiltOptions returns the reference easing parameters.
func DefaultTiltOptions() TiltOptions {
	return TiltOptions{
		Smoothing:   DefaultSmoothing,
		SnapEpsilon: DefaultSnapEpsilon,
		Interval:    DefaultInterval,
	}
}

// Controller eases the beam angle toward a target.
//
// While Converging exactly one tick is outstanding. Each loop is stamped
// with a generation; a tick carrying any other generation is stale and
// does nothing.
type Controller struct {
	opts  TiltOptions
	sched Scheduler

	current float64
	target  float64
	state   State
	gen     uint64
}

// NewController creates an idle controller at angle 0.
func NewController(sched Scheduler, opts TiltOptions) *Controller {
	return &Controller{
		opts:  opts,
		sched: sched,
	}
}

// Angle returns the displayed angle.
func (c *Controller) Angle() float64 { return c.current }

// Target returns the angle being eased toward.
func (c *Controller) Target() float64 { return c.target }

// State returns Idle or Converging.
func (c *Controller) State() State { return c.state }

// Generation returns the token of the current (or last) loop.
func (c *Controller) Generation() uint64 { return c.gen }

// SetTarget clamps angle and makes it the new target. An idle controller
// starts a loop unless the first step would already be within the snap
// threshold, in which case it snaps. A converging controller just picks
// up the new target on its next tick.
func (c *Controller) SetTarget(angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return errors.New(errors.ErrCodeInvalidAngle, "angle must be finite, got %v", angle)
	}

	c.target = Clamp(angle)
	if c.state == Converging {
		return nil
	}

	if math.Abs(c.step()) < c.opts.SnapEpsilon {
		c.current = c.target
		return nil
	}

	c.gen++
	c.state = Converging
	c.sched.Schedule(c.opts.Interval, c.gen)
	return nil
}

// Tick advances one easing step. It returns false when the tick was stale
// and nothing changed.
func (c *Controller) Tick(gen uint64) bool {
	if c.state != Converging || gen != c.gen {
		return false
	}

	step := c.step()
	if math.Abs(step) < c.opts.SnapEpsilon {
		c.current = c.target
		c.state = Idle
		return true
	}

	c.current = Clamp(c.current + step)
	c.sched.Schedule(c.opts.Interval, c.gen)
	return true
}

// Halt abandons the running loop, if any, leaving the angle where it is.
// A tick already in flight becomes stale.
func (c *Controller) Halt() {
	c.gen++
	c.state = Idle
}

func (c *Controller) step() float64 {
	return (c.target - c.current) * c.opts.Smoothing
}

// Clamp limits angle to [-MaxAngle, MaxAngle].
func Clamp(angle float64) float64 {
	return math.Max(-MaxAngle, math.Min(MaxAngle, angle))
}

// TargetAngle maps pan totals to a tilt: one unit of imbalance is one
// degree, left heavier is positive, saturating at MaxAngle.
func TargetAngle(left, right int) float64 {
	return Clamp(float64(left - right))
}
