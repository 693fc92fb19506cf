package scale

// Snapshot is the read-only view handed to renderers. Slices are copies.
type Snapshot struct {
	Angle      float64
	Target     float64
	State      State
	Left       []Instance
	Right      []Instance
	LeftTotal  int
	RightTotal int
}

// Pan returns the instances on p.
func (s Snapshot) Pan(p Pan) []Instance {
	if p == Right {
		return s.Right
	}
	return s.Left
}

// Balance ties a Registry to a Controller: every change to the pans
// retargets the beam from the new totals.
type Balance struct {
	reg  *Registry
	tilt *Controller
}

// New creates an empty balance.
func New(palette Palette, sched Scheduler, opts TiltOptions) *Balance {
	return &Balance{
		reg:  NewRegistry(palette),
		tilt: NewController(sched, opts),
	}
}

// Controller exposes the tilt state for read access.
func (b *Balance) Controller() *Controller { return b.tilt }

// Add places a token and retargets.
func (b *Balance) Add(pan Pan, value int) (int, error) {
	id, err := b.reg.Add(pan, value)
	if err != nil {
		return 0, err
	}
	b.retarget()
	return id, nil
}

// Remove takes a token off by id and retargets. Removing an unknown id is
// a no-op.
func (b *Balance) Remove(pan Pan, id int) bool {
	if !b.reg.Remove(pan, id) {
		return false
	}
	b.retarget()
	return true
}

// Reset empties both pans; the beam eases back to level.
func (b *Balance) Reset() {
	b.reg.Clear()
	b.retarget()
}

// Tick forwards a scheduled wake-up to the controller.
func (b *Balance) Tick(gen uint64) bool {
	return b.tilt.Tick(gen)
}

// Halt stops the animation loop in place.
func (b *Balance) Halt() {
	b.tilt.Halt()
}

// Totals returns the summed values of each pan.
func (b *Balance) Totals() (left, right int) {
	return b.reg.Totals()
}

// Snapshot captures the current state for rendering.
func (b *Balance) Snapshot() Snapshot {
	l, r := b.reg.Totals()
	return Snapshot{
		Angle:      b.tilt.Angle(),
		Target:     b.tilt.Target(),
		State:      b.tilt.State(),
		Left:       b.reg.Contents(Left),
		Right:      b.reg.Contents(Right),
		LeftTotal:  l,
		RightTotal: r,
	}
}

func (b *Balance) retarget() {
	// TargetAngle is always finite, so SetTarget cannot fail here.
	_ = b.tilt.SetTarget(TargetAngle(b.reg.Totals()))
}
