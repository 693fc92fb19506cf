package scale

import (
	"github.com/drake/balance/errors"
)

// Instance is one token placed on a pan.
type Instance struct {
	ID    int
	Value int
	Pan   Pan
}

// Palette is the inclusive range of values a token may carry.
type Palette struct {
	Min int
	Max int
}

// DefaultPalette is the 1..10 palette offered on each side.
var DefaultPalette = Palette{Min: 1, Max: 10}

// Contains reports whether v may be placed.
func (p Palette) Contains(v int) bool {
	return v > 0 && v >= p.Min && v <= p.Max
}

// Values lists the palette in ascending order.
func (p Palette) Values() []int {
	if p.Max < p.Min {
		return nil
	}
	out := make([]int, 0, p.Max-p.Min+1)
	for v := p.Min; v <= p.Max; v++ {
		out = append(out, v)
	}
	return out
}

// Registry tracks which instances sit on which pan.
// Ids come from a counter that is never rewound, so an id issued once is
// never issued again for the lifetime of the registry.
type Registry struct {
	palette Palette
	nextID  int
	pans    [2][]Instance
}

// NewRegistry creates an empty registry accepting values from palette.
func NewRegistry(palette Palette) *Registry {
	return &Registry{
		palette: palette,
		nextID:  1,
	}
}

// Add places a new instance of value on pan and returns its id.
func (r *Registry) Add(pan Pan, value int) (int, error) {
	if !pan.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidPan, "unknown pan %d", int(pan))
	}
	if value <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidWeight, "weight must be positive, got %d", value)
	}
	if !r.palette.Contains(value) {
		return 0, errors.New(errors.ErrCodeInvalidWeight, "weight %d is not on the palette (%d..%d)", value, r.palette.Min, r.palette.Max)
	}

	id := r.nextID
	r.nextID++
	r.pans[pan] = append(r.pans[pan], Instance{ID: id, Value: value, Pan: pan})
	return id, nil
}

// Remove takes the instance with id off pan. Unknown ids, ids on the other
// pan and ids already removed are ignored. Returns true if something was
// removed.
func (r *Registry) Remove(pan Pan, id int) bool {
	if !pan.Valid() {
		return false
	}
	seq := r.pans[pan]
	for i, inst := range seq {
		if inst.ID == id {
			r.pans[pan] = append(seq[:i:i], seq[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties both pans. The id counter keeps running.
func (r *Registry) Clear() {
	r.pans[Left] = nil
	r.pans[Right] = nil
}

// Totals returns the summed values of each pan.
func (r *Registry) Totals() (left, right int) {
	return sum(r.pans[Left]), sum(r.pans[Right])
}

// Contents returns a copy of pan's instances in placement order.
func (r *Registry) Contents(pan Pan) []Instance {
	if !pan.Valid() {
		return nil
	}
	out := make([]Instance, len(r.pans[pan]))
	copy(out, r.pans[pan])
	return out
}

func sum(seq []Instance) int {
	total := 0
	for _, inst := range seq {
		total += inst.Value
	}
	return total
}
