package scale

import "time"

// fakeScheduler queues ticks instead of sleeping; tests fire them by hand.
type fakeScheduler struct {
	queue     []uint64
	durations []time.Duration
	maxQueued int
}

func (f *fakeScheduler) Schedule(d time.Duration, gen uint64) {
	f.queue = append(f.queue, gen)
	f.durations = append(f.durations, d)
	if len(f.queue) > f.maxQueued {
		f.maxQueued = len(f.queue)
	}
}

// fire pops the oldest queued tick and delivers it.
func (f *fakeScheduler) fire(tick func(uint64) bool) bool {
	if len(f.queue) == 0 {
		return false
	}
	gen := f.queue[0]
	f.queue = f.queue[1:]
	return tick(gen)
}

// drain fires ticks until none are queued or limit is hit.
func (f *fakeScheduler) drain(tick func(uint64) bool, limit int) int {
	n := 0
	for len(f.queue) > 0 && n < limit {
		f.fire(tick)
		n++
	}
	return n
}
