package session

import (
	"strings"
	"sync"

	"github.com/drake/balance/scale"
)

// fakeUI records everything the session shows and lets tests type lines.
type fakeUI struct {
	input    chan string
	done     chan struct{}
	doneOnce sync.Once

	mu     sync.Mutex
	prints []string
	snaps  []scale.Snapshot
}

func newFakeUI() *fakeUI {
	return &fakeUI{
		input: make(chan string, 64),
		done:  make(chan struct{}),
	}
}

func (f *fakeUI) Run() error {
	<-f.done
	return nil
}

func (f *fakeUI) Quit() {
	f.doneOnce.Do(func() { close(f.done) })
}

func (f *fakeUI) Done() <-chan struct{} { return f.done }

func (f *fakeUI) Input() <-chan string { return f.input }

func (f *fakeUI) Print(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prints = append(f.prints, text)
}

func (f *fakeUI) Render(snap scale.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps = append(f.snaps, snap)
}

func (f *fakeUI) typeLines(lines ...string) {
	for _, l := range lines {
		f.input <- l
	}
}

func (f *fakeUI) last() (scale.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snaps) == 0 {
		return scale.Snapshot{}, false
	}
	return f.snaps[len(f.snaps)-1], true
}

func (f *fakeUI) printed(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.prints {
		if strings.Contains(p, substr) {
			return true
		}
	}
	return false
}

func (f *fakeUI) allPrints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prints...)
}
