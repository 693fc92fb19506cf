package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/drake/balance/scale"
)

// ConsoleUI is a line-oriented UI: commands are read from in, and a status
// line is written to out whenever the totals change or the beam settles.
type ConsoleUI struct {
	in  io.Reader
	out io.Writer

	inputChan chan string
	done      chan struct{}
	doneOnce  sync.Once

	mu       sync.Mutex
	last     scale.Snapshot
	haveLast bool
}

// NewConsoleUI creates a console UI over the given streams.
func NewConsoleUI(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		in:        in,
		out:       out,
		inputChan: make(chan string, 256),
		done:      make(chan struct{}),
	}
}

// Print writes text on its own line.
func (c *ConsoleUI) Print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, text)
}

// Render prints a status line for snapshots worth reporting. Intermediate
// animation frames are skipped.
func (c *ConsoleUI) Render(snap scale.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := !c.haveLast ||
		snap.LeftTotal != c.last.LeftTotal ||
		snap.RightTotal != c.last.RightTotal ||
		len(snap.Left) != len(c.last.Left) ||
		len(snap.Right) != len(c.last.Right)
	settled := c.haveLast && c.last.State == scale.Converging && snap.State == scale.Idle

	c.last = snap
	c.haveLast = true

	if changed || settled {
		fmt.Fprintln(c.out, StatusLine(snap))
	}
}

// Input returns the channel of command lines.
func (c *ConsoleUI) Input() <-chan string {
	return c.inputChan
}

// Run reads lines until Quit. At end of input a "/quit" line is queued
// behind the commands already read, so piped input is fully applied
// before the session stops.
func (c *ConsoleUI) Run() error {
	scanErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if !c.push(line) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			scanErr <- err
			return
		}
		c.push("/quit")
	}()

	select {
	case err := <-scanErr:
		c.Quit()
		return err
	case <-c.done:
		return nil
	}
}

func (c *ConsoleUI) push(line string) bool {
	select {
	case c.inputChan <- line:
		return true
	case <-c.done:
		return false
	}
}

// Done returns a channel that closes when the UI exits.
func (c *ConsoleUI) Done() <-chan struct{} {
	return c.done
}

// Quit stops Run.
func (c *ConsoleUI) Quit() {
	c.doneOnce.Do(func() { close(c.done) })
}
