package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/balance/scale"
)

// BubbleTeaUI implements UI using Bubble Tea.
// It bridges the session's channel-based loop with Bubble Tea's
// model/update/view loop.
type BubbleTeaUI struct {
	program   *tea.Program
	palette   []int
	inputChan chan string

	// Message queue drained by a single goroutine. This decouples the
	// session from tea.Program.Send, which blocks until the program reads.
	msgQueue chan tea.Msg

	// ready closes once program is set
	ready chan struct{}

	// Shutdown coordination
	done     chan struct{}
	doneOnce sync.Once
}

// NewBubbleTeaUI creates a new Bubble Tea-based UI.
func NewBubbleTeaUI(palette []int) *BubbleTeaUI {
	return &BubbleTeaUI{
		palette:   palette,
		inputChan: make(chan string, 256),
		msgQueue:  make(chan tea.Msg, 1024),
		ready:     make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// send queues a message for delivery to the Bubble Tea program.
func (b *BubbleTeaUI) send(msg tea.Msg) {
	select {
	case <-b.done:
	case b.msgQueue <- msg:
	}
}

// Print appends a line to the message log.
func (b *BubbleTeaUI) Print(text string) {
	b.send(PrintLineMsg(text))
}

// Render pushes a new snapshot.
func (b *BubbleTeaUI) Render(snap scale.Snapshot) {
	b.send(SnapshotMsg(snap))
}

// Input returns the channel of command lines.
func (b *BubbleTeaUI) Input() <-chan string {
	return b.inputChan
}

// Run starts the TUI and blocks until exit. It returns at once if Quit
// was called first.
func (b *BubbleTeaUI) Run() error {
	select {
	case <-b.done:
		return nil
	default:
	}

	b.program = tea.NewProgram(
		NewModel(b.inputChan, b.palette),
		tea.WithAltScreen(),
	)
	close(b.ready)

	go func() {
		for {
			select {
			case <-b.done:
				return
			case msg := <-b.msgQueue:
				b.program.Send(msg)
			}
		}
	}()

	_, err := b.program.Run()

	b.doneOnce.Do(func() {
		close(b.done)
	})
	return err
}

// Done returns a channel that closes when the UI exits.
func (b *BubbleTeaUI) Done() <-chan struct{} {
	return b.done
}

// Quit signals the TUI to exit.
func (b *BubbleTeaUI) Quit() {
	select {
	case <-b.ready:
		b.program.Quit()
	default:
		// Not started yet
		b.doneOnce.Do(func() {
			close(b.done)
		})
	}
}
