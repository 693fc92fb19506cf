package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/drake/balance/scale"
	"github.com/drake/balance/ui/style"
)

const (
	logLimit      = 6
	panListLimit  = 8
	beamCacheSize = 512
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	styles style.Styles
	keys   keyMap
	help   help.Model
	input  textinput.Model
	beam   *BeamRenderer

	// Selection
	palette []int
	pan     scale.Pan
	cursor  int

	// Pushed from the session
	snap scale.Snapshot
	log  []string

	// State
	width      int
	height     int
	commanding bool
	inputChan  chan<- string
}

// NewModel creates a new TUI model offering the given palette values.
func NewModel(inputChan chan<- string, palette []int) Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "add left 5 | remove right 3 | reset | /load file.lua"
	ti.CharLimit = 256

	return Model{
		styles:    style.DefaultStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		input:     ti,
		beam:      NewBeamRenderer(beamCacheSize),
		palette:   palette,
		inputChan: inputChan,
		width:     80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case SnapshotMsg:
		m.snap = scale.Snapshot(msg)
		return m, nil

	case PrintLineMsg:
		m.log = append(m.log, string(msg))
		if len(m.log) > logLimit {
			m.log = m.log[len(m.log)-logLimit:]
		}
		return m, nil

	case tea.KeyMsg:
		if m.commanding {
			return m.updateCommand(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		if line != "" {
			m.submit(line)
		}
		m.closeCommand()
		return m, nil
	case tea.KeyEsc:
		m.closeCommand()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeCommand() {
	m.commanding = false
	m.input.Reset()
	m.input.Blur()
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.pan = scale.Left
	case key.Matches(msg, m.keys.Right):
		m.pan = scale.Right
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.palette)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		if len(m.palette) > 0 {
			m.submit(fmt.Sprintf("add %s %d", m.pan, m.palette[m.cursor]))
		}
	case key.Matches(msg, m.keys.Remove):
		// Remove by id so a stale view can never take off the wrong token.
		if seq := m.snap.Pan(m.pan); len(seq) > 0 {
			m.submit(fmt.Sprintf("remove %s %d", m.pan, seq[len(seq)-1].ID))
		}
	case key.Matches(msg, m.keys.Reset):
		m.submit("reset")

	case key.Matches(msg, m.keys.Command):
		m.commanding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// submit hands a command line to the session without blocking the UI.
func (m *Model) submit(line string) {
	select {
	case m.inputChan <- line:
	default:
		m.log = append(m.log, "input queue full, dropped: "+line)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := m.styles.Title.Render("Balancing Scale")
	totals := m.styles.Total.Render(TotalsLine(m.snap))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(totals) - 2
	if gap < 1 {
		gap = 1
	}
	b.WriteString(title + strings.Repeat(" ", gap) + totals + "\n")
	b.WriteString(m.stateLine() + "\n\n")

	beamWidth := m.width - 4
	if beamWidth > 81 {
		beamWidth = 81
	}
	rows := m.beam.Render(m.snap.Angle, beamWidth)
	for _, row := range rows[:len(rows)-1] {
		b.WriteString(m.styles.Beam.Render(row) + "\n")
	}
	b.WriteString(m.styles.Stand.Render(rows[len(rows)-1]) + "\n\n")

	b.WriteString(m.pansView() + "\n\n")
	b.WriteString(m.paletteView() + "\n\n")

	for _, line := range m.log {
		b.WriteString(m.styles.Muted.Render(m.fitLine(line)) + "\n")
	}
	if m.commanding {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// fitLine cuts a log line to the terminal width. Scripts print arbitrary
// text, so widths are measured in cells.
func (m Model) fitLine(line string) string {
	width := m.width - 2
	if width < 1 || runewidth.StringWidth(line) <= width {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}

func (m Model) stateLine() string {
	st := m.styles.StateIdle
	if m.snap.State == scale.Converging {
		st = m.styles.StateConverging
	}
	return st.Render(fmt.Sprintf("angle %+.2f°  target %+.2f°  %s", m.snap.Angle, m.snap.Target, m.snap.State))
}

func (m Model) pansView() string {
	colWidth := (m.width - 6) / 2
	if colWidth < 16 {
		colWidth = 16
	}
	left := m.panColumn(scale.Left, m.styles.LeftPan)
	right := m.panColumn(scale.Right, m.styles.RightPan)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth).Render(left),
		lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Right).Render(right),
	)
}

// panColumn lists a pan's weights top of the stack first.
func (m Model) panColumn(p scale.Pan, st lipgloss.Style) string {
	seq := m.snap.Pan(p)
	total := m.snap.LeftTotal
	if p == scale.Right {
		total = m.snap.RightTotal
	}

	lines := []string{m.styles.PanHeader.Render(fmt.Sprintf("%s pan (%d)", p, total))}
	shown := 0
	for i := len(seq) - 1; i >= 0 && shown < panListLimit; i-- {
		lines = append(lines, st.Render(fmt.Sprintf("#%-4d %2d", seq[i].ID, seq[i].Value)))
		shown++
	}
	if rest := len(seq) - shown; rest > 0 {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("+%d more", rest)))
	}
	if len(seq) == 0 {
		lines = append(lines, m.styles.Muted.Render("empty"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) paletteView() string {
	st := m.styles.LeftPan
	arrow := "◀ " + m.pan.String()
	if m.pan == scale.Right {
		st = m.styles.RightPan
		arrow = m.pan.String() + " ▶"
	}

	cells := make([]string, len(m.palette))
	for i, v := range m.palette {
		cell := fmt.Sprintf(" %d ", v)
		if i == m.cursor {
			cells[i] = m.styles.PaletteCursor.Render(cell)
		} else {
			cells[i] = m.styles.PaletteNormal.Render(cell)
		}
	}
	return st.Render(arrow) + "  " + strings.Join(cells, "")
}
