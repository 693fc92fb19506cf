package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/balance/scale"
)

func newTestModel() (Model, chan string) {
	in := make(chan string, 16)
	return NewModel(in, scale.DefaultPalette.Values()), in
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func drain(ch chan string) []string {
	var out []string
	for {
		select {
		case s := <-ch:
			out = append(out, s)
		default:
			return out
		}
	}
}

func TestModelAddUsesSelection(t *testing.T) {
	m, in := newTestModel()

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyUp}, // already at the top
		runeKey('h'),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	got := drain(in)
	want := []string{"add left 1", "add right 3", "add left 1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("submitted %q, want %q", got, want)
	}
}

func TestModelRemoveTakesTopByID(t *testing.T) {
	m, in := newTestModel()

	next, _ := m.Update(SnapshotMsg(scale.Snapshot{
		Right: []scale.Instance{{ID: 4, Value: 2, Pan: scale.Right}, {ID: 9, Value: 5, Pan: scale.Right}},
	}))
	m = next.(Model)

	m = press(t, m, runeKey('x'), tea.KeyMsg{Type: tea.KeyRight}, runeKey('x'))

	got := drain(in)
	if len(got) != 1 || got[0] != "remove right 9" {
		t.Errorf("submitted %q, want [remove right 9]", got)
	}
}

func TestModelResetAndQuit(t *testing.T) {
	m, in := newTestModel()
	m = press(t, m, runeKey('r'))
	if got := drain(in); len(got) != 1 || got[0] != "reset" {
		t.Errorf("submitted %q, want [reset]", got)
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.QuitMsg")
	}
}

func TestModelCommandLine(t *testing.T) {
	m, in := newTestModel()

	m = press(t, m, runeKey(':'))
	if !m.commanding {
		t.Fatal("':' did not open the command line")
	}
	for _, r := range "add r 7" {
		m = press(t, m, runeKey(r))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.commanding {
		t.Error("command line still open after enter")
	}
	if got := drain(in); len(got) != 1 || got[0] != "add r 7" {
		t.Errorf("submitted %q, want [add r 7]", got)
	}

	// Escape abandons the line.
	m = press(t, m, runeKey(':'), runeKey('r'), tea.KeyMsg{Type: tea.KeyEsc})
	if got := drain(in); len(got) != 0 {
		t.Errorf("submitted %q after esc", got)
	}
}

func TestModelFullInputQueueDoesNotBlock(t *testing.T) {
	in := make(chan string) // unbuffered, nobody reading
	m := NewModel(in, scale.DefaultPalette.Values())

	m = press(t, m, runeKey('r'))
	if len(m.log) != 1 || !strings.Contains(m.log[0], "dropped") {
		t.Errorf("log = %q", m.log)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	next, _ = m.Update(SnapshotMsg(scale.Snapshot{
		Angle:      2,
		Target:     2,
		Left:       []scale.Instance{{ID: 1, Value: 5, Pan: scale.Left}},
		Right:      []scale.Instance{{ID: 2, Value: 3, Pan: scale.Right}},
		LeftTotal:  5,
		RightTotal: 3,
	}))
	m = next.(Model)
	next, _ = m.Update(PrintLineMsg("hello from lua"))
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"L=5 | R=3", "#1", "#2", "hello from lua", "left pan (5)", "right pan (3)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelLogIsBounded(t *testing.T) {
	m, _ := newTestModel()
	for i := 0; i < logLimit+5; i++ {
		next, _ := m.Update(PrintLineMsg("line"))
		m = next.(Model)
	}
	if len(m.log) != logLimit {
		t.Errorf("len(log) = %d, want %d", len(m.log), logLimit)
	}
}

func TestModelFitLine(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 12, Height: 10})
	m = next.(Model)

	if got := m.fitLine("short"); got != "short" {
		t.Errorf("fitLine(short) = %q", got)
	}
	if got := m.fitLine("界界界界界界界界"); got != "界界界界…" {
		t.Errorf("fitLine(wide) = %q, want %q", got, "界界界界…")
	}
}
