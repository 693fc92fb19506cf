package scale

import "testing"

func newTestBalance() (*Balance, *fakeScheduler) {
	sched := &fakeScheduler{}
	return New(DefaultPalette, sched, DefaultTiltOptions()), sched
}

func TestBalanceScenario(t *testing.T) {
	b, sched := newTestBalance()

	b.Add(Left, 5)
	b.Add(Right, 3)
	assertTotals(t, b, 5, 3)
	if got := b.Controller().Target(); got != 2 {
		t.Errorf("target = %v, want 2", got)
	}

	b.Add(Right, 4)
	assertTotals(t, b, 5, 7)
	if got := b.Controller().Target(); got != -2 {
		t.Errorf("target = %v, want -2", got)
	}

	sched.drain(b.Tick, 5)
	b.Reset()
	assertTotals(t, b, 0, 0)
	if got := b.Controller().Target(); got != 0 {
		t.Errorf("target = %v, want 0", got)
	}
	if b.Controller().State() != Converging {
		t.Fatalf("reset should animate back to level, state = %v", b.Controller().State())
	}

	sched.drain(b.Tick, 1000)
	if got := b.Snapshot().Angle; got != 0 {
		t.Errorf("angle = %v, want 0", got)
	}
	if sched.maxQueued != 1 {
		t.Errorf("max outstanding ticks = %d, want 1", sched.maxQueued)
	}
}

func TestBalanceClampsLargeImbalance(t *testing.T) {
	b, sched := newTestBalance()
	b.Add(Left, 10)
	b.Add(Left, 10)

	assertTotals(t, b, 20, 0)
	if got := b.Controller().Target(); got != 15 {
		t.Errorf("target = %v, want 15", got)
	}
	sched.drain(b.Tick, 1000)
	if got := b.Snapshot().Angle; got != 15 {
		t.Errorf("angle = %v, want 15", got)
	}
}

func TestBalanceRemoveRetargets(t *testing.T) {
	b, _ := newTestBalance()
	id, _ := b.Add(Right, 6)
	b.Add(Left, 2)

	if !b.Remove(Right, id) {
		t.Fatal("Remove() = false")
	}
	if got := b.Controller().Target(); got != 2 {
		t.Errorf("target = %v, want 2", got)
	}
	if b.Remove(Right, id) {
		t.Error("second Remove() = true")
	}
}

func TestBalanceRejectedAddLeavesTarget(t *testing.T) {
	b, sched := newTestBalance()
	if _, err := b.Add(Left, 0); err == nil {
		t.Fatal("Add(Left, 0) error = nil")
	}
	if b.Controller().State() != Idle || len(sched.queue) != 0 {
		t.Error("rejected add started the tilt loop")
	}
}

func TestBalanceSnapshot(t *testing.T) {
	b, _ := newTestBalance()
	b.Add(Left, 1)
	b.Add(Left, 2)
	b.Add(Right, 9)

	s := b.Snapshot()
	if len(s.Pan(Left)) != 2 || len(s.Pan(Right)) != 1 {
		t.Fatalf("snapshot pans = %d/%d, want 2/1", len(s.Left), len(s.Right))
	}
	if s.LeftTotal != 3 || s.RightTotal != 9 {
		t.Errorf("snapshot totals = (%d,%d), want (3,9)", s.LeftTotal, s.RightTotal)
	}
	if s.Target != -6 || s.State != Converging {
		t.Errorf("snapshot target/state = %v/%v, want -6/converging", s.Target, s.State)
	}

	s.Left[0].Value = 10
	if l, _ := b.Totals(); l != 3 {
		t.Errorf("mutating snapshot changed totals to %d", l)
	}
}

func assertTotals(t *testing.T, b *Balance, wantL, wantR int) {
	t.Helper()
	l, r := b.Totals()
	if l != wantL || r != wantR {
		t.Errorf("Totals() = (%d,%d), want (%d,%d)", l, r, wantL, wantR)
	}
}
