package fund

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// day is a helper for tests to create dates in 2025.
func day(m time.Month, d int) Date { return NewDate(2025, m, d) }

// exact compares fund values by value, ignoring the decimal representation.
var exact = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Ratio) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b DollarDays) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
}

// fixedClock makes snapshot ids and timestamps deterministic for a test.
func fixedClock(t *testing.T, at time.Time, ids ...string) {
	t.Helper()
	oldNow, oldID := now, newID
	t.Cleanup(func() { now, newID = oldNow, oldID })
	now = func() time.Time { return at }
	i := 0
	newID = func() string {
		if i >= len(ids) {
			t.Fatalf("unexpected id request #%d", i+1)
		}
		i++
		return ids[i-1]
	}
}

// mustRecompute runs Recompute and fails the test on error.
func mustRecompute(t *testing.T, s State) Outputs {
	t.Helper()
	o, err := Recompute(s)
	if err != nil {
		t.Fatalf("Recompute() unexpected error: %v", err)
	}
	return o
}

// seedScenario is the founders alone over the second half of 2025.
func seedScenario() State {
	return State{
		Window:                   NewWindow(day(time.July, 10), day(time.December, 31)),
		WalletSizeEndOfWindow:    M(50000),
		UnrealizedPnlEndOfWindow: M(15000),
		Contributions: []Leg{
			NewFoundersSeed("founders_seed", day(time.July, 10), M(5000)),
		},
		Policy: DefaultPolicy(),
	}
}

// withLaura adds Laura's net contribution on the founders seed day.
func withLaura(s State) State {
	s = s.Clone()
	s.Contributions = append(s.Contributions, NewInvestorContribution("laura_1", "Laura", day(time.July, 10), M(4500)))
	return s
}
