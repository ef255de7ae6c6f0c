package fund

import "time"

// SeedState returns the reference dataset: the founders seed and Laura's
// and Damon's first contributions, over the 2025-07-22 to 2025-09-06 window.
//
// Wallet and unrealized profit are left to zero, they are read from the
// exchange at the window end.
func SeedState() State {
	d := func(m time.Month, day int) Date { return NewDate(2025, m, day) }
	policy := DefaultPolicy()
	// The seed is the whole history of the fund: nothing was deployed before it.
	policy.InvestorSeedBaseline = Money{}
	return State{
		Window: Window{Start: d(time.July, 22), End: d(time.September, 6)},
		Contributions: []Leg{
			NewFoundersSeed("founders_seed", d(time.July, 10), M(5000)),
			NewInvestorContribution("laura_2025-07-22_0", "Laura", d(time.July, 22), M(5000)),
			NewInvestorContribution("laura_2025-08-01_1", "Laura", d(time.August, 1), M(5000)),
			NewInvestorContribution("laura_2025-08-15_2", "Laura", d(time.August, 15), M(2500)),
			NewInvestorContribution("laura_2025-09-01_3", "Laura", d(time.September, 1), M(2500)),
			NewInvestorContribution("damon_2025-08-15", "Damon", d(time.August, 15), M(5000)),
		},
		Policy: policy,
	}
}
