package fund

import (
	"maps"
	"slices"
)

// Allocation is an amount per participant: one founders bucket and one per investor.
type Allocation struct {
	Founders  Money            `json:"founders"`
	Investors map[string]Money `json:"investors"`
}

func newAllocation() Allocation { return Allocation{Investors: make(map[string]Money)} }

// Names returns the investor names in alphabetical order.
func (a Allocation) Names() []string { return slices.Sorted(maps.Keys(a.Investors)) }

// InvestorsTotal returns the sum over investors.
func (a Allocation) InvestorsTotal() Money {
	var total Money
	for _, name := range a.Names() {
		total = total.Add(a.Investors[name])
	}
	return total
}

// Total returns the sum over every participant.
func (a Allocation) Total() Money { return a.Founders.Add(a.InvestorsTotal()) }

// Of returns the amount of a participant, FoundersName included.
func (a Allocation) Of(participant string) Money {
	if participant == FoundersName {
		return a.Founders
	}
	return a.Investors[participant]
}

// add credits amount to a participant.
func (a Allocation) add(participant string, amount Money) Allocation {
	if participant == FoundersName {
		a.Founders = a.Founders.Add(amount)
		return a
	}
	a.Investors[participant] = a.Investors[participant].Add(amount)
	return a
}

// DollarDaysMap is the time-weighted exposure of each participant over a window.
type DollarDaysMap struct {
	Founders  DollarDays            `json:"founders"`
	Investors map[string]DollarDays `json:"investors"`
	Total     DollarDays            `json:"total"`
}

// Names returns the investor names in alphabetical order.
func (d DollarDaysMap) Names() []string { return slices.Sorted(maps.Keys(d.Investors)) }

// InvestorsTotal returns the sum over investors.
func (d DollarDaysMap) InvestorsTotal() DollarDays {
	var total DollarDays
	for _, name := range d.Names() {
		total = total.Add(d.Investors[name])
	}
	return total
}

// Of returns the dollar-days of a participant, FoundersName included.
func (d DollarDaysMap) Of(participant string) DollarDays {
	if participant == FoundersName {
		return d.Founders
	}
	return d.Investors[participant]
}

// Shares is the fraction of the realized profit owed to each participant.
type Shares struct {
	Founders  Ratio            `json:"founders"`
	Investors map[string]Ratio `json:"investors"`
}

// Names returns the investor names in alphabetical order.
func (s Shares) Names() []string { return slices.Sorted(maps.Keys(s.Investors)) }

// Sum returns the sum of all shares, 1 when any dollar-day was earned, 0 otherwise.
func (s Shares) Sum() Ratio {
	sum := s.Founders
	for _, name := range s.Names() {
		sum = sum.Add(s.Investors[name])
	}
	return sum
}

// Of returns the share of a participant, FoundersName included.
func (s Shares) Of(participant string) Ratio {
	if participant == FoundersName {
		return s.Founders
	}
	return s.Investors[participant]
}

// ManagementFees holds the fee withheld from each investor and their total,
// carried to founders.
type ManagementFees struct {
	Investors          map[string]Money `json:"investors"`
	FoundersCarryTotal Money            `json:"foundersCarryTotal"`
}

// Names returns the investor names in alphabetical order.
func (m ManagementFees) Names() []string { return slices.Sorted(maps.Keys(m.Investors)) }

// Sum returns the sum of investor fees.
func (m ManagementFees) Sum() Money {
	var total Money
	for _, name := range m.Names() {
		total = total.Add(m.Investors[name])
	}
	return total
}

// Participants returns FoundersName followed by the sorted union of investor
// names found in any of the given name lists.
func Participants(names ...[]string) []string {
	set := make(map[string]struct{})
	for _, list := range names {
		for _, n := range list {
			set[n] = struct{}{}
		}
	}
	delete(set, FoundersName)
	return append([]string{FoundersName}, slices.Sorted(maps.Keys(set))...)
}
