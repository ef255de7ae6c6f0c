package fund

// ContributedCapital sums the amount of every leg by participant.
func ContributedCapital(legs []Leg) Allocation {
	capital := newAllocation()
	for _, l := range legs {
		capital = capital.add(l.Participant(), l.Amount)
	}
	return capital
}

// ComputeEndCapital returns each participant's capital at the window end:
// the amount of its legs plus its realized net.
func ComputeEndCapital(legs []Leg, net Allocation) Allocation {
	end := ContributedCapital(legs)
	end.Founders = end.Founders.Add(net.Founders)
	for name, v := range net.Investors {
		end.Investors[name] = end.Investors[name].Add(v)
	}
	return end
}
