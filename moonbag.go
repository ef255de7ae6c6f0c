package fund

// Moonbag is the split of the unrealized profit.
type Moonbag struct {
	Allocation
	// Unassigned is the investor pool nobody could receive because no
	// investor earned dollar-days.
	Unassigned Money `json:"unassigned"`
}

// AllocateMoonbag gives founders pct of the unrealized profit and pro-rates
// the rest among investors by their dollar-days only.
//
// When no investor has positive dollar-days the investor pool stays
// Unassigned, or goes to founders if the policy routes it.
func AllocateMoonbag(unrealized Money, dd DollarDaysMap, p Policy) Moonbag {
	m := Moonbag{Allocation: newAllocation()}
	m.Founders = unrealized.Mul(p.FoundersMoonbagPct)
	pool := unrealized.Mul(p.FoundersMoonbagPct.Complement())

	eligible := make(map[string]DollarDays)
	var total DollarDays
	for name, v := range dd.Investors {
		if v.IsPositive() {
			eligible[name] = v
			total = total.Add(v)
		}
	}
	if total.IsZero() {
		if p.RouteUnassignedMoonbag {
			m.Founders = m.Founders.Add(pool)
		} else {
			m.Unassigned = pool
		}
		return m
	}
	for _, name := range dd.Names() {
		if v, ok := eligible[name]; ok {
			m.Investors[name] = pool.Prorate(v, total)
		}
	}
	return m
}

// MoonbagID returns the id of a participant's moonbag carry leg for window w.
func MoonbagID(participant string, w Window) string {
	if participant == FoundersName {
		return "moonbag_founders_" + w.End.String()
	}
	return "moonbag_investor_" + participant + "_" + w.End.String()
}

// MoonbagLegs returns one carry-forward leg per nonzero moonbag allocation,
// founders first then investors by name.
func MoonbagLegs(m Moonbag, w Window) []Leg {
	var legs []Leg
	if !m.Founders.IsZero() {
		legs = append(legs, Leg{
			ID:     MoonbagID(FoundersName, w),
			Owner:  Founders,
			Name:   FoundersName,
			Type:   LegMoonbagFounders,
			Amount: m.Founders,
			On:     w.End,
		})
	}
	for _, name := range m.Names() {
		amount := m.Investors[name]
		if amount.IsZero() {
			continue
		}
		legs = append(legs, Leg{
			ID:     MoonbagID(name, w),
			Owner:  Investor,
			Name:   name,
			Type:   LegMoonbagInvestor,
			Amount: amount,
			On:     w.End,
		})
	}
	return legs
}
