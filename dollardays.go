package fund

// EffectiveDate returns the day a leg starts earning dollar-days in w: its
// own date, or the window start for legs dated before it.
func EffectiveDate(l Leg, w Window) Date {
	if l.On.Before(w.Start) {
		return w.Start
	}
	return l.On
}

// EarningDays returns the number of days the leg earns dollar-days in w.
//
// It is zero for legs not earning in this window and for legs dated on or
// after the window end.
func EarningDays(l Leg, w Window) int {
	if !l.EarnsDollarDays || !l.On.Before(w.End) {
		return 0
	}
	return EffectiveDate(l, w).DaysUntil(w.End)
}

// ComputeDollarDays weights every earning leg by the days it stays in the
// window until its end.
//
// Founders legs collapse into a single bucket. Investors are keyed by name and
// only appear if at least one of their legs is dated before the window end.
func ComputeDollarDays(legs []Leg, w Window) DollarDaysMap {
	dd := DollarDaysMap{Investors: make(map[string]DollarDays)}
	for _, l := range legs {
		if !l.EarnsDollarDays || !l.On.Before(w.End) {
			continue
		}
		v := l.Amount.Days(EarningDays(l, w))
		switch l.Owner {
		case Founders:
			dd.Founders = dd.Founders.Add(v)
		case Investor:
			dd.Investors[l.Name] = dd.Investors[l.Name].Add(v)
		}
		dd.Total = dd.Total.Add(v)
	}
	return dd
}

// ComputeShares returns each participant's fraction of the total dollar-days.
// All shares are zero when the total is zero.
func ComputeShares(dd DollarDaysMap) Shares {
	s := Shares{Founders: dd.Founders.Share(dd.Total), Investors: make(map[string]Ratio, len(dd.Investors))}
	for name, v := range dd.Investors {
		s.Investors[name] = v.Share(dd.Total)
	}
	return s
}
