package fund

// ProfitDerivation details how the window profit is obtained from the wallet size.
type ProfitDerivation struct {
	Wallet        Money `json:"wallet"`
	Baseline      Money `json:"baseline"`
	Contributions Money `json:"contributions"` // earning non-seed legs dated up to the window end
	Raw           Money `json:"raw"`           // wallet - baseline - contributions, zero for an empty wallet
	Total         Money `json:"total"`         // profit total, realized and unrealized
	Unrealized    Money `json:"unrealized"`
	Realized      Money `json:"realized"`
	Clamped       bool  `json:"clamped"` // true when a negative value was floored at zero
}

// InWindowContributions sums the capital that entered the wallet during w.
//
// Seed legs are excluded: they are the capital the baseline already accounts for.
func InWindowContributions(legs []Leg, w Window) Money {
	var total Money
	for _, l := range legs {
		if !l.EarnsDollarDays || l.Type == LegSeed || l.On.After(w.End) {
			continue
		}
		total = total.Add(l.Amount)
	}
	return total
}

// DeriveProfit computes the profit total and its realized part. expanded
// must already contain the entry-fee legs.
func DeriveProfit(s State, expanded []Leg) ProfitDerivation {
	p := ProfitDerivation{
		Wallet:        s.WalletSizeEndOfWindow,
		Baseline:      s.Policy.InvestorSeedBaseline,
		Contributions: InWindowContributions(expanded, s.Window),
		Unrealized:    s.UnrealizedPnlEndOfWindow,
	}
	if p.Wallet.IsPositive() {
		p.Raw = p.Wallet.Sub(p.Baseline).Sub(p.Contributions)
	}
	p.Total = p.Raw
	if s.Policy.ClampsNegativeProfit() && p.Total.IsNegative() {
		p.Total, p.Clamped = Money{}, true
	}
	p.Realized = p.Total.Sub(p.Unrealized)
	if s.Policy.ClampsNegativeProfit() && p.Realized.IsNegative() {
		p.Realized, p.Clamped = Money{}, true
	}
	return p
}

// AllocateRealized splits the realized profit by shares.
func AllocateRealized(realized Money, shares Shares) Allocation {
	gross := newAllocation()
	gross.Founders = realized.Mul(shares.Founders)
	for name, s := range shares.Investors {
		gross.Investors[name] = realized.Mul(s)
	}
	return gross
}

// ComputeManagementFees withholds rate on every investor's positive gross.
// Founders pay no management fee.
func ComputeManagementFees(gross Allocation, rate Ratio) ManagementFees {
	fees := ManagementFees{Investors: make(map[string]Money, len(gross.Investors))}
	for _, name := range gross.Names() {
		var fee Money
		if g := gross.Investors[name]; g.IsPositive() {
			fee = g.Mul(rate)
		}
		fees.Investors[name] = fee
		fees.FoundersCarryTotal = fees.FoundersCarryTotal.Add(fee)
	}
	return fees
}

// ApplyManagementFees moves investor fees to founders.
func ApplyManagementFees(gross Allocation, fees ManagementFees) Allocation {
	net := newAllocation()
	net.Founders = gross.Founders.Add(fees.FoundersCarryTotal)
	for name, g := range gross.Investors {
		net.Investors[name] = g.Sub(fees.Investors[name])
	}
	return net
}

// MgmtFeeID returns the id of the management fee carry leg of a window.
func MgmtFeeID(w Window) string { return "founders_mgmt_fee_" + w.End.String() }

// ManagementFeeLeg returns the carry-forward leg crediting founders with the
// management fees of w, or nil if there is nothing to carry.
func ManagementFeeLeg(fees ManagementFees, w Window) *Leg {
	if !fees.FoundersCarryTotal.IsPositive() {
		return nil
	}
	return &Leg{
		ID:     MgmtFeeID(w),
		Owner:  Founders,
		Name:   FoundersName,
		Type:   LegFoundersMgmtFee,
		Amount: fees.FoundersCarryTotal,
		On:     w.End,
	}
}
