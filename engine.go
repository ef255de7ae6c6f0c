package fund

import (
	"errors"
	"fmt"
	"slices"
)

// State is the input of a computation. Recompute never modifies it.
type State struct {
	Window                   Window `json:"window"`
	WalletSizeEndOfWindow    Money  `json:"walletSizeEndOfWindow"`
	UnrealizedPnlEndOfWindow Money  `json:"unrealizedPnlEndOfWindow"`
	Contributions            []Leg  `json:"contributions"`
	Policy                   Policy `json:"constants"`
}

// Clone returns a copy of s that shares no slice with it.
func (s State) Clone() State {
	s.Contributions = slices.Clone(s.Contributions)
	return s
}

// Check returns every structural error of the state, joined.
func (s State) Check() error {
	errs := []error{s.Window.Check(), s.Policy.Check()}
	for _, l := range s.Contributions {
		errs = append(errs, l.Check())
	}
	return errors.Join(errs...)
}

// Outputs is the result of a computation.
type Outputs struct {
	Profit          ProfitDerivation `json:"profit"`
	ProfitTotal     Money            `json:"profitTotal"`
	RealizedProfit  Money            `json:"realizedProfit"`
	DollarDays      DollarDaysMap    `json:"dollarDays"`
	Shares          Shares           `json:"shares"`
	RealizedGross   Allocation       `json:"realizedGross"`
	RealizedNet     Allocation       `json:"realizedNet"`
	ManagementFees  ManagementFees   `json:"managementFees"`
	Moonbag         Moonbag          `json:"moonbag"`
	FoundersMgmtLeg *Leg             `json:"foundersMgmtLeg"`
	MoonbagLegs     []Leg            `json:"moonbagLegs"`
	EndCapital      Allocation       `json:"endCapital"`
	// ExpandedLegs are the contributions with their entry-fee legs.
	ExpandedLegs []Leg `json:"expandedLegs"`
}

// CarryLegs returns the legs seeding the next window: the management fee leg
// if any, then the moonbag legs.
func (o Outputs) CarryLegs() []Leg {
	var legs []Leg
	if o.FoundersMgmtLeg != nil {
		legs = append(legs, *o.FoundersMgmtLeg)
	}
	return append(legs, o.MoonbagLegs...)
}

// Participants returns FoundersName then every investor appearing in the outputs.
func (o Outputs) Participants() []string {
	return Participants(o.DollarDays.Names(), o.RealizedNet.Names(), o.Moonbag.Names(), o.EndCapital.Names())
}

// Recompute runs the allocation pipeline on s.
//
// It returns an error only for structural problems (an invalid window, leg or
// policy), business anomalies are reported by Validate.
func Recompute(s State) (Outputs, error) {
	if err := s.Check(); err != nil {
		return Outputs{}, fmt.Errorf("cannot recompute: %w", err)
	}
	s = s.Clone()

	var o Outputs
	o.ExpandedLegs = ExpandEntryFees(s.Contributions, s.Policy.EntryFeeRate)
	o.Profit = DeriveProfit(s, o.ExpandedLegs)
	o.ProfitTotal = o.Profit.Total
	o.RealizedProfit = o.Profit.Realized
	o.DollarDays = ComputeDollarDays(o.ExpandedLegs, s.Window)

	if o.DollarDays.Total.IsZero() {
		// Nobody earned anything in the window: there is nothing to allocate.
		o.Shares = Shares{Investors: make(map[string]Ratio)}
		o.RealizedGross = zeroAllocation(o.DollarDays)
		o.RealizedNet = zeroAllocation(o.DollarDays)
		o.ManagementFees = ManagementFees{Investors: make(map[string]Money)}
		for name := range o.DollarDays.Investors {
			o.Shares.Investors[name] = Ratio{}
			o.ManagementFees.Investors[name] = Money{}
		}
		o.Moonbag = Moonbag{Allocation: newAllocation()}
		o.MoonbagLegs = []Leg{}
		o.EndCapital = ComputeEndCapital(o.ExpandedLegs, o.RealizedNet)
		return o, nil
	}

	o.Shares = ComputeShares(o.DollarDays)
	o.RealizedGross = AllocateRealized(o.RealizedProfit, o.Shares)
	o.ManagementFees = ComputeManagementFees(o.RealizedGross, s.Policy.MgmtFeeRate)
	o.RealizedNet = ApplyManagementFees(o.RealizedGross, o.ManagementFees)
	o.FoundersMgmtLeg = ManagementFeeLeg(o.ManagementFees, s.Window)
	o.Moonbag = AllocateMoonbag(s.UnrealizedPnlEndOfWindow, o.DollarDays, s.Policy)
	o.MoonbagLegs = MoonbagLegs(o.Moonbag, s.Window)
	if o.MoonbagLegs == nil {
		o.MoonbagLegs = []Leg{}
	}
	o.EndCapital = ComputeEndCapital(o.ExpandedLegs, o.RealizedNet)
	return o, nil
}

// zeroAllocation lists every participant of dd with a zero amount.
func zeroAllocation(dd DollarDaysMap) Allocation {
	a := newAllocation()
	for name := range dd.Investors {
		a.Investors[name] = Money{}
	}
	return a
}
