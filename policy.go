package fund

import (
	"errors"
	"fmt"
)

// Policy holds the constants governing fees and profit splits.
type Policy struct {
	// MgmtFeeRate is the share of an investor's positive realized gross taken
	// as a management fee and carried to founders.
	MgmtFeeRate Ratio `json:"mgmtFeeRate" yaml:"mgmtFeeRate"`
	// EntryFeeRate is the fee taken on every gross investor contribution.
	EntryFeeRate Ratio `json:"entryFeeRate" yaml:"entryFeeRate"`
	// FoundersMoonbagPct is the founders part of the unrealized profit.
	FoundersMoonbagPct Ratio `json:"foundersMoonbagPct" yaml:"foundersMoonbagPct"`
	// InvestorSeedBaseline is the capital already in the wallet before the
	// window, deducted from the wallet to obtain the profit.
	InvestorSeedBaseline Money `json:"investorSeedBaseline" yaml:"investorSeedBaseline"`
	// FoundersCount is the number of founders, only used by business checks.
	FoundersCount int `json:"foundersCount" yaml:"foundersCount"`
	// ReportNegativeProfit lets losses flow to the allocation. By default the
	// profit total and the realized profit are floored at zero.
	ReportNegativeProfit bool `json:"reportNegativeProfit,omitempty" yaml:"reportNegativeProfit,omitempty"`
	// RouteUnassignedMoonbag gives founders the investor moonbag pool when no
	// investor earned dollar-days, instead of leaving it unassigned.
	RouteUnassignedMoonbag bool `json:"routeUnassignedMoonbag" yaml:"routeUnassignedMoonbag"`
}

// DefaultPolicy returns the policy the fund operates with.
func DefaultPolicy() Policy {
	return Policy{
		MgmtFeeRate:          R(0.20),
		EntryFeeRate:         R(0.10),
		FoundersMoonbagPct:   R(0.75),
		InvestorSeedBaseline: M(20000),
		FoundersCount:        2,
	}
}

// ClampsNegativeProfit reports whether losses are floored at zero.
func (p Policy) ClampsNegativeProfit() bool { return !p.ReportNegativeProfit }

// Check returns an error if the policy cannot be used to compute allocations.
//
// Out of range but computable values (a 60% management fee) are not errors,
// they are reported by Validate.
func (p Policy) Check() error {
	var errs error
	if p.EntryFeeRate.IsNegative() || !p.EntryFeeRate.LessThan(one) {
		errs = errors.Join(errs, fmt.Errorf("entry fee rate %s must be in [0%%, 100%%)", p.EntryFeeRate))
	}
	if p.FoundersMoonbagPct.IsNegative() || p.FoundersMoonbagPct.GreaterThan(one) {
		errs = errors.Join(errs, fmt.Errorf("founders moonbag %s must be in [0%%, 100%%]", p.FoundersMoonbagPct))
	}
	if p.MgmtFeeRate.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("management fee rate %s must not be negative", p.MgmtFeeRate))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPolicy, errs)
	}
	return nil
}
