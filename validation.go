package fund

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Tolerances used to reconcile outputs.
const (
	ShareTolerance = 1e-6
)

// Severity ranks validation issues.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

func (s Severity) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Severity) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Issue codes.
const (
	CodeSharesSum          = "SHARES_SUM"
	CodeGrossSum           = "GROSS_SUM"
	CodeNetSum             = "NET_SUM"
	CodeFeesSum            = "FEES_SUM"
	CodeNegativeFee        = "NEGATIVE_FEE"
	CodeFeeOnLoss          = "FEE_ON_NON_POSITIVE_GROSS"
	CodeFeeRate            = "FEE_RATE"
	CodeMgmtLeg            = "MGMT_LEG"
	CodeDollarDaysSum      = "DOLLAR_DAYS_SUM"
	CodeEntryFees          = "ENTRY_FEES"
	CodeMoonbagSum         = "MOONBAG_SUM"
	CodeMoonbagFounders    = "MOONBAG_FOUNDERS"
	CodeProfitDerivation   = "PROFIT_DERIVATION"
	CodeMgmtFeeRateRange   = "MGMT_FEE_RATE_RANGE"
	CodeEntryFeeRateRange  = "ENTRY_FEE_RATE_RANGE"
	CodeMoonbagPctRange    = "MOONBAG_PCT_RANGE"
	CodeFoundersCount      = "FOUNDERS_COUNT"
	CodeFoundersName       = "FOUNDERS_NAME"
	CodeDuplicateID        = "DUPLICATE_ID"
	CodeEmptyLedger        = "EMPTY_LEDGER"
	CodeZeroActivity       = "ZERO_ACTIVITY"
	CodeLongWindow         = "LONG_WINDOW"
	CodeLegBeforeWindow    = "LEG_BEFORE_WINDOW"
	CodeLegAfterWindow     = "LEG_AFTER_WINDOW"
	CodeLegOnWindowEnd     = "LEG_ON_WINDOW_END"
	CodeProfitClamped      = "PROFIT_CLAMPED"
	CodeNegativeUnrealized = "NEGATIVE_UNREALIZED"
	CodeUnassignedMoonbag  = "UNASSIGNED_MOONBAG"
	CodeMoonbagRouted      = "MOONBAG_ROUTED_TO_FOUNDERS"
)

// Issue is a single validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Expected string   `json:"expected,omitempty"`
	Actual   string   `json:"actual,omitempty"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s %s: %s", i.Severity, i.Code, i.Message)
	if i.Expected != "" || i.Actual != "" {
		s += fmt.Sprintf(" (expected %s, got %s)", i.Expected, i.Actual)
	}
	return s
}

// Issues is the result of a validation.
type Issues []Issue

// Errors returns only the issues of severity error.
func (is Issues) Errors() Issues { return is.filter(SeverityError) }

// Warnings returns only the issues of severity warning.
func (is Issues) Warnings() Issues { return is.filter(SeverityWarning) }

// Infos returns only the issues of severity info.
func (is Issues) Infos() Issues { return is.filter(SeverityInfo) }

// HasErrors reports whether any issue is an error.
func (is Issues) HasErrors() bool { return len(is.Errors()) > 0 }

// Count returns the number of issues per severity name.
func (is Issues) Count() map[string]int {
	count := map[string]int{SeverityError.String(): 0, SeverityWarning.String(): 0, SeverityInfo.String(): 0}
	for _, i := range is {
		count[i.Severity.String()]++
	}
	return count
}

// Sorted returns a copy sorted by severity, code then field.
func (is Issues) Sorted() Issues {
	sorted := slices.Clone(is)
	slices.SortStableFunc(sorted, func(a, b Issue) int {
		return cmp.Or(cmp.Compare(a.Severity, b.Severity), strings.Compare(a.Code, b.Code), strings.Compare(a.Field, b.Field))
	})
	return sorted
}

func (is Issues) filter(s Severity) Issues {
	var out Issues
	for _, i := range is {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// validator accumulates issues.
type validator struct {
	issues Issues
}

func (v *validator) add(sev Severity, code, field, msg string, args ...any) {
	v.issues = append(v.issues, Issue{Severity: sev, Code: code, Field: field, Message: fmt.Sprintf(msg, args...)})
}

// money reports an error when actual differs from expected by more than a cent.
func (v *validator) money(sev Severity, code, field string, expected, actual Money, msg string) {
	if actual.NearlyEqual(expected, Cent) {
		return
	}
	v.issues = append(v.issues, Issue{Severity: sev, Code: code, Field: field, Message: msg, Expected: expected.String(), Actual: actual.String()})
}

// Validate reconciles the outputs with the state they were computed from and
// reports business anomalies.
//
// It never fails: structural problems are Recompute errors and everything
// else is an Issue.
func Validate(s State, o Outputs) Issues {
	var v validator
	if o.DollarDays.Total.IsZero() {
		v.add(SeverityWarning, CodeZeroActivity, "dollarDays.total", "no dollar-days were earned in the window, nothing is allocated")
	} else {
		v.reconcile(s, o)
	}
	v.business(s, o)
	return v.issues
}

// reconcile checks the arithmetic invariants of the outputs.
func (v *validator) reconcile(s State, o Outputs) {
	if sum := o.Shares.Sum(); !sum.NearlyEqual(one, ShareTolerance) {
		v.issues = append(v.issues, Issue{Severity: SeverityError, Code: CodeSharesSum, Field: "shares", Message: "shares do not sum to 100%", Expected: one.String(), Actual: sum.String()})
	}
	v.money(SeverityError, CodeGrossSum, "realizedGross", o.RealizedProfit, o.RealizedGross.Total(), "realized gross does not sum to the realized profit")
	v.money(SeverityError, CodeNetSum, "realizedNet", o.RealizedProfit, o.RealizedNet.Total(), "realized net does not sum to the realized profit")
	v.money(SeverityError, CodeFeesSum, "managementFees.foundersCarryTotal", o.ManagementFees.Sum(), o.ManagementFees.FoundersCarryTotal, "founders carry does not match the investor management fees")

	rate := s.Policy.MgmtFeeRate
	for _, name := range o.ManagementFees.Names() {
		fee := o.ManagementFees.Investors[name]
		gross := o.RealizedGross.Investors[name]
		field := "managementFees.investors." + name
		switch {
		case fee.IsNegative():
			v.add(SeverityError, CodeNegativeFee, field, "negative management fee %s for %s", fee, name)
		case !gross.IsPositive() && !fee.IsZero():
			v.add(SeverityError, CodeFeeOnLoss, field, "management fee %s charged on a non positive gross %s for %s", fee, gross, name)
		case gross.IsPositive():
			v.money(SeverityError, CodeFeeRate, field, gross.Mul(rate), fee, fmt.Sprintf("management fee of %s is not %s of its gross", name, rate))
		}
	}

	carry := o.ManagementFees.FoundersCarryTotal
	switch leg := o.FoundersMgmtLeg; {
	case leg == nil && carry.IsPositive():
		v.add(SeverityError, CodeMgmtLeg, "foundersMgmtLeg", "missing management fee leg for a carry of %s", carry)
	case leg != nil && !carry.IsPositive():
		v.add(SeverityError, CodeMgmtLeg, "foundersMgmtLeg", "management fee leg without any carry")
	case leg != nil:
		v.money(SeverityError, CodeMgmtLeg, "foundersMgmtLeg.amount", carry, leg.Amount, "management fee leg does not carry the management fees")
		if leg.On != s.Window.End || leg.EarnsDollarDays {
			v.add(SeverityError, CodeMgmtLeg, "foundersMgmtLeg", "management fee leg must be dated %s and not earn dollar-days", s.Window.End)
		}
	}

	if sum := o.DollarDays.Founders.Add(o.DollarDays.InvestorsTotal()); !sum.NearlyEqual(o.DollarDays.Total, ShareTolerance) {
		v.issues = append(v.issues, Issue{Severity: SeverityError, Code: CodeDollarDaysSum, Field: "dollarDays.total", Message: "dollar-days total does not match the participants", Expected: sum.String(), Actual: o.DollarDays.Total.String()})
	}

	var expectedFees, actualFees Money
	for _, l := range o.ExpandedLegs {
		switch l.Type {
		case LegInvestorContribution:
			expectedFees = expectedFees.Add(EntryFee(l.Amount, s.Policy.EntryFeeRate))
		case LegFoundersEntryFee:
			actualFees = actualFees.Add(l.Amount)
		}
	}
	v.money(SeverityError, CodeEntryFees, "expandedLegs", expectedFees, actualFees, "entry fee legs do not match the investor contributions")

	unrealized := s.UnrealizedPnlEndOfWindow
	investorsEarned := o.DollarDays.InvestorsTotal().IsPositive()
	expectedFounders := unrealized.Mul(s.Policy.FoundersMoonbagPct)
	if !investorsEarned && s.Policy.RouteUnassignedMoonbag {
		expectedFounders = unrealized
	}
	v.money(SeverityError, CodeMoonbagFounders, "moonbag.founders", expectedFounders, o.Moonbag.Founders, "founders moonbag does not match the policy")
	sumSeverity := SeverityError
	if !investorsEarned {
		sumSeverity = SeverityWarning
	}
	v.money(sumSeverity, CodeMoonbagSum, "moonbag", unrealized, o.Moonbag.Total(), "moonbag does not distribute the whole unrealized profit")

	p := DeriveProfit(s, o.ExpandedLegs)
	v.money(SeverityError, CodeProfitDerivation, "profitTotal", p.Total, o.ProfitTotal, "profit total does not derive from the wallet size")
	v.money(SeverityError, CodeProfitDerivation, "realizedProfit", p.Realized, o.RealizedProfit, "realized profit does not derive from the profit total")
}

// business reports values that are computable but unusual.
func (v *validator) business(s State, o Outputs) {
	p := s.Policy
	if !p.MgmtFeeRate.Between(0, 0.5) {
		v.add(SeverityWarning, CodeMgmtFeeRateRange, "constants.mgmtFeeRate", "management fee rate %s is outside [0%%, 50%%]", p.MgmtFeeRate)
	}
	if !p.EntryFeeRate.Between(0, 0.25) {
		v.add(SeverityWarning, CodeEntryFeeRateRange, "constants.entryFeeRate", "entry fee rate %s is outside [0%%, 25%%]", p.EntryFeeRate)
	}
	if !p.FoundersMoonbagPct.Between(0.5, 1) {
		v.add(SeverityWarning, CodeMoonbagPctRange, "constants.foundersMoonbagPct", "founders moonbag %s is outside [50%%, 100%%]", p.FoundersMoonbagPct)
	}
	if p.FoundersCount < 1 {
		v.add(SeverityWarning, CodeFoundersCount, "constants.foundersCount", "the fund must have at least one founder, got %d", p.FoundersCount)
	}
	if days := s.Window.Days(); days > 366 {
		v.add(SeverityWarning, CodeLongWindow, "window", "window spans %d days, more than a year", days)
	}

	if len(s.Contributions) == 0 {
		v.add(SeverityInfo, CodeEmptyLedger, "contributions", "the ledger is empty")
	}
	seen := make(map[string]int)
	for i, l := range s.Contributions {
		field := fmt.Sprintf("contributions[%d]", i)
		if l.ID != "" {
			if j, ok := seen[l.ID]; ok {
				v.add(SeverityWarning, CodeDuplicateID, field, "leg id %q already used by contributions[%d]", l.ID, j)
			} else {
				seen[l.ID] = i
			}
		}
		if l.Owner == Founders && l.Name != FoundersName {
			v.add(SeverityWarning, CodeFoundersName, field, "founders leg %q is named %q instead of %q", l.ID, l.Name, FoundersName)
		}
		if !l.EarnsDollarDays {
			continue
		}
		switch {
		case l.On.Before(s.Window.Start):
			v.add(SeverityInfo, CodeLegBeforeWindow, field, "leg %q dated %s earns from the window start %s", l.ID, l.On, s.Window.Start)
		case l.On == s.Window.End:
			v.add(SeverityInfo, CodeLegOnWindowEnd, field, "leg %q dated on the window end earns no dollar-days", l.ID)
		case l.On.After(s.Window.End):
			v.add(SeverityInfo, CodeLegAfterWindow, field, "leg %q dated %s is after the window end %s and is ignored", l.ID, l.On, s.Window.End)
		}
	}

	if o.Profit.Clamped {
		v.add(SeverityWarning, CodeProfitClamped, "profitTotal", "negative profit (raw %s) was clamped to zero, losses are not allocated", o.Profit.Raw)
	}
	if s.UnrealizedPnlEndOfWindow.IsNegative() {
		v.add(SeverityWarning, CodeNegativeUnrealized, "unrealizedPnlEndOfWindow", "unrealized profit %s is negative and is split as a loss", s.UnrealizedPnlEndOfWindow)
	}
	if !o.Moonbag.Unassigned.IsZero() {
		v.add(SeverityWarning, CodeUnassignedMoonbag, "moonbag.unassigned", "investor moonbag pool of %s has no eligible investor", o.Moonbag.Unassigned)
	}
	if p.RouteUnassignedMoonbag && !o.DollarDays.Total.IsZero() && !o.DollarDays.InvestorsTotal().IsPositive() && !s.UnrealizedPnlEndOfWindow.IsZero() {
		v.add(SeverityInfo, CodeMoonbagRouted, "moonbag.founders", "investor moonbag pool routed to founders")
	}
}
