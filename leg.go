package fund

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Owner is the participant class a leg belongs to.
type Owner string

// Participant classes.
const (
	Founders Owner = "founders"
	Investor Owner = "investor"
)

// FoundersName is the display name of every founders leg.
const FoundersName = "Founders"

// Check returns an error for an unknown owner.
func (o Owner) Check() error {
	switch o {
	case Founders, Investor:
		return nil
	default:
		return fmt.Errorf("unknown owner %q", string(o))
	}
}

// LegType is a typed string for identifying the kind of cash event.
type LegType string

// Leg types used in the fund ledger.
const (
	LegSeed                 LegType = "seed"
	LegInvestorContribution LegType = "investor_contribution"
	LegFoundersEntryFee     LegType = "founders_entry_fee"
	LegFoundersMgmtFee      LegType = "founders_mgmt_fee"
	LegMoonbagFounders      LegType = "moonbag_founders"
	LegMoonbagInvestor      LegType = "moonbag_investor"
	LegDraw                 LegType = "draw"
)

// LegTypes lists every leg type, in ledger order.
var LegTypes = []LegType{LegSeed, LegInvestorContribution, LegFoundersEntryFee, LegFoundersMgmtFee, LegMoonbagFounders, LegMoonbagInvestor, LegDraw}

// owner returns the only owner allowed for this type, or "" when both are allowed.
func (t LegType) owner() (Owner, error) {
	switch t {
	case LegSeed, LegDraw:
		return "", nil
	case LegInvestorContribution, LegMoonbagInvestor:
		return Investor, nil
	case LegFoundersEntryFee, LegFoundersMgmtFee, LegMoonbagFounders:
		return Founders, nil
	default:
		return "", fmt.Errorf("unknown leg type %q", string(t))
	}
}

// IsCarry reports whether legs of this type are produced at a window end to seed the next one.
func (t LegType) IsCarry() bool {
	switch t {
	case LegFoundersMgmtFee, LegMoonbagFounders, LegMoonbagInvestor:
		return true
	default:
		return false
	}
}

// ParseLegType parses a leg type name.
func ParseLegType(s string) (LegType, error) {
	t := LegType(s)
	if _, err := t.owner(); err != nil {
		return "", err
	}
	return t, nil
}

// Leg is one ledger entry: a contribution, a fee, a moonbag carry or a draw.
type Leg struct {
	ID     string  // ID uniquely identifies the leg in a ledger.
	Owner  Owner   // Owner is the participant class.
	Name   string  // Name is the investor name, or FoundersName.
	Type   LegType // Type is the kind of cash event.
	Amount Money   // Amount is signed, contributions are positive.
	On     Date    // On is the day the leg is effective.
	// EarnsDollarDays is false for legs carried from a previous window, so
	// that they are not weighted twice.
	EarnsDollarDays bool
}

// NewInvestorContribution returns a net-of-fee contribution of an investor.
func NewInvestorContribution(id, name string, on Date, net Money) Leg {
	return Leg{ID: id, Owner: Investor, Name: name, Type: LegInvestorContribution, Amount: net, On: on, EarnsDollarDays: true}
}

// NewFoundersSeed returns the founders seed capital.
func NewFoundersSeed(id string, on Date, amount Money) Leg {
	return Leg{ID: id, Owner: Founders, Name: FoundersName, Type: LegSeed, Amount: amount, On: on, EarnsDollarDays: true}
}

// Participant returns the key the leg aggregates under: FoundersName for
// founders legs, the investor name otherwise.
func (l Leg) Participant() string {
	if l.Owner == Founders {
		return FoundersName
	}
	return l.Name
}

// Check returns an error detailing every structural problem of the leg.
func (l Leg) Check() error {
	var errs error
	if l.On.IsZero() {
		errs = errors.Join(errs, errors.New("missing date"))
	}
	if err := l.Owner.Check(); err != nil {
		errs = errors.Join(errs, err)
	}
	want, err := l.Type.owner()
	if err != nil {
		errs = errors.Join(errs, err)
	} else if want != "" && l.Owner != "" && want != l.Owner {
		errs = errors.Join(errs, fmt.Errorf("%s leg must be owned by %s, not %s", l.Type, want, l.Owner))
	}
	switch {
	case l.Owner == Investor && l.Name == "":
		errs = errors.Join(errs, errors.New("investor leg without a name"))
	case l.Owner == Investor && l.Name == FoundersName:
		errs = errors.Join(errs, fmt.Errorf("investor cannot be named %q", FoundersName))
	}
	if errs != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLeg, l.ID, errs)
	}
	return nil
}

// MarshalJSON writes the leg fields in a stable order.
func (l Leg) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", l.ID)
	w.Append("owner", l.Owner)
	w.Append("name", l.Name)
	w.Append("type", l.Type)
	w.Append("amount", l.Amount)
	w.Append("ts", l.On)
	w.Append("earnsDollarDaysThisWindow", l.EarnsDollarDays)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a leg from its JSON representation.
func (l *Leg) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID              string  `json:"id"`
		Owner           Owner   `json:"owner"`
		Name            string  `json:"name"`
		Type            LegType `json:"type"`
		Amount          Money   `json:"amount"`
		On              Date    `json:"ts"`
		EarnsDollarDays *bool   `json:"earnsDollarDaysThisWindow"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*l = Leg{ID: temp.ID, Owner: temp.Owner, Name: temp.Name, Type: temp.Type, Amount: temp.Amount, On: temp.On}
	// A missing flag means the leg is a regular contribution of the window.
	l.EarnsDollarDays = temp.EarnsDollarDays == nil || *temp.EarnsDollarDays
	return nil
}
