package fund

import (
	"slices"
	"time"
)

// TrendRow summarizes one computed window, for time series.
type TrendRow struct {
	Window         Window         `json:"window"`
	WalletSizeEnd  Money          `json:"walletSizeEnd"`
	ProfitTotal    Money          `json:"profitTotal"`
	Unrealized     Money          `json:"unrealized"`
	Realized       Money          `json:"realized"`
	DollarDays     DollarDaysMap  `json:"dollarDays"`
	Shares         Shares         `json:"shares"`
	RealizedNet    Allocation     `json:"realizedNet"`
	ManagementFees ManagementFees `json:"managementFees"`
	Moonbag        Moonbag        `json:"moonbag"`
	Timestamp      time.Time      `json:"timestamp"`
}

// NewTrendRow returns the trend row of a computation made at a given time.
func NewTrendRow(s State, o Outputs, at time.Time) TrendRow {
	return TrendRow{
		Window:         s.Window,
		WalletSizeEnd:  s.WalletSizeEndOfWindow,
		ProfitTotal:    o.ProfitTotal,
		Unrealized:     s.UnrealizedPnlEndOfWindow,
		Realized:       o.RealizedProfit,
		DollarDays:     o.DollarDays,
		Shares:         o.Shares,
		RealizedNet:    o.RealizedNet,
		ManagementFees: o.ManagementFees,
		Moonbag:        o.Moonbag,
		Timestamp:      at.UTC(),
	}
}

// Snapshot is the immutable audit record of one computation.
type Snapshot struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	State     State     `json:"state"`
	Outputs   Outputs   `json:"outputs"`
	TrendRow  TrendRow  `json:"trendRow"`
	Issues    Issues    `json:"validationErrors"`
}

// Saved is what SaveSnapshot produces for external persistence.
type Saved struct {
	TrendRow TrendRow `json:"trendRow"`
	// AuditLegs are the carry-forward legs to append to the next window ledger.
	AuditLegs []Leg    `json:"auditLegs"`
	Snapshot  Snapshot `json:"snapshot"`
}

// SaveSnapshot packages a computation with its validation into an audit
// record. Nothing is persisted.
func SaveSnapshot(s State, o Outputs, issues Issues) Saved {
	at := now()
	row := NewTrendRow(s, o, at)
	return Saved{
		TrendRow:  row,
		AuditLegs: o.CarryLegs(),
		Snapshot: Snapshot{
			ID:        newID(),
			Timestamp: at.UTC(),
			State:     s.Clone(),
			Outputs:   o,
			TrendRow:  row,
			Issues:    slices.Clone(issues),
		},
	}
}

// NextState returns the state of the following window: the snapshot ledger
// with the carry-forward legs appended, for window next. Wallet and
// unrealized profit are unknown and left to zero.
func (s Saved) NextState(next Window) State {
	state := s.Snapshot.State.Clone()
	state.Window = next
	state.WalletSizeEndOfWindow = Money{}
	state.UnrealizedPnlEndOfWindow = Money{}
	state.Contributions = append(state.Contributions, s.AuditLegs...)
	return state
}
