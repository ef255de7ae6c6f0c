package fund

// EntryFeeID returns the id of the entry-fee leg synthesized for a contribution.
func EntryFeeID(contributionID string) string { return contributionID + "_entry_fee" }

// EntryFee returns the fee founders earn on a contribution of net amount.
//
// Contributions are recorded net of their entry fee, the gross being
// net/(1-rate).
func EntryFee(net Money, rate Ratio) Money {
	return net.Div(rate.Complement()).Mul(rate)
}

// ExpandEntryFees returns a copy of legs where every investor contribution is
// immediately followed by the founders entry-fee leg it implies.
//
// A fee leg already present in legs with the expected id is not duplicated,
// so that expanding an expanded ledger is a no-op. legs is not modified.
func ExpandEntryFees(legs []Leg, rate Ratio) []Leg {
	present := make(map[string]bool)
	for _, l := range legs {
		if l.Type == LegFoundersEntryFee && l.ID != "" {
			present[l.ID] = true
		}
	}
	out := make([]Leg, 0, 2*len(legs))
	for _, l := range legs {
		out = append(out, l)
		if l.Type != LegInvestorContribution {
			continue
		}
		id := EntryFeeID(l.ID)
		if present[id] {
			continue
		}
		out = append(out, Leg{
			ID:              id,
			Owner:           Founders,
			Name:            FoundersName,
			Type:            LegFoundersEntryFee,
			Amount:          EntryFee(l.Amount, rate),
			On:              l.On,
			EarnsDollarDays: true,
		})
	}
	return out
}
