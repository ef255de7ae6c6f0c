package fund

import (
	"errors"
	"fmt"
	"sync"
)

// Overrides replaces parts of a State. Nil fields keep the base value.
type Overrides struct {
	Window                   *Window `json:"window,omitempty"`
	WalletSizeEndOfWindow    *Money  `json:"walletSizeEndOfWindow,omitempty"`
	UnrealizedPnlEndOfWindow *Money  `json:"unrealizedPnlEndOfWindow,omitempty"`
	Contributions            []Leg   `json:"contributions,omitempty"`
	Policy                   *Policy `json:"constants,omitempty"`
}

// Apply returns a copy of base with the overrides merged in.
func (o Overrides) Apply(base State) State {
	s := base.Clone()
	if o.Window != nil {
		s.Window = *o.Window
	}
	if o.WalletSizeEndOfWindow != nil {
		s.WalletSizeEndOfWindow = *o.WalletSizeEndOfWindow
	}
	if o.UnrealizedPnlEndOfWindow != nil {
		s.UnrealizedPnlEndOfWindow = *o.UnrealizedPnlEndOfWindow
	}
	if o.Contributions != nil {
		s.Contributions = append([]Leg(nil), o.Contributions...)
	}
	if o.Policy != nil {
		s.Policy = *o.Policy
	}
	return s
}

// WhatIf recomputes base with overrides applied.
func WhatIf(base State, o Overrides) (Outputs, error) {
	return Recompute(o.Apply(base))
}

// Sweep runs WhatIf for every scenario concurrently. Outputs are in the
// order of scenarios. The error joins the failure of every scenario.
func Sweep(base State, scenarios []Overrides) ([]Outputs, error) {
	outputs := make([]Outputs, len(scenarios))
	errs := make([]error, len(scenarios))
	var wg sync.WaitGroup
	for i, o := range scenarios {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := WhatIf(base, o)
			if err != nil {
				errs[i] = fmt.Errorf("scenario %d: %w", i, err)
				return
			}
			outputs[i] = out
		}()
	}
	wg.Wait()
	return outputs, errors.Join(errs...)
}

// Delta is the change of one participant's allocation.
type Delta struct {
	Participant string     `json:"participant"`
	DollarDays  DollarDays `json:"dollarDays"`
	Share       Ratio      `json:"share"`
	RealizedNet Money      `json:"realizedNet"`
}

// Impact compares the outputs with and without an extra leg.
type Impact struct {
	Leg    Leg     `json:"leg"`
	Before Outputs `json:"before"`
	After  Outputs `json:"after"`
	// Deltas lists founders first, then every investor of either outputs.
	Deltas []Delta `json:"deltas"`
}

// Of returns the delta of a participant.
func (i Impact) Of(participant string) (Delta, bool) {
	for _, d := range i.Deltas {
		if d.Participant == participant {
			return d, true
		}
	}
	return Delta{}, false
}

// AddContributionImpact previews the dilution a new leg causes. A leg without
// an id is given a temporary one.
func AddContributionImpact(base State, leg Leg) (Impact, error) {
	if leg.ID == "" {
		leg.ID = "temp_" + newID()
	}
	before, err := Recompute(base)
	if err != nil {
		return Impact{}, err
	}
	with := base.Clone()
	with.Contributions = append(with.Contributions, leg)
	after, err := Recompute(with)
	if err != nil {
		return Impact{}, fmt.Errorf("cannot add leg %q: %w", leg.ID, err)
	}

	impact := Impact{Leg: leg, Before: before, After: after}
	for _, p := range Participants(before.Participants(), after.Participants()) {
		impact.Deltas = append(impact.Deltas, Delta{
			Participant: p,
			DollarDays:  after.DollarDays.Of(p).Sub(before.DollarDays.Of(p)),
			Share:       after.Shares.Of(p).Sub(before.Shares.Of(p)),
			RealizedNet: after.RealizedNet.Of(p).Sub(before.RealizedNet.Of(p)),
		})
	}
	return impact, nil
}
