package fund

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestLegCheck(t *testing.T) {
	on := day(time.July, 10)
	tests := []struct {
		name    string
		leg     Leg
		wantErr bool
	}{
		{"seed", NewFoundersSeed("s", on, M(5000)), false},
		{"contribution", NewInvestorContribution("c", "Laura", on, M(4500)), false},
		{"investor seed", Leg{ID: "s", Owner: Investor, Name: "Laura", Type: LegSeed, Amount: M(1), On: on}, false},
		{"draw", Leg{ID: "d", Owner: Investor, Name: "Laura", Type: LegDraw, Amount: M(-100), On: on}, false},
		{"missing date", Leg{ID: "c", Owner: Investor, Name: "Laura", Type: LegInvestorContribution}, true},
		{"unknown owner", Leg{ID: "c", Owner: "bank", Type: LegSeed, On: on}, true},
		{"unknown type", Leg{ID: "c", Owner: Founders, Name: FoundersName, Type: "bonus", On: on}, true},
		{"founders contribution", Leg{ID: "c", Owner: Founders, Name: FoundersName, Type: LegInvestorContribution, On: on}, true},
		{"investor entry fee", Leg{ID: "c", Owner: Investor, Name: "Laura", Type: LegFoundersEntryFee, On: on}, true},
		{"unnamed investor", Leg{ID: "c", Owner: Investor, Type: LegInvestorContribution, On: on}, true},
		{"investor named like the founders", NewInvestorContribution("c", FoundersName, on, M(4500)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.leg.Check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLeg) {
				t.Errorf("Check() error = %v, want ErrInvalidLeg", err)
			}
		})
	}
}

func TestLegJSON(t *testing.T) {
	leg := NewInvestorContribution("laura_1", "Laura", day(time.July, 10), M(4500))
	b, err := json.Marshal(leg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"id":"laura_1","owner":"investor","name":"Laura","type":"investor_contribution","amount":4500,"ts":"2025-07-10","earnsDollarDaysThisWindow":true}`
	if string(b) != want {
		t.Errorf("json.Marshal() = %s\nwant %s", b, want)
	}
}

func TestLegUnmarshalDefaultsToEarning(t *testing.T) {
	var l Leg
	if err := json.Unmarshal([]byte(`{"owner":"investor","name":"Laura","type":"investor_contribution","amount":10,"ts":"2025-07-10"}`), &l); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !l.EarnsDollarDays {
		t.Errorf("EarnsDollarDays = false, want true when the flag is missing")
	}
	if err := json.Unmarshal([]byte(`{"owner":"founders","name":"Founders","type":"founders_mgmt_fee","amount":10,"ts":"2025-07-10","earnsDollarDaysThisWindow":false}`), &l); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if l.EarnsDollarDays {
		t.Errorf("EarnsDollarDays = true, want false")
	}
}

func TestExpandEntryFees(t *testing.T) {
	on := day(time.July, 10)
	legs := []Leg{
		NewFoundersSeed("seed", on, M(5000)),
		NewInvestorContribution("laura_1", "Laura", on, M(9000)),
	}
	got := ExpandEntryFees(legs, R(0.10))
	if len(got) != 3 {
		t.Fatalf("ExpandEntryFees() = %d legs, want 3", len(got))
	}
	fee := got[2]
	if fee.ID != "laura_1_entry_fee" || fee.Type != LegFoundersEntryFee || fee.Owner != Founders || fee.Name != FoundersName || fee.On != on || !fee.EarnsDollarDays {
		t.Errorf("entry fee leg = %+v", fee)
	}
	if !fee.Amount.Equal(M(1000)) {
		t.Errorf("entry fee = %v, want $1,000.00", fee.Amount)
	}
	if again := ExpandEntryFees(got, R(0.10)); len(again) != len(got) {
		t.Errorf("ExpandEntryFees() of expanded legs = %d legs, want %d", len(again), len(got))
	}
	if len(legs) != 2 {
		t.Errorf("ExpandEntryFees() modified its input")
	}
}

func TestComputeDollarDays(t *testing.T) {
	w := NewWindow(day(time.July, 10), day(time.December, 31))
	legs := []Leg{
		NewFoundersSeed("early", day(time.July, 1), M(100)),
		NewInvestorContribution("aug", "Laura", day(time.August, 1), M(10)),
		NewInvestorContribution("end", "Late", day(time.December, 31), M(10)),
		NewInvestorContribution("after", "Later", NewDate(2026, time.January, 5), M(10)),
		{ID: "carry", Owner: Investor, Name: "Laura", Type: LegMoonbagInvestor, Amount: M(99), On: day(time.July, 10)},
	}
	dd := ComputeDollarDays(legs, w)
	if want := M(100).Days(174); !dd.Founders.Equal(want) {
		t.Errorf("Founders = %v, want %v (legs before the start earn from the start)", dd.Founders, want)
	}
	if want := M(10).Days(152); !dd.Investors["Laura"].Equal(want) {
		t.Errorf("Laura = %v, want %v", dd.Investors["Laura"], want)
	}
	if got := dd.Names(); len(got) != 1 {
		t.Errorf("Names() = %v, want only Laura", got)
	}
	if want := M(100).Days(174).Add(M(10).Days(152)); !dd.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", dd.Total, want)
	}
}
