package fund

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPolicyCheck(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *Policy)
		wantErr bool
	}{
		{"default", func(p *Policy) {}, false},
		{"founders keep the whole moonbag", func(p *Policy) { p.FoundersMoonbagPct = R(1) }, false},
		{"no moonbag for founders", func(p *Policy) { p.FoundersMoonbagPct = R(0) }, false},
		{"negative moonbag", func(p *Policy) { p.FoundersMoonbagPct = R(-0.1) }, true},
		{"moonbag above 100%", func(p *Policy) { p.FoundersMoonbagPct = R(1.01) }, true},
		{"entry fee of 100%", func(p *Policy) { p.EntryFeeRate = R(1) }, true},
		{"negative management fee", func(p *Policy) { p.MgmtFeeRate = R(-0.2) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.modify(&p)
			err := p.Check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPolicy) {
				t.Errorf("Check() error = %v, want ErrInvalidPolicy", err)
			}
		})
	}
}

func TestPolicyClampsLossesByDefault(t *testing.T) {
	if !DefaultPolicy().ClampsNegativeProfit() {
		t.Errorf("DefaultPolicy() does not clamp losses")
	}
	if !(Policy{}).ClampsNegativeProfit() {
		t.Errorf("Policy{} does not clamp losses")
	}

	var p Policy
	data := `{"mgmtFeeRate":0.2,"entryFeeRate":0.1,"foundersMoonbagPct":0.75,"investorSeedBaseline":20000,"foundersCount":2}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	s := withLaura(seedScenario())
	s.Policy = p
	s.WalletSizeEndOfWindow = M(15000)
	o := mustRecompute(t, s)

	if !o.Profit.Clamped {
		t.Errorf("Profit.Clamped = false, want true for raw %v", o.Profit.Raw)
	}
	if !o.ProfitTotal.IsZero() || !o.RealizedProfit.IsZero() {
		t.Errorf("ProfitTotal, RealizedProfit = %v, %v, want 0, 0", o.ProfitTotal, o.RealizedProfit)
	}
	if got := o.RealizedNet.Investors["Laura"]; !got.IsZero() {
		t.Errorf("RealizedNet[Laura] = %v, want 0", got)
	}

	p.ReportNegativeProfit = true
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	var back Policy
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if back.ClampsNegativeProfit() {
		t.Errorf("reportNegativeProfit lost in %s", out)
	}
}
