package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foundersfund/fund"
	"github.com/google/subcommands"
)

// run parses args with the command flags and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestRecomputeQuery(t *testing.T) {
	_, out := useScenario(t, lauraScenario, lauraLedger)

	tests := []struct {
		query string
		want  string
	}{
		{"$.realizedProfit", "10000"},
		{"$.realizedNet.investors.Laura", "3600"},
		{"$.managementFees.foundersCarryTotal", "900"},
		{"$.foundersMgmtLeg.id", `"founders_mgmt_fee_2025-12-31"`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out.Reset()
			if status := run(t, &recomputeCmd{}, "-q", tt.query); status != subcommands.ExitSuccess {
				t.Fatalf("recompute -q %s = %v", tt.query, status)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("recompute -q %s = %s, want %s", tt.query, got, tt.want)
			}
		})
	}

	if status := run(t, &recomputeCmd{}, "-q", "$.nope["); status != subcommands.ExitUsageError {
		t.Errorf("invalid query status = %v, want ExitUsageError", status)
	}
}

func TestRecomputeMarkdown(t *testing.T) {
	_, out := useScenario(t, lauraScenario, lauraLedger)

	if status := run(t, &recomputeCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("recompute = %v", status)
	}
	for _, want := range []string{"# Window 2025-07-10_2025-12-31", "Laura", "$3,600.00", "## Validation"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("recompute output misses %q:\n%s", want, out)
		}
	}
}

func TestRecomputeWritesMetrics(t *testing.T) {
	dir, _ := useScenario(t, lauraScenario+"metricsFile: fund.prom\n", lauraLedger)

	if status := run(t, &recomputeCmd{}, "-json"); status != subcommands.ExitSuccess {
		t.Fatalf("recompute = %v", status)
	}
	content, err := os.ReadFile(filepath.Join(dir, "fund.prom"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `fund_realized_net{participant="Laura"} 3600`) {
		t.Errorf("metrics file:\n%s", content)
	}
}

func TestRecomputeMissingScenario(t *testing.T) {
	useScenario(t, lauraScenario, lauraLedger)
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	scenarioFile = &missing

	if status := run(t, &recomputeCmd{}); status != subcommands.ExitFailure {
		t.Errorf("recompute = %v, want ExitFailure", status)
	}
}

func TestValidate(t *testing.T) {
	_, out := useScenario(t, lauraScenario, lauraLedger)

	if status := run(t, &validateCmd{}, "-json"); status != subcommands.ExitSuccess {
		t.Fatalf("validate = %v\n%s", status, out)
	}
	var issues fund.Issues
	if err := json.Unmarshal(out.Bytes(), &issues); err != nil {
		t.Fatalf("validate -json output is not a list of issues: %v\n%s", err, out)
	}
	if issues.HasErrors() {
		t.Errorf("validate reported errors: %v", issues.Errors())
	}
}

func TestWhatifOverrides(t *testing.T) {
	base := fund.State{Policy: fund.DefaultPolicy()}

	c := &whatifCmd{mgmtFee: "0.15", wallet: "60000"}
	scenarios, labels, err := c.overrides(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 1 || labels[0] != "what if" {
		t.Fatalf("got %d scenarios %q, want 1", len(scenarios), labels)
	}
	o := scenarios[0]
	if o.Policy == nil || !o.Policy.MgmtFeeRate.Equal(fund.R(0.15)) || !o.Policy.EntryFeeRate.Equal(fund.R(0.10)) {
		t.Errorf("policy override = %+v", o.Policy)
	}
	if o.WalletSizeEndOfWindow == nil || !o.WalletSizeEndOfWindow.Equal(fund.M(60000)) {
		t.Errorf("wallet override = %v", o.WalletSizeEndOfWindow)
	}
	if o.UnrealizedPnlEndOfWindow != nil {
		t.Errorf("unrealized override = %v, want none", o.UnrealizedPnlEndOfWindow)
	}

	c = &whatifCmd{wallets: "40000, 60000"}
	scenarios, labels, err = c.overrides(base)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"$40,000.00", "$60,000.00"}; strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Errorf("labels = %q, want %q", labels, want)
	}
	if scenarios[0].Policy != nil {
		t.Errorf("policy overridden without a rate flag")
	}

	if _, _, err := (&whatifCmd{entryFee: "ten"}).overrides(base); err == nil {
		t.Error("invalid -entry-fee want error")
	}
}

func TestWhatif(t *testing.T) {
	_, out := useScenario(t, lauraScenario, lauraLedger)

	if status := run(t, &whatifCmd{}, "-wallets", "50000,60000"); status != subcommands.ExitSuccess {
		t.Fatalf("whatif = %v", status)
	}
	for _, want := range []string{"recorded", "$60,000.00", "$7,200.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("whatif output misses %q:\n%s", want, out)
		}
	}
}

func TestImpactLeg(t *testing.T) {
	tests := []struct {
		name    string
		cmd     impactCmd
		wantErr bool
		want    fund.Leg
	}{
		{
			name: "investor",
			cmd:  impactCmd{name: "Damon", amount: "5000", date: "2025-08-15", owner: "investor", legTyp: "investor_contribution"},
			want: fund.NewInvestorContribution("", "Damon", fund.NewDate(2025, 8, 15), fund.M(5000)),
		},
		{
			name: "founders",
			cmd:  impactCmd{amount: "1000", date: "2025-08-15", owner: "founders", legTyp: "seed"},
			want: fund.NewFoundersSeed("", fund.NewDate(2025, 8, 15), fund.M(1000)),
		},
		{name: "missing amount", cmd: impactCmd{name: "Damon", date: "2025-08-15", owner: "investor", legTyp: "investor_contribution"}, wantErr: true},
		{name: "missing name", cmd: impactCmd{amount: "1", date: "2025-08-15", owner: "investor", legTyp: "investor_contribution"}, wantErr: true},
		{name: "bad type", cmd: impactCmd{name: "Damon", amount: "1", date: "2025-08-15", owner: "investor", legTyp: "gift"}, wantErr: true},
		{name: "bad date", cmd: impactCmd{name: "Damon", amount: "1", date: "someday", owner: "investor", legTyp: "investor_contribution"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.leg()
			if (err != nil) != tt.wantErr {
				t.Fatalf("leg() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Owner != tt.want.Owner || got.Name != tt.want.Name || got.Type != tt.want.Type || got.On != tt.want.On || !got.Amount.Equal(tt.want.Amount) || !got.EarnsDollarDays {
				t.Errorf("leg() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImpact(t *testing.T) {
	_, out := useScenario(t, lauraScenario, lauraLedger)

	status := run(t, &impactCmd{}, "-name", "Damon", "-amount", "4500", "-d", "2025-07-10", "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("impact = %v", status)
	}
	var impact struct {
		Leg    fund.Leg     `json:"leg"`
		Deltas []fund.Delta `json:"deltas"`
	}
	if err := json.Unmarshal(out.Bytes(), &impact); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(impact.Leg.ID, "temp_") {
		t.Errorf("leg id = %q, want a temporary id", impact.Leg.ID)
	}
	if len(impact.Deltas) != 3 {
		t.Fatalf("got %d deltas, want Founders, Damon and Laura", len(impact.Deltas))
	}
	// realized drops from 10000 to 5000, Laura's share from 45% to 30%
	if got := impact.Deltas[2]; got.Participant != "Laura" || !got.RealizedNet.Equal(fund.M(-2400)) {
		t.Errorf("Laura delta = %+v, want -2400", got)
	}
}
