package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foundersfund/fund"
	"github.com/google/subcommands"
)

func TestSnapshotCarryAndTrend(t *testing.T) {
	dir, out := useScenario(t, lauraScenario, lauraLedger)

	if status := run(t, &snapshotCmd{}, "-carry"); status != subcommands.ExitSuccess {
		t.Fatalf("snapshot = %v", status)
	}
	if !strings.HasPrefix(out.String(), "Recorded snapshot ") {
		t.Errorf("snapshot output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "fund.db")); err != nil {
		t.Errorf("journal not created next to the scenario: %v", err)
	}

	// the ledger now holds the management fee and the two moonbag legs
	content, err := os.ReadFile(filepath.Join(dir, "ledger.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	legs, err := fund.DecodeLegs(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("ledger is no longer valid: %v", err)
	}
	if len(legs) != 5 {
		t.Fatalf("ledger has %d legs, want 2 + 3 carried", len(legs))
	}
	wantIDs := []string{"founders_mgmt_fee_2025-12-31", "moonbag_founders_2025-12-31", "moonbag_investor_Laura_2025-12-31"}
	for i, want := range wantIDs {
		if got := legs[2+i]; got.ID != want || got.EarnsDollarDays {
			t.Errorf("carried leg %d = %q (earns %t), want %q not earning", i, got.ID, got.EarnsDollarDays, want)
		}
	}

	out.Reset()
	if status := run(t, &trendCmd{}, "-json"); status != subcommands.ExitSuccess {
		t.Fatalf("trend = %v", status)
	}
	var rows []fund.TrendRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("trend -json: %v\n%s", err, out)
	}
	if len(rows) != 1 || !rows[0].Realized.Equal(fund.M(10000)) {
		t.Errorf("trend rows = %+v, want one with a 10000 realized profit", rows)
	}
}

func TestSnapshotCarryNeedsLedger(t *testing.T) {
	scenario := strings.Replace(lauraScenario, "ledger: ledger.jsonl\n", "", 1)
	useScenario(t, scenario, "")

	if status := run(t, &snapshotCmd{}, "-carry"); status != subcommands.ExitUsageError {
		t.Errorf("snapshot -carry = %v, want ExitUsageError", status)
	}
}

func TestInit(t *testing.T) {
	dir, _ := useScenario(t, lauraScenario, "")
	path := filepath.Join(dir, "new.yaml")
	scenarioFile = &path

	if status := run(t, &initCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("init = %v", status)
	}
	if status := run(t, &initCmd{}); status != subcommands.ExitFailure {
		t.Errorf("init over an existing file = %v, want ExitFailure", status)
	}
	if status := run(t, &initCmd{}, "-f"); status != subcommands.ExitSuccess {
		t.Errorf("init -f = %v", status)
	}

	_, s, err := loadScenario()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Contributions) != len(fund.SeedState().Contributions) {
		t.Errorf("init wrote %d contributions, want the reference dataset", len(s.Contributions))
	}
}
