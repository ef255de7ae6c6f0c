package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// lauraScenario is the founders seed and Laura over the second half of
// 2025, with its ledger in a separate file.
const lauraScenario = `window:
  start: 2025-07-10
  end: 2025-12-31
walletSizeEndOfWindow: 50000
unrealizedPnlEndOfWindow: 15000
ledger: ledger.jsonl
constants:
  mgmtFeeRate: 0.2
  entryFeeRate: 0.1
  foundersMoonbagPct: 0.75
  investorSeedBaseline: 20000
  foundersCount: 2
journal:
  type: sqlite
  dsn: fund.db
`

const lauraLedger = `{"id":"laura_1","owner":"investor","name":"Laura","type":"investor_contribution","amount":4500,"ts":"2025-07-10"}
{"id":"founders_seed","owner":"founders","name":"Founders","type":"seed","amount":5000,"ts":"2025-07-10"}
`

// useScenario writes the scenario and ledger in a temporary directory and
// makes commands use it. It returns the captured output of commands.
func useScenario(t *testing.T, scenario, ledger string) (dir string, out *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "scenario.yaml"), scenario)
	if ledger != "" {
		writeFile(t, filepath.Join(dir, "ledger.jsonl"), ledger)
	}

	path := filepath.Join(dir, "scenario.yaml")
	oldScenario, oldRaw, oldStdout := scenarioFile, *raw, stdout
	scenarioFile = &path
	*raw = true
	out = &bytes.Buffer{}
	stdout = out
	t.Cleanup(func() {
		scenarioFile, stdout = oldScenario, oldStdout
		*raw = oldRaw
	})
	return dir, out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
