package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// createTempLedger creates a temporary ledger file.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_ledger.jsonl")
	writeFile(t, path, content)
	return path
}

func TestFmtSortsLedger(t *testing.T) {
	original := `{"id":"laura_1","owner":"investor","name":"Laura","type":"investor_contribution","amount":4500,"ts":"2025-08-01"}

{"ts":"2025-07-10T00:00:00Z","id":"founders_seed","owner":"founders","name":"Founders","type":"seed","amount":5000}
`
	expected := `{"id":"founders_seed","owner":"founders","name":"Founders","type":"seed","amount":5000,"ts":"2025-07-10","earnsDollarDaysThisWindow":true}
{"id":"laura_1","owner":"investor","name":"Laura","type":"investor_contribution","amount":4500,"ts":"2025-08-01","earnsDollarDaysThisWindow":true}
`
	path := createTempLedger(t, original)

	if status := run(t, &fmtCmd{}, "-l", path); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read formatted ledger file: %v", err)
	}
	if string(got) != expected {
		t.Errorf("Formatted ledger mismatch.\nGot:\n%s\nWant:\n%s", got, expected)
	}
}

func TestFmtKeepsInvalidLedger(t *testing.T) {
	original := `{"id":"x","owner":"bank","name":"X","type":"seed","amount":1,"ts":"2025-07-10"}
`
	path := createTempLedger(t, original)

	if status := run(t, &fmtCmd{}, "-l", path); status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(got)) != strings.TrimSpace(original) {
		t.Errorf("invalid ledger was modified:\n%s", got)
	}
}

func TestFmtScenarioLedger(t *testing.T) {
	dir, _ := useScenario(t, lauraScenario, lauraLedger)

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v", status)
	}
	got, err := os.ReadFile(filepath.Join(dir, "ledger.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	// same day legs keep their order, the missing flag is written
	if !strings.HasPrefix(string(got), `{"id":"laura_1"`) || strings.Count(string(got), `"earnsDollarDaysThisWindow":true`) != 2 {
		t.Errorf("scenario ledger not in canonical form:\n%s", got)
	}
}
