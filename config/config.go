// Package config loads the scenario files the ffc tool computes.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foundersfund/fund"
	"gopkg.in/yaml.v3"
)

// Scenario is one accounting window with the facts read at its end.
type Scenario struct {
	Window     fund.Window `json:"window" yaml:"window"`
	Wallet     fund.Money  `json:"walletSizeEndOfWindow" yaml:"walletSizeEndOfWindow"`
	Unrealized fund.Money  `json:"unrealizedPnlEndOfWindow" yaml:"unrealizedPnlEndOfWindow"`
	Policy     fund.Policy `json:"constants" yaml:"constants"`
	// Ledger is the path of a JSONL ledger, relative to the scenario file.
	Ledger string `json:"ledger,omitempty" yaml:"ledger,omitempty"`
	// Contributions are legs appended to the ledger ones.
	Contributions []Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
	Journal       JournalConfig  `json:"journal" yaml:"journal"`
	// MetricsFile is a prometheus textfile written after each computation.
	MetricsFile string `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`

	dir string // directory of the loaded file
}

// Contribution is a ledger leg written inline in a scenario.
type Contribution struct {
	ID              string     `json:"id" yaml:"id"`
	Owner           string     `json:"owner" yaml:"owner"`
	Name            string     `json:"name" yaml:"name"`
	Type            string     `json:"type" yaml:"type"`
	Amount          fund.Money `json:"amount" yaml:"amount"`
	On              fund.Date  `json:"ts" yaml:"ts"`
	EarnsDollarDays *bool      `json:"earnsDollarDaysThisWindow,omitempty" yaml:"earnsDollarDaysThisWindow,omitempty"`
}

// Leg converts the contribution. A missing flag means the leg earns dollar-days.
func (c Contribution) Leg() fund.Leg {
	name := c.Name
	if fund.Owner(c.Owner) == fund.Founders && name == "" {
		name = fund.FoundersName
	}
	return fund.Leg{
		ID:              c.ID,
		Owner:           fund.Owner(c.Owner),
		Name:            name,
		Type:            fund.LegType(c.Type),
		Amount:          c.Amount,
		On:              c.On,
		EarnsDollarDays: c.EarnsDollarDays == nil || *c.EarnsDollarDays,
	}
}

// FromLeg returns the inline form of a leg.
func FromLeg(l fund.Leg) Contribution {
	c := Contribution{ID: l.ID, Owner: string(l.Owner), Name: l.Name, Type: string(l.Type), Amount: l.Amount, On: l.On}
	if !l.EarnsDollarDays {
		earns := false
		c.EarnsDollarDays = &earns
	}
	return c
}

// JournalConfig selects where snapshots are recorded.
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "sqlite", "postgres" or "csv"
	DSN  string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// Journal types.
const (
	JournalSQLite   = "sqlite"
	JournalPostgres = "postgres"
	JournalCSV      = "csv"
)

// Default returns an empty scenario for the current quarter.
func Default() *Scenario {
	return &Scenario{
		Window:  fund.Quarterly.Window(fund.Today()),
		Policy:  fund.DefaultPolicy(),
		Journal: JournalConfig{Type: JournalSQLite, DSN: "fund.db"},
	}
}

// fileDefault is the scenario a file is decoded on top of.
func fileDefault() *Scenario {
	c := Default()
	c.Window = fund.Window{}
	return c
}

// FromState returns the scenario of a state, with its ledger inlined.
func FromState(s fund.State) *Scenario {
	c := Default()
	c.Window = s.Window
	c.Wallet = s.WalletSizeEndOfWindow
	c.Unrealized = s.UnrealizedPnlEndOfWindow
	c.Policy = s.Policy
	for _, l := range s.Contributions {
		c.Contributions = append(c.Contributions, FromLeg(l))
	}
	return c
}

// LoadFromFile loads a scenario from a YAML or JSON file. Values missing in
// the file keep their Default value, except the window which the file must
// define.
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	c := fileDefault()
	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, c); err != nil {
		c = fileDefault()
		if jerr := json.Unmarshal(data, c); jerr != nil {
			return nil, fmt.Errorf("parse scenario (tried YAML and JSON): %w", errors.Join(err, jerr))
		}
	}
	c.dir = filepath.Dir(path)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", path, err)
	}
	return c, nil
}

// SaveToFile saves the scenario, as YAML for .yaml and .yml files, as JSON otherwise.
func (c *Scenario) SaveToFile(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}
	return nil
}

// Validate checks the scenario can be computed.
func (c *Scenario) Validate() error {
	var errs error
	if err := c.Window.Check(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("window: %w", err))
	}
	if err := c.Policy.Check(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("constants: %w", err))
	}
	for i, contrib := range c.Contributions {
		if err := contrib.Leg().Check(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("contributions[%d]: %w", i, err))
		}
	}
	switch c.Journal.Type {
	case "", JournalSQLite, JournalCSV:
	case JournalPostgres:
		if c.Journal.DSN == "" {
			errs = errors.Join(errs, errors.New("journal.dsn is required for postgres"))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("journal.type must be %q, %q or %q, not %q", JournalSQLite, JournalPostgres, JournalCSV, c.Journal.Type))
	}
	return errs
}

// LedgerPath returns the ledger path resolved against the scenario file directory.
func (c *Scenario) LedgerPath() string {
	if c.Ledger == "" || filepath.IsAbs(c.Ledger) {
		return c.Ledger
	}
	return filepath.Join(c.dir, c.Ledger)
}

// JournalDSN returns the journal data source, file paths being resolved
// against the scenario file directory.
func (c *Scenario) JournalDSN() string {
	if c.Journal.Type == JournalPostgres || c.Journal.DSN == "" || filepath.IsAbs(c.Journal.DSN) {
		return c.Journal.DSN
	}
	return filepath.Join(c.dir, c.Journal.DSN)
}

// MetricsPath returns the metrics file path resolved against the scenario file directory.
func (c *Scenario) MetricsPath() string {
	if c.MetricsFile == "" || filepath.IsAbs(c.MetricsFile) {
		return c.MetricsFile
	}
	return filepath.Join(c.dir, c.MetricsFile)
}

// State returns the engine input: the ledger file legs followed by the
// inline contributions.
func (c *Scenario) State() (fund.State, error) {
	s := fund.State{
		Window:                   c.Window,
		WalletSizeEndOfWindow:    c.Wallet,
		UnrealizedPnlEndOfWindow: c.Unrealized,
		Policy:                   c.Policy,
	}
	if path := c.LedgerPath(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fund.State{}, fmt.Errorf("open ledger: %w", err)
		}
		defer f.Close()
		legs, err := fund.DecodeLegs(f)
		if err != nil {
			return fund.State{}, fmt.Errorf("decode ledger %q: %w", path, err)
		}
		s.Contributions = legs
	}
	for _, contrib := range c.Contributions {
		s.Contributions = append(s.Contributions, contrib.Leg())
	}
	return s, nil
}
