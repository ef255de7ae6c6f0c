package fund

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLegs decodes a JSONL stream of legs, one per line. Empty lines are
// skipped.
//
// Every invalid line is reported, with its line number, in the returned error.
func DecodeLegs(r io.Reader) ([]Leg, error) {
	var legs []Leg
	var errs error
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		var l Leg
		if err := json.Unmarshal(b, &l); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if err := l.Check(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		legs = append(legs, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	return legs, nil
}

// EncodeLegs writes legs as JSONL, one leg per line, in their given order.
func EncodeLegs(w io.Writer, legs ...Leg) error {
	for _, l := range legs {
		b, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("cannot encode leg %q: %w", l.ID, err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// SortLegs sorts legs by date, keeping the ledger order of legs of the same
// day. It returns a new slice.
func SortLegs(legs []Leg) []Leg {
	sorted := slices.Clone(legs)
	slices.SortStableFunc(sorted, func(a, b Leg) int {
		switch {
		case a.On.Before(b.On):
			return -1
		case a.On.After(b.On):
			return 1
		default:
			return 0
		}
	})
	return sorted
}
