package journal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/foundersfund/fund"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{
	"id", "timestamp", "window_start", "window_end", "wallet", "profit_total", "unrealized", "realized",
	"founders_share", "founders_net", "investors_net", "mgmt_carry", "moonbag_founders",
}

// CSV appends trend rows to a spreadsheet friendly file.
//
// It keeps the founders and totals columns only: Trend returns rows without
// per investor details, and snapshots cannot be read back.
type CSV struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCSV opens the CSV journal at path, writing the header of a new file.
func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	j := &CSV{path: path, f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := j.write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
	}
	return j, nil
}

func (j *CSV) write(record []string) error {
	if err := j.w.Write(record); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Record(_ context.Context, s fund.Snapshot) error {
	r := s.TrendRow
	return j.write([]string{
		s.ID,
		r.Timestamp.UTC().Format(time.RFC3339Nano),
		r.Window.Start.String(),
		r.Window.End.String(),
		d(r.WalletSizeEnd),
		d(r.ProfitTotal),
		d(r.Unrealized),
		d(r.Realized),
		r.Shares.Founders.Decimal().String(),
		d(r.RealizedNet.Founders),
		d(r.RealizedNet.InvestorsTotal()),
		d(r.ManagementFees.FoundersCarryTotal),
		d(r.Moonbag.Founders),
	})
}

// Get is not supported: the CSV file does not keep the snapshot body.
func (j *CSV) Get(context.Context, string) (fund.Snapshot, error) {
	return fund.Snapshot{}, fmt.Errorf("journal: csv get: %w", errors.ErrUnsupported)
}

func (j *CSV) Trend(context.Context) ([]fund.TrendRow, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("journal: csv header: %w", err)
	}
	var trend []fund.TrendRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return trend, nil
		}
		if err != nil {
			return nil, fmt.Errorf("journal: csv: %w", err)
		}
		row, err := parseTrendRow(rec)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("journal: csv line %d: %w", line, err)
		}
		trend = append(trend, row)
	}
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func d(m fund.Money) string { return m.Decimal().String() }

// parseTrendRow reads a record written by Record.
func parseTrendRow(rec []string) (fund.TrendRow, error) {
	var errs error
	money := func(s string) fund.Money {
		v, err := decimal.NewFromString(s)
		errs = errors.Join(errs, err)
		return fund.M(v)
	}
	date := func(s string) fund.Date {
		v, err := fund.ParseDate(s)
		errs = errors.Join(errs, err)
		return v
	}
	at, err := time.Parse(time.RFC3339Nano, rec[1])
	errs = errors.Join(errs, err)
	share, err := decimal.NewFromString(rec[8])
	errs = errors.Join(errs, err)

	row := fund.TrendRow{
		Timestamp:      at,
		Window:         fund.NewWindow(date(rec[2]), date(rec[3])),
		WalletSizeEnd:  money(rec[4]),
		ProfitTotal:    money(rec[5]),
		Unrealized:     money(rec[6]),
		Realized:       money(rec[7]),
		Shares:         fund.Shares{Founders: fund.R(share)},
		RealizedNet:    fund.Allocation{Founders: money(rec[9])},
		ManagementFees: fund.ManagementFees{FoundersCarryTotal: money(rec[11])},
		Moonbag:        fund.Moonbag{Allocation: fund.Allocation{Founders: money(rec[12])}},
	}
	return row, errs
}
