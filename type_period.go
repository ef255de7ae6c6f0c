package fund

import (
	"fmt"
	"strings"
)

// Period is a standard accounting period used to build windows.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Window returns the Window of this period containing the date d.
//
// A daily period cannot be a window (start must be strictly before end), it
// is widened to end on the next day.
func (p Period) Window(d Date) Window {
	w := Window{Start: d.StartOf(p), End: d.EndOf(p)}
	if p == Daily {
		w.End = w.Start.Add(1)
	}
	return w
}

// ParsePeriod parses a period name such as "month" or "quarterly".
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}
