package fund

import (
	"fmt"
	"time"
)

// Window is the inclusive accounting period over which dollar-days and
// profit are computed.
type Window struct {
	Start Date   `json:"start"`
	End   Date   `json:"end"`
	Label string `json:"label,omitempty"`
}

// NewWindow returns the window [start, end] without checking it.
func NewWindow(start, end Date) Window {
	return Window{Start: start, End: end}
}

// Check returns an error when the window is not a valid accounting window.
func (w Window) Check() error {
	switch {
	case w.Start.IsZero() || w.End.IsZero():
		return fmt.Errorf("%w: missing start or end date", ErrInvalidWindow)
	case !w.Start.Before(w.End):
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Contains return true date is included in the window (boundaries included)
func (w Window) Contains(d Date) bool { return !d.Before(w.Start) && !d.After(w.End) }

// Days returns the number of days between start and end.
func (w Window) Days() int { return w.Start.DaysUntil(w.End) }

// Period returns the standard period this window spans, if any.
func (w Window) Period() (p Period, ok bool) {
	switch {
	case w.Start.Weekday() == time.Monday && w.Start.EndOf(Weekly) == w.End:
		return Weekly, true
	case w.Start.Day() == 1 && w.Start.EndOf(Monthly) == w.End:
		return Monthly, true
	case w.Start.StartOf(Quarterly) == w.Start && w.Start.EndOf(Quarterly) == w.End:
		return Quarterly, true
	case w.Start.StartOf(Yearly) == w.Start && w.Start.EndOf(Yearly) == w.End:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Identifier computes a unique identifier for the window.
// If the period is a standard one, use a short insighful name
func (w Window) Identifier() string {
	p, ok := w.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", w.Start, w.End)
	}

	switch p {
	case Weekly:
		year, week := w.Start.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return w.Start.time().Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", w.Start.Year(), (w.Start.Month()-1)/3+1)
	case Yearly:
		return w.Start.time().Format("2006")
	default:
		return fmt.Sprintf("%s_%s", w.Start, w.End)
	}
}

// Name returns the label of the window, or its identifier when unlabeled.
func (w Window) Name() string {
	if w.Label != "" {
		return w.Label
	}
	return w.Identifier()
}
