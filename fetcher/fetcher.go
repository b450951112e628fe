// Package fetcher drives the sequential month-by-month download of a
// symbol's daily closing prices.
package fetcher

import (
	"context"
	"time"

	"github.com/twseq/qd/quotes"
	"github.com/twseq/qd/sources"
	"github.com/twseq/qd/utils"
)

// Window define the lookback span of a fetch
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow create a window ending at now and spanning years back
func NewWindow(now time.Time, years int) Window {
	end := utils.DayStart(now)
	return Window{Start: end.AddDate(-years, 0, 0), End: end}
}

// Months return the calendar months covered by the window, ascending.
// One upstream request is issued per month.
func (w Window) Months() []time.Time {
	return utils.MonthsBetween(w.Start, w.End)
}

// Fetcher define the per-symbol fetch pipeline
type Fetcher struct {
	source sources.Source
	delay  time.Duration
}

// New create fetcher.
// The delay is the deliberate polite pause between consecutive upstream
// requests, it must not be removed.
func New(source sources.Source, delay time.Duration) *Fetcher {
	return &Fetcher{source: source, delay: delay}
}

// Fetch collect the symbol's retained records over the window, deduped by
// date and sorted ascending. Per-month fetch failures degrade to zero rows
// for that month, they never abort the run.
func (f Fetcher) Fetch(ctx context.Context, symbol string, window Window) []quotes.Record {
	var records []quotes.Record
	for index, month := range window.Months() {
		if index > 0 && !f.pause(ctx) {
			break
		}

		// the source logs the failure, the month just contributes nothing
		monthRecords, err := f.source.MonthQuote(ctx, symbol, month)
		if err != nil {
			continue
		}

		records = append(records, monthRecords...)
	}

	return quotes.Normalize(records)
}

// pause sleep the polite delay, false when the context is done
func (f Fetcher) pause(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(f.delay):
		return true
	}
}
