package sources

import (
	"context"
	"time"

	"github.com/twseq/qd/quotes"
)

// Source define a daily quote source
type Source interface {
	// MonthQuote fetch the retained daily records of one calendar month
	MonthQuote(ctx context.Context, symbol string, month time.Time) ([]quotes.Record, error)
}
