package stores

import (
	"fmt"
	"strings"

	"github.com/twseq/qd/quotes"
	"go.uber.org/zap"
)

// Store define a per-symbol output sink
type Store interface {
	// Save write the symbol's records, replacing any previous output
	Save(symbol string, records []quotes.Record) error
}

// Parse parse store argument, eg "csv:." or "xlsx:/data"
func Parse(arg string) (Store, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		zap.L().Error("store arg invalid", zap.String("arg", arg))
		return nil, fmt.Errorf("store arg invalid: %s", arg)
	}

	switch parts[0] {
	case "csv":
		return NewCSV(parts[1]), nil
	case "xlsx":
		return NewExcel(parts[1]), nil
	default:
		zap.L().Error("store type invalid", zap.String("type", parts[0]))
		return nil, fmt.Errorf("store type invalid: %s", parts[0])
	}
}
