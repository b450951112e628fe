package stores

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/twseq/qd/quotes"
	"go.uber.org/zap"
)

// CSV define csv file store, one {symbol}.csv per symbol
type CSV struct {
	root string
}

// NewCSV create csv file store
func NewCSV(root string) *CSV {
	return &CSV{root: root}
}

// Save write the symbol's records to {root}/{symbol}.csv with a Date,Close
// header, overwriting any previous file. No records yields a header-only file.
func (s CSV) Save(symbol string, records []quotes.Record) error {
	buffer := new(bytes.Buffer)
	writer := csv.NewWriter(buffer)

	err := writer.Write([]string{"Date", "Close"})
	if err != nil {
		zap.L().Error("write csv header failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	for _, record := range records {
		err = writer.Write([]string{record.Date, record.Close})
		if err != nil {
			zap.L().Error("write csv row failed",
				zap.Error(err),
				zap.String("symbol", symbol),
				zap.String("date", record.Date))
			return err
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		zap.L().Error("flush csv failed", zap.Error(err), zap.String("symbol", symbol))
		return err
	}

	err = os.MkdirAll(s.root, 0755)
	if err != nil {
		zap.L().Error("ensure output dir failed", zap.Error(err), zap.String("dir", s.root))
		return err
	}

	filePath := filepath.Join(s.root, symbol+".csv")
	err = os.WriteFile(filePath, buffer.Bytes(), 0644)
	if err != nil {
		zap.L().Error("save csv failed", zap.Error(err), zap.String("path", filePath))
		return err
	}

	return nil
}
