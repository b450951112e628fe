package stores

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/twseq/qd/quotes"
	"go.uber.org/zap"
)

const excelSheet = "Sheet1"

// Excel define xlsx file store, one {symbol}.xlsx per symbol
type Excel struct {
	root string
}

// NewExcel create xlsx file store
func NewExcel(root string) *Excel {
	return &Excel{root: root}
}

// Save write the symbol's records to {root}/{symbol}.xlsx with the same
// Date,Close layout and overwrite semantics as the csv store
func (s Excel) Save(symbol string, records []quotes.Record) error {
	file := excelize.NewFile()
	file.SetCellValue(excelSheet, "A1", "Date")
	file.SetCellValue(excelSheet, "B1", "Close")

	for index, record := range records {
		row := strconv.Itoa(index + 2)
		file.SetCellValue(excelSheet, "A"+row, record.Date)
		file.SetCellValue(excelSheet, "B"+row, record.Close)
	}

	err := os.MkdirAll(s.root, 0755)
	if err != nil {
		zap.L().Error("ensure output dir failed", zap.Error(err), zap.String("dir", s.root))
		return err
	}

	filePath := filepath.Join(s.root, symbol+".xlsx")
	err = file.SaveAs(filePath)
	if err != nil {
		zap.L().Error("save xlsx failed", zap.Error(err), zap.String("path", filePath))
		return err
	}

	return nil
}
