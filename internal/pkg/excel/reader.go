package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the first sheet of an xlsx stream into ordered raw
// rows. The first sheet row supplies the column labels; every later
// row becomes one RawRow. Cells are read raw, so serial dates and day
// fractions reach the normalizers undisturbed by display formatting.
func ReadRows(r io.Reader) ([]punch.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	out := make([]punch.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(punch.RawRow, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(cells) {
				row[label] = cells[i]
			} else {
				row[label] = ""
			}
		}
		out = append(out, row)
	}
	return out, nil
}
