package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"
)

var csvHeader = []string{"trade_id", "symbol", "sentiment", "result", "created_at", "notes"}

// ExportCSV writes records as CSV, header first, in the order given.
func ExportCSV(w io.Writer, records []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		err := cw.Write([]string{
			rec.ID,
			rec.Symbol,
			string(rec.Sentiment),
			string(rec.Result),
			rec.CreatedAt.Format(time.RFC3339Nano),
			rec.Notes,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVXZ writes the same CSV through an xz compressor, for archiving
// large journals.
func ExportCSVXZ(w io.Writer, records []TradeRecord) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if err := ExportCSV(xw, records); err != nil {
		xw.Close()
		return err
	}
	return xw.Close()
}
