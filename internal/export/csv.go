package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/toolbox/internal/model"
)

// WriteCSV writes one row per placed piece. Numbers use a dot as decimal
// separator so the file stays machine readable.
func WriteCSV(w io.Writer, result model.OptimizationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"segment", "piece", "cut_id", "label", "width_cm", "length_m", "x_m", "y_m"}); err != nil {
		return err
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for si, s := range result.Sheets {
		for pi, p := range s.Placements {
			row := []string{
				strconv.Itoa(si + 1),
				strconv.Itoa(pi + 1),
				p.SourceCutID,
				p.Label,
				num(model.MetersToCentimeters(p.Width)),
				num(p.Length),
				num(p.X),
				num(p.Y),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the placement list to path.
func ExportCSV(path string, result model.OptimizationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := WriteCSV(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return f.Close()
}
