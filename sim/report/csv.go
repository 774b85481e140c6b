package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/schedsim/schedsim/sim"
)

// WriteCSV exports the per-process results table, header first.
func WriteCSV(w io.Writer, res *sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Policy"}, rowHeader...)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range ProcessRows(res) {
		if err := cw.Write(append([]string{res.Policy}, r.Strings()...)); err != nil {
			return fmt.Errorf("writing csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
