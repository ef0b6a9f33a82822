package export

import (
	"encoding/csv"
	"io"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

var csvHeader = []string{"Fach", "Note", "Datum"}

func writeCSV(w io.Writer, report domain.GradeReport) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := cw.Write([]string{row.Subject, formatGrade(row.Value), row.Date}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
