package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

const xlsxSheet = "Noten"

var xlsxTierFill = map[domain.Tier]string{
	domain.TierHigh: "C6EFCE",
	domain.TierMid:  "FFEB9C",
	domain.TierLow:  "FFC7CE",
}

func writeXLSX(w io.Writer, report domain.GradeReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCDCDC"}},
	})
	if err != nil {
		return err
	}
	gradeFormat := "0.0"
	tierStyles := make(map[domain.Tier]int, len(xlsxTierFill))
	for tier, color := range xlsxTierFill {
		id, err := f.NewStyle(&excelize.Style{
			Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			CustomNumFmt: &gradeFormat,
		})
		if err != nil {
			return err
		}
		tierStyles[tier] = id
	}

	header := []interface{}{"Fach", "Note", "Datum"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	for i, row := range report.Rows {
		line := i + 2
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		values := []interface{}{row.Subject, row.Value, row.Date}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return err
		}
		gradeCell, err := excelize.CoordinatesToCellName(2, line)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(xlsxSheet, gradeCell, gradeCell, tierStyles[domain.TierFor(row.Value)]); err != nil {
			return err
		}
	}

	if report.HasAverage {
		line := len(report.Rows) + 3
		labelCell, _ := excelize.CoordinatesToCellName(1, line)
		valueCell, _ := excelize.CoordinatesToCellName(2, line)
		if err := f.SetCellValue(xlsxSheet, labelCell, "Gesamtdurchschnitt"); err != nil {
			return err
		}
		if err := f.SetCellFloat(xlsxSheet, valueCell, report.Average, 2, 64); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(xlsxSheet, "A", "A", 34); err != nil {
		return err
	}
	if err := f.SetColWidth(xlsxSheet, "B", "C", 12); err != nil {
		return err
	}

	return f.Write(w)
}
