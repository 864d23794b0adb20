package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WriteXLSX writes r as a single-sheet workbook.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{
		"Service Name",
		"Times Booked (All Time)",
		fmt.Sprintf("Times Booked (%s)", r.CurrentMonthLabel()),
		fmt.Sprintf("Times Booked (%s)", r.PreviousMonthLabel()),
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range r.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{row.Service.ServiceName, row.AllTime, row.CurrentMonth, row.PreviousMonth}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	totals := len(r.Rows) + 3
	summary := [][]any{
		{fmt.Sprintf("Total Appointments This Month (%s)", r.CurrentMonthLabel()), r.CurrentMonthTotal},
		{fmt.Sprintf("Total Appointments Last Month (%s)", r.PreviousMonthLabel()), r.PreviousMonthTotal},
	}
	for i, values := range summary {
		cell, err := excelize.CoordinatesToCellName(1, totals+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 28); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
