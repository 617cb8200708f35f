package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// ClosedPeriodsSheet is the name of the worksheet written by WriteClosedPeriods.
const ClosedPeriodsSheet = "Closed periods"

// XLSXContentType is the MIME type of the workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var closedPeriodHeaders = []string{
	"ID", "Period start", "Period end", "Services", "Total value", "Total expenses", "Net total", "Closed at",
}

// WriteClosedPeriods renders one row per snapshot, in the order given, followed by a totals row.
func WriteClosedPeriods(w io.Writer, periods []domain.ClosedPeriod) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(ClosedPeriodsSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := f.SetSheetRow(ClosedPeriodsSheet, "A1", &closedPeriodHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("create money style: %w", err)
	}

	var services int
	var value, expenses, net float64
	for i, p := range periods {
		row := []any{
			p.ID,
			p.PeriodStart.Format(domain.DateLayout),
			p.PeriodEnd.Format(domain.DateLayout),
			p.TotalServices,
			p.TotalValue.InexactFloat64(),
			p.TotalExpenses.InexactFloat64(),
			p.NetTotal.InexactFloat64(),
			p.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ClosedPeriodsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		services += p.TotalServices
		value += row[4].(float64)
		expenses += row[5].(float64)
		net += row[6].(float64)
	}

	totalsRow := len(periods) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	totals := []any{"Total", "", "", services, value, expenses, net}
	if err := f.SetSheetRow(ClosedPeriodsSheet, cell, &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	if err := f.SetCellStyle(ClosedPeriodsSheet, "E2", fmt.Sprintf("G%d", totalsRow), moneyStyle); err != nil {
		return fmt.Errorf("apply money style: %w", err)
	}
	_ = f.SetColWidth(ClosedPeriodsSheet, "A", "A", 38)
	_ = f.SetColWidth(ClosedPeriodsSheet, "B", "H", 16)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
