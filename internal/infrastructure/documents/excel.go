package documents

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cabinet_kiosk/internal/domain/entities"
)

// generateEstimateXLSX writes the estimate as a single-sheet workbook: one
// section per non-empty category followed by the summary lines.
func generateEstimateXLSX(companyName string, e entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Estimate"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 44, "B": 16, "C": 14, "D": 14}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 177, // $#,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		NumFmt: 177,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	rowNum := 1
	setCell := func(col string, v interface{}) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, rowNum), v)
	}
	setStyle := func(col string, style int) {
		cell := fmt.Sprintf("%s%d", col, rowNum)
		_ = f.SetCellStyle(sheetName, cell, cell, style)
	}

	setCell("A", companyName+" — Estimate")
	setStyle("A", titleStyle)
	rowNum++
	if e.CustomerName != "" {
		setCell("A", "Customer: "+e.CustomerName)
		rowNum++
	}
	setCell("A", "Estimate #: "+e.ID)
	rowNum++
	rowNum++

	for _, block := range buildBlocks(e) {
		setCell("A", block.Title)
		setStyle("A", sectionStyle)
		rowNum++

		for i, h := range []string{"Item", "Qty / Measure", "Unit Price", "Line Total"} {
			col := string(rune('A' + i))
			setCell(col, h)
			setStyle(col, headerStyle)
		}
		rowNum++

		for _, r := range block.Rows {
			setCell("A", r.Label)
			setCell("B", r.Measurement)
			setCell("C", r.UnitPrice)
			setStyle("C", moneyStyle)
			setCell("D", r.LineTotal)
			setStyle("D", moneyStyle)
			rowNum++
		}

		setCell("A", block.Title+" Subtotal")
		setCell("D", block.Subtotal)
		setStyle("D", moneyStyle)
		rowNum++
		rowNum++
	}

	summary := func(label string, amount float64, style int) {
		setCell("A", label)
		setCell("D", amount)
		setStyle("D", style)
		rowNum++
	}
	summary("Subtotal", e.Subtotal, moneyStyle)
	if e.MarkupRate > 0 {
		summary(e.MarkupLabel, e.MarkupAmount, moneyStyle)
	}
	if e.InstallationRequested {
		summary("Installation (15%)", e.InstallationCost, moneyStyle)
	}
	summary("Grand Total", e.GrandTotal, totalStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
