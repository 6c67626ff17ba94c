package documents

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"cabinet_kiosk/internal/domain/entities"
)

// generateEstimatePDF creates the customer-facing estimate sheet using
// maroto/v2: one row-grouped table per non-empty category, then the summary
// block. It returns the raw PDF bytes or an error.
func generateEstimatePDF(companyName string, e entities.Estimate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, companyName, e)
	for _, block := range buildBlocks(e) {
		addCategoryTable(m, block)
	}
	addSummaryBlock(m, e)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addEstimateHeader(m core.Maroto, companyName string, e entities.Estimate) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(companyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("ESTIMATE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	sub := "Estimate #: " + e.ID
	if e.CustomerName != "" {
		sub = e.CustomerName + " | " + sub
	}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(sub, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
	m.AddRows(row.New(3))
}

func addCategoryTable(m core.Maroto, block categoryBlock) {
	headerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(block.Title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Item", headerStyle)),
			col.New(2).Add(text.New("Qty / Measure", headerStyle)),
			col.New(2).Add(text.New("Unit Price", rightAligned(headerStyle))),
			col.New(2).Add(text.New("Line Total", rightAligned(headerStyle))),
		),
	)

	cell := props.Text{Size: 8, Align: align.Left}
	for _, r := range block.Rows {
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(r.Label, cell)),
				col.New(2).Add(text.New(r.Measurement, cell)),
				col.New(2).Add(text.New(money(r.UnitPrice), rightAligned(cell))),
				col.New(2).Add(text.New(money(r.LineTotal), rightAligned(cell))),
			),
		)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(10).Add(text.New(block.Title+" Subtotal", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
			col.New(2).Add(text.New(money(block.Subtotal), props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
		row.New(3),
	)
}

// addSummaryBlock renders subtotal, the markup line only when a bracket
// applied, the installation line only when requested, and the grand total.
func addSummaryBlock(m core.Maroto, e entities.Estimate) {
	addSummaryLine(m, "Subtotal", e.Subtotal, false)
	if e.MarkupRate > 0 {
		addSummaryLine(m, e.MarkupLabel, e.MarkupAmount, false)
	}
	if e.InstallationRequested {
		addSummaryLine(m, "Installation (15%)", e.InstallationCost, false)
	}
	addSummaryLine(m, "Grand Total", e.GrandTotal, true)
}

func addSummaryLine(m core.Maroto, label string, amount float64, emphasize bool) {
	style := props.Text{Size: 9, Align: align.Right}
	if emphasize {
		style.Size = 11
		style.Style = fontstyle.Bold
	}
	m.AddRows(
		row.New(6).Add(
			col.New(10).Add(text.New(label, style)),
			col.New(2).Add(text.New(money(amount), style)),
		),
	)
}

func rightAligned(t props.Text) props.Text {
	t.Align = align.Right
	return t
}
