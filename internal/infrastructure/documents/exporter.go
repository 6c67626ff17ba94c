package documents

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"
)

// Exporter renders a saved estimate as PDF or XLSX and mails it to the
// customer. Rendering works purely off the persisted record: the frozen line
// items and the totals breakdown saved with them.
type Exporter struct {
	companyName string
	mailer      *Mailer
}

var _ interfaces.IDocumentExporter = (*Exporter)(nil)

// NewExporter builds the exporter. mailer may be nil when SMTP is not
// configured; EmailEstimate then fails cleanly.
func NewExporter(companyName string, mailer *Mailer) *Exporter {
	if companyName == "" {
		companyName = "Cabinet Kiosk"
	}
	return &Exporter{companyName: companyName, mailer: mailer}
}

func (x *Exporter) RenderPDF(e entities.Estimate) ([]byte, error) {
	return generateEstimatePDF(x.companyName, e)
}

func (x *Exporter) RenderXLSX(e entities.Estimate) ([]byte, error) {
	return generateEstimateXLSX(x.companyName, e)
}

func (x *Exporter) EmailEstimate(ctx context.Context, e entities.Estimate, recipient string) error {
	if x.mailer == nil {
		return ErrMailerNotConfigured
	}
	pdf, err := x.RenderPDF(e)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Your estimate from %s", x.companyName)
	body := fmt.Sprintf("Hi %s,\n\nYour estimate is attached. Grand total: %s.\n\nThank you,\n%s\n",
		displayName(e.CustomerName), money(e.GrandTotal), x.companyName)
	return x.mailer.SendWithAttachment(ctx, recipient, subject, body, "estimate.pdf", pdf)
}

// exportRow is one rendered line: label, quantity/measurement, unit price,
// line total.
type exportRow struct {
	Label       string
	Measurement string
	UnitPrice   float64
	LineTotal   float64
}

// categoryBlock groups the rows of one non-empty category with its subtotal.
type categoryBlock struct {
	Title    string
	Rows     []exportRow
	Subtotal float64
}

var categoryTitles = map[entities.Category]string{
	entities.CategoryCabinet:    "Cabinets",
	entities.CategoryDoor:       "Replacement Doors",
	entities.CategoryFlooring:   "Flooring",
	entities.CategoryCountertop: "Countertops",
	entities.CategoryHardware:   "Hardware",
	entities.CategoryVanity:     "Vanities",
	entities.CategoryKitchen:    "Kitchen Packages",
}

// buildBlocks walks the fixed category order, skipping empty categories, and
// preserves each collection's insertion order.
func buildBlocks(e entities.Estimate) []categoryBlock {
	var blocks []categoryBlock
	for _, c := range entities.Categories {
		rows := rowsFor(c, e.ItemSet)
		if len(rows) == 0 {
			continue
		}
		blocks = append(blocks, categoryBlock{
			Title:    categoryTitles[c],
			Rows:     rows,
			Subtotal: e.CategoryTotal(c),
		})
	}
	return blocks
}

func rowsFor(c entities.Category, items entities.ItemSet) []exportRow {
	var rows []exportRow
	switch c {
	case entities.CategoryCabinet:
		for _, i := range items.Cabinets {
			rows = append(rows, exportRow{i.Type, strconv.Itoa(i.Quantity), i.UnitPrice, i.LineTotal()})
		}
	case entities.CategoryDoor:
		for _, i := range items.Doors {
			rows = append(rows, exportRow{i.Type, strconv.Itoa(i.Quantity), i.UnitPrice, i.LineTotal()})
		}
	case entities.CategoryFlooring:
		for _, i := range items.Flooring {
			rows = append(rows, exportRow{i.Type, formatMeasurement(i.SquareFeet) + " sq ft", i.UnitPricePerSqFt, i.LineTotal()})
		}
	case entities.CategoryCountertop:
		for _, i := range items.Countertops {
			rows = append(rows, exportRow{i.Type, formatMeasurement(i.LinearFeet) + " lin ft", i.UnitPricePerLinearFt, i.LineTotal()})
		}
	case entities.CategoryHardware:
		for _, i := range items.Hardware {
			rows = append(rows, exportRow{i.Type, strconv.Itoa(i.Quantity), i.UnitPrice, i.LineTotal()})
		}
	case entities.CategoryVanity:
		for _, i := range items.Vanities {
			rows = append(rows, exportRow{vanityLabel(i), strconv.Itoa(i.Quantity), i.LineTotal() / float64(i.Quantity), i.LineTotal()})
		}
	case entities.CategoryKitchen:
		for _, i := range items.Kitchens {
			rows = append(rows, exportRow{kitchenLabel(i), strconv.Itoa(i.Quantity), i.LineTotal() / float64(i.Quantity), i.LineTotal()})
		}
	}
	return rows
}

func vanityLabel(i entities.VanityLineItem) string {
	label := tierTitle(i.Tier) + " Vanity Package"
	var extras []string
	if i.SingleToDouble {
		extras = append(extras, "single-to-double conversion")
	}
	if i.PlumbingWallChange {
		extras = append(extras, "plumbing wall change")
	}
	if len(extras) > 0 {
		label += " (" + strings.Join(extras, ", ") + ")"
	}
	return label
}

func kitchenLabel(i entities.KitchenLineItem) string {
	label := tierTitle(i.Tier) + " Kitchen Package"
	var extras []string
	if i.CabinetUpgrade {
		extras = append(extras, "cabinet upgrade")
	}
	if i.CountertopUpgrade {
		extras = append(extras, "countertop upgrade")
	}
	if len(extras) > 0 {
		label += " (" + strings.Join(extras, ", ") + ")"
	}
	return label
}

func tierTitle(t entities.Tier) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

func formatMeasurement(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
