package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedImportFormat = errors.New("unsupported import file format")
	ErrMissingImportColumns    = errors.New("file must have name and quantity columns")
)

// ImportRow is one uploaded {name, quantity} pair.
type ImportRow struct {
	Row      int    `json:"row"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

// ImportResult reports what was loaded and, crucially, what was not:
// unmatched entries are reported back, never silently dropped.
type ImportResult struct {
	TotalRows int                        `json:"total_rows"`
	Matched   int                        `json:"matched"`
	Loaded    []entities.CabinetLineItem `json:"loaded"`
	Unmatched []ImportRow                `json:"unmatched"`
}

// IImportUseCase bulk-matches an uploaded cabinet list against the catalog
// and loads the matches into a builder session.

type IImportUseCase interface {
	ImportCabinets(ctx context.Context, sessionID, filename string, r io.Reader) (ImportResult, error)
}

type ImportUseCase struct {
	catalog interfaces.ICatalogService
	builder IBuilderUseCase
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(catalog interfaces.ICatalogService, builder IBuilderUseCase) *ImportUseCase {
	return &ImportUseCase{catalog: catalog, builder: builder}
}

// ImportCabinets parses a CSV or XLSX upload of {name, quantity} rows. Each
// name is substring-matched against the cabinet catalog (case-insensitive,
// either direction); matches replace the session's cabinet collection via the
// trusted replace path, bypassing undo.
func (u *ImportUseCase) ImportCabinets(ctx context.Context, sessionID, filename string, r io.Reader) (ImportResult, error) {
	headers, rows, err := parseUpload(filename, r)
	if err != nil {
		return ImportResult{}, err
	}

	nameCol, qtyCol := locateColumns(headers)
	if nameCol < 0 || qtyCol < 0 {
		return ImportResult{}, ErrMissingImportColumns
	}

	catalogItems, err := u.catalog.ListCategory(ctx, entities.CategoryCabinet)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{TotalRows: len(rows)}
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header row
		name := ""
		if nameCol < len(row) {
			name = strings.TrimSpace(row[nameCol])
		}
		rawQty := ""
		if qtyCol < len(row) {
			rawQty = strings.TrimSpace(row[qtyCol])
		}
		if name == "" && rawQty == "" {
			result.TotalRows--
			continue // blank row
		}

		match, ok := matchCatalogName(name, catalogItems)
		if !ok {
			result.Unmatched = append(result.Unmatched, ImportRow{Row: rowNum, Name: name, Quantity: rawQty, Reason: "no catalog match"})
			continue
		}

		qty, err := strconv.Atoi(rawQty)
		if err != nil || qty < 1 || qty > 1000 {
			result.Unmatched = append(result.Unmatched, ImportRow{Row: rowNum, Name: name, Quantity: rawQty, Reason: "quantity must be a whole number between 1 and 1000"})
			continue
		}

		result.Loaded = append(result.Loaded, entities.CabinetLineItem{
			Type:      match.Name,
			Quantity:  qty,
			UnitPrice: match.UnitPrice,
		})
		result.Matched++
	}

	if _, err := u.builder.ReplaceCabinets(sessionID, result.Loaded); err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

// matchCatalogName matches case-insensitively in either direction: the
// uploaded name may contain the catalog name or vice versa. First catalog
// entry wins.
func matchCatalogName(name string, catalog []entities.CatalogItem) (entities.CatalogItem, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return entities.CatalogItem{}, false
	}
	for _, it := range catalog {
		entry := strings.ToLower(it.Name)
		if strings.Contains(entry, needle) || strings.Contains(needle, entry) {
			return it, true
		}
	}
	return entities.CatalogItem{}, false
}

// parseUpload reads a CSV or XLSX file and returns headers + data rows.
func parseUpload(filename string, r io.Reader) ([]string, [][]string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return parseCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return parseExcel(r)
	default:
		return nil, nil, ErrUnsupportedImportFormat
	}
}

func parseCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

func parseExcel(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

func locateColumns(headers []string) (nameCol, qtyCol int) {
	nameCol, qtyCol = -1, -1
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "item", "cabinet":
			if nameCol < 0 {
				nameCol = i
			}
		case "quantity", "qty", "count":
			if qtyCol < 0 {
				qtyCol = i
			}
		}
	}
	return nameCol, qtyCol
}
