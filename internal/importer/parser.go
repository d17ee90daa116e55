// Package importer parses the point-of-sale sales export into ledger rows.
// The export is a CSV rendering of the POS spreadsheet: a row naming an
// outlet starts a block, and each dated row inside the block carries the
// day's revenue in the fourth column.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ortosalon/backoffice/internal/models"
)

// dateTimePattern matches the export's row stamp, e.g. "05.03.2026 18:30:00".
var dateTimePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})\s+\d{2}:\d{2}:\d{2}`)

// ParseSalesExport extracts sales rows from an export file. Rows that name a
// configured outlet switch the current block; dated rows are attributed to
// that outlet. Rows before any outlet header, rows without a parseable
// positive amount, and unrecognized rows are skipped.
func ParseSalesExport(r io.Reader, outlets []string) ([]models.ImportedSale, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var sales []models.ImportedSale
	currentOutlet := ""

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read export row: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		first := strings.TrimSpace(row[0])
		if outlet := matchOutlet(first, outlets); outlet != "" {
			currentOutlet = outlet
			continue
		}

		m := dateTimePattern.FindStringSubmatch(first)
		if m == nil || currentOutlet == "" || len(row) < 4 {
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil || amount <= 0 {
			continue
		}

		sales = append(sales, models.ImportedSale{
			Outlet: currentOutlet,
			Date:   fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1]), // DD.MM.YYYY -> YYYY-MM-DD
			Amount: amount,
		})
	}

	if len(sales) == 0 {
		return nil, fmt.Errorf("no sales rows found in export")
	}

	return sales, nil
}

// matchOutlet returns the configured outlet named by the cell, or "".
func matchOutlet(cell string, outlets []string) string {
	for _, outlet := range outlets {
		if strings.Contains(cell, outlet) {
			return outlet
		}
	}
	return ""
}
