// Package export writes merged company records to spreadsheet files.
package export

import (
	"encoding/csv"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/model"
)

// columns defines the ordered output columns shared by both formats.
var columns = []string{
	"Name",
	"Description",
	"Employee Count",
	"Revenue",
	"Industries",
	"Reference Title",
	"Website",
	"Domain",
	"Logo URL",
	"Tech Stack",
	"Sources",
	"Scraped At",
}

// Write saves the records as an XLSX workbook at outputPath. When the
// workbook cannot be written it falls back to a CSV file next to it so a
// finished batch is never lost to a spreadsheet error.
func Write(recs []model.CompanyRecord, outputPath string) (string, error) {
	err := WriteXLSX(recs, outputPath)
	if err == nil {
		return outputPath, nil
	}
	zap.L().Warn("xlsx export failed, falling back to csv",
		zap.String("path", outputPath),
		zap.Error(err),
	)

	csvPath := strings.TrimSuffix(outputPath, ".xlsx") + ".csv"
	if err := WriteCSV(recs, csvPath); err != nil {
		return "", err
	}
	return csvPath, nil
}

// WriteXLSX writes the records to a single-sheet XLSX workbook.
func WriteXLSX(recs []model.CompanyRecord, outputPath string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Companies")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range columns {
		header.AddCell().Value = col
	}

	for _, rec := range recs {
		row := sheet.AddRow()
		for _, val := range buildRow(rec) {
			row.AddCell().Value = val
		}
	}

	return eris.Wrap(f.Save(outputPath), "export: save xlsx")
}

// WriteCSV writes the records as a CSV file with the same columns.
func WriteCSV(recs []model.CompanyRecord, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, rec := range recs {
		if err := w.Write(buildRow(rec)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	return eris.Wrap(w.Error(), "export: flush csv")
}

// buildRow maps a CompanyRecord to one output row.
func buildRow(rec model.CompanyRecord) []string {
	scrapedAt := ""
	if !rec.ScrapedAt.IsZero() {
		scrapedAt = rec.ScrapedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		rec.Name,
		rec.Description,
		rec.EmployeeCount,
		rec.Revenue,
		rec.Industries,
		rec.ReferenceTitle,
		rec.WebsiteURL,
		rec.Domain,
		rec.LogoURL,
		strings.Join(rec.TechStack, ", "),
		strings.Join(rec.Sources, ", "),
		scrapedAt,
	}
}
