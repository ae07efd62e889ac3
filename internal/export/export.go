// Package export renders project records as CSV or xlsx.
//
// Both formats share one header (models.RecordColumns) and one row layout.
// When xlsx output is disabled or fails, CSV bytes are returned instead and
// the result is flagged with FormatCSVFallback so callers can tell.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"simsea/internal/models"
)

type Format string

const (
	FormatCSV         Format = "csv"
	FormatXLSX        Format = "xlsx"
	FormatCSVFallback Format = "csv-fallback"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetName    = "projects"
	baseFilename = "simsea_projects"
)

// ParseFormat accepts "csv" or "xlsx".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Result is a rendered export.
type Result struct {
	Format      Format
	Data        []byte
	ContentType string
	Filename    string
}

// Fallback reports whether a spreadsheet was requested but CSV was produced.
func (r *Result) Fallback() bool {
	return r.Format == FormatCSVFallback
}

type Exporter struct {
	XLSXEnabled bool
	Logger      logrus.FieldLogger

	xlsx func(records []models.ProjectRecord) ([]byte, error)
}

func NewExporter(xlsxEnabled bool, logger logrus.FieldLogger) *Exporter {
	return &Exporter{XLSXEnabled: xlsxEnabled, Logger: logger, xlsx: XLSX}
}

// Export renders records in the requested format.
func (e *Exporter) Export(records []models.ProjectRecord, format Format) (*Result, error) {
	switch format {
	case FormatCSV:
		data, err := CSV(records)
		if err != nil {
			return nil, err
		}
		return &Result{Format: FormatCSV, Data: data, ContentType: ContentTypeCSV, Filename: baseFilename + ".csv"}, nil
	case FormatXLSX:
		return e.spreadsheet(records)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

func (e *Exporter) spreadsheet(records []models.ProjectRecord) (*Result, error) {
	if e.XLSXEnabled && e.xlsx != nil {
		data, err := e.xlsx(records)
		if err == nil {
			return &Result{Format: FormatXLSX, Data: data, ContentType: ContentTypeXLSX, Filename: baseFilename + ".xlsx"}, nil
		}
		if e.Logger != nil {
			e.Logger.WithError(err).Warn("xlsx export failed, falling back to csv")
		}
	}

	data, err := CSV(records)
	if err != nil {
		return nil, err
	}
	return &Result{Format: FormatCSVFallback, Data: data, ContentType: ContentTypeCSV, Filename: baseFilename + ".xlsx"}, nil
}

// Header is the export header row.
func Header() []string {
	return models.RecordColumns()
}

// Cells returns the row of rec as typed cell values: nil for absent values,
// float64 for decimals, formatted text for dates.
func Cells(rec *models.ProjectRecord) []any {
	vals := rec.Values()
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = cell(v)
	}
	return out
}

func cell(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format("2006-01-02")
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.InexactFloat64()
	case decimal.NullDecimal:
		if !t.Valid {
			return nil
		}
		return t.Decimal.InexactFloat64()
	}
	return v
}

// Row returns the row of rec as CSV text. Absent values are empty cells and
// decimals keep their exact text.
func Row(rec *models.ProjectRecord) []string {
	vals := rec.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = text(v)
	}
	return out
}

func text(v any) string {
	switch t := v.(type) {
	case decimal.Decimal:
		return t.String()
	case decimal.NullDecimal:
		if !t.Valid {
			return ""
		}
		return t.Decimal.StringFixed(2)
	}

	switch c := cell(v).(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func CSV(records []models.ProjectRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header()); err != nil {
		return nil, err
	}
	for i := range records {
		if err := w.Write(Row(&records[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
