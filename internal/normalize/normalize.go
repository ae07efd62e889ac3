// Package normalize turns a raw submission into a typed ProjectRecord.
//
// Normalization never fails on field values: anything that cannot be read
// falls back to the field's default (0 for counts and amounts, absent for
// coordinates and dates). Range and consistency checks belong to validation.
package normalize

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"

	"simsea/internal/models"
)

// Raw maps a field name to its submitted text.
type Raw map[string]string

// FromForm builds a Raw from form values. The first value of each key wins.
func FromForm(values url.Values) Raw {
	raw := make(Raw, len(values))
	for k, v := range values {
		if len(v) > 0 {
			raw[k] = v[0]
		}
	}
	return raw
}

// Record builds a ProjectRecord from raw. Derived fields are left for calc.Derive.
func Record(raw Raw) models.ProjectRecord {
	var rec models.ProjectRecord
	for _, f := range rec.InputFields() {
		text := strings.TrimSpace(raw[f.Name])
		switch p := f.Target.(type) {
		case *string:
			*p = text
		case *int:
			*p = Int(text)
		case *decimal.Decimal:
			*p = Decimal(text)
		case **float64:
			*p = coordinate(f.Name, text)
		case **time.Time:
			*p = Date(text)
		}
	}
	rec.ResponsiblePhone = Phone(rec.ResponsiblePhone, rec.Country)
	return rec
}

// Int reads a count. Integral decimal text such as "10.0" is accepted.
func Int(s string) int {
	s = decimalText(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0
	}
	return int(d.IntPart())
}

// Decimal reads an amount or target, 0 when unreadable. The value is rounded to
// the stored scale so what is written is what reads back.
func Decimal(s string) decimal.Decimal {
	s = decimalText(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(models.AmountScale)
}

// Float reads an optional number, nil when unreadable.
func Float(s string) *float64 {
	s = decimalText(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func coordinate(name, s string) *float64 {
	f := Float(s)
	if f == nil {
		return nil
	}
	limit := 180.0
	if name == "latitude" {
		limit = 90
	}
	if *f < -limit || *f > limit {
		return nil
	}
	return f
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// Date reads a calendar date. Timestamps are truncated to their date.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &day
	}
	return nil
}

// decimalText trims s and turns a lone decimal comma into a dot.
func decimalText(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

var phoneRegions = map[string]string{
	"Ecuador": "EC",
	"Perú":    "PE",
	"Peru":    "PE",
}

// Phone formats a valid number as E.164 using the record's country as the
// default region. Anything else is returned trimmed and unchanged.
func Phone(s, country string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	region, ok := phoneRegions[country]
	if !ok {
		region = "EC"
	}
	num, err := libphonenumber.Parse(s, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return s
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}
