// Package validation checks records and requests before anything is written.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"simsea/internal/interfaces"
	"simsea/internal/models"
)

// Validator wraps go-playground/validator with decimal support and JSON field names.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates any tagged struct and reports failures as a *interfaces.ValidationError.
func (val *Validator) Struct(s interface{}) error {
	verr := &interfaces.ValidationError{}
	if err := val.v.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldName(fe), reason(fe))
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Record checks a normalized record: field constraints plus the schedule order.
func (val *Validator) Record(rec *models.ProjectRecord) error {
	verr := &interfaces.ValidationError{}
	if err := val.Struct(rec); err != nil {
		var fields *interfaces.ValidationError
		if !errors.As(err, &fields) {
			return err
		}
		verr = fields
	}
	if rec.StartDate != nil && rec.EndDate != nil && rec.EndDate.Before(*rec.StartDate) {
		verr.Add("end_date", "must not be before start_date")
	}
	names := models.DataColumns()
	for i, v := range rec.DataValues() {
		if _, seen := verr.Fields[names[i]]; seen {
			continue
		}
		if msg := storable(v); msg != "" {
			verr.Add(names[i], msg)
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

var (
	amountLimit  = decimal.New(1, 16) // NUMERIC(20, 4)
	percentLimit = decimal.New(1, 10) // NUMERIC(12, 2)
)

// storable reports why a column value would not fit its column, or "" when it fits.
func storable(v any) string {
	switch x := v.(type) {
	case int:
		return intRange(x)
	case *int:
		if x != nil {
			return intRange(*x)
		}
	case decimal.Decimal:
		return decimalRange(x, amountLimit, models.AmountScale)
	case decimal.NullDecimal:
		if x.Valid {
			return decimalRange(x.Decimal, percentLimit, models.PercentScale)
		}
	}
	return ""
}

func intRange(n int) string {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return "is out of range"
	}
	return ""
}

func decimalRange(d, limit decimal.Decimal, scale int32) string {
	if d.Abs().GreaterThanOrEqual(limit) {
		return "is out of range"
	}
	if !d.Round(scale).Equal(d) {
		return fmt.Sprintf("must have at most %d decimal places", scale)
	}
	return ""
}

// fieldName drops the root struct from the namespace: "quarters[0].budgeted".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
