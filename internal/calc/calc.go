// Package calc computes the derived fields of a project record. Every function
// is pure: the same inputs always give the same outputs, so values computed on
// write can be recomputed on read and compared.
package calc

import (
	"time"

	"github.com/shopspring/decimal"

	"simsea/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Percent returns round(100*numerator/denominator, 2). A zero denominator gives
// an absent value rather than an error or an infinity.
func Percent(numerator, denominator decimal.Decimal) decimal.NullDecimal {
	if denominator.IsZero() {
		return decimal.NullDecimal{}
	}
	pct := numerator.Mul(hundred).Div(denominator).Round(models.PercentScale)
	return decimal.NullDecimal{Decimal: pct, Valid: true}
}

func TotalBeneficiaries(men, women, glbti int) int {
	return men + women + glbti
}

// DurationDays is the number of calendar days from start to end. It is absent
// when either date is missing or when end falls before start.
func DurationDays(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	s := civil(*start)
	e := civil(*end)
	if e.Before(s) {
		return nil
	}
	days := int((e.Unix() - s.Unix()) / 86400)
	return &days
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AnnualRollup sums the quarters. The annual percentages use the annual sums as
// denominators, not an average of the quarterly percentages.
func AnnualRollup(quarters [models.Quarters]models.Quarter) models.Annual {
	var a models.Annual
	for _, q := range quarters {
		a.Planned = a.Planned.Add(q.Planned)
		a.Achieved = a.Achieved.Add(q.Achieved)
		a.Budgeted = a.Budgeted.Add(q.Budgeted)
		a.Disbursed = a.Disbursed.Add(q.Disbursed)
	}
	a.ExecutionPct = Percent(a.Achieved, a.Planned)
	a.BudgetPct = Percent(a.Disbursed, a.Budgeted)
	return a
}

// Derive returns a copy of r with every derived field recomputed from its inputs.
func Derive(r models.ProjectRecord) models.ProjectRecord {
	r.TotalBeneficiaries = TotalBeneficiaries(r.Men, r.Women, r.GLBTI)
	r.DurationDays = DurationDays(r.StartDate, r.EndDate)
	r.PhysicalExecutionPct = Percent(r.CumulativeTargetAchieved, r.ProjectTarget)
	r.BudgetExecutionPct = Percent(r.TotalDisbursed, r.TotalBudgeted)

	for i := range r.Quarters {
		q := &r.Quarters[i]
		q.AchievedPct = Percent(q.Achieved, q.Planned)
		q.BudgetPct = Percent(q.Disbursed, q.Budgeted)
	}
	r.Annual = AnnualRollup(r.Quarters)
	return r
}

// Summarize aggregates records for the admin dashboard.
func Summarize(records []models.ProjectRecord) models.RecordSummary {
	s := models.RecordSummary{Records: len(records)}
	for _, r := range records {
		s.TotalBeneficiaries += TotalBeneficiaries(r.Men, r.Women, r.GLBTI)
		s.TotalBudgeted = s.TotalBudgeted.Add(r.TotalBudgeted)
		s.TotalDisbursed = s.TotalDisbursed.Add(r.TotalDisbursed)
	}
	s.BudgetExecutionPct = Percent(s.TotalDisbursed, s.TotalBudgeted)
	return s
}
