package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// column binds a project_records column to the ProjectRecord field that backs it.
// value feeds INSERT/UPDATE arguments and exports, target is handed to Scan.
type column struct {
	name   string
	value  func(r *ProjectRecord) any
	target func(r *ProjectRecord) any
}

func field[T any](name string, ptr func(r *ProjectRecord) *T) column {
	return column{
		name:   name,
		value:  func(r *ProjectRecord) any { return *ptr(r) },
		target: func(r *ProjectRecord) any { return ptr(r) },
	}
}

// dataColumns are every column except id and provenance, in table order.
var dataColumns = buildDataColumns()

func buildDataColumns() []column {
	cols := []column{
		field("project_name", func(r *ProjectRecord) *string { return &r.ProjectName }),
		field("country", func(r *ProjectRecord) *string { return &r.Country }),
		field("province", func(r *ProjectRecord) *string { return &r.Province }),
		field("canton", func(r *ProjectRecord) *string { return &r.Canton }),
		field("people_nationality", func(r *ProjectRecord) *string { return &r.PeopleNationality }),
		field("latitude", func(r *ProjectRecord) **float64 { return &r.Latitude }),
		field("longitude", func(r *ProjectRecord) **float64 { return &r.Longitude }),
		field("men", func(r *ProjectRecord) *int { return &r.Men }),
		field("women", func(r *ProjectRecord) *int { return &r.Women }),
		field("glbti", func(r *ProjectRecord) *int { return &r.GLBTI }),
		field("total_beneficiaries", func(r *ProjectRecord) *int { return &r.TotalBeneficiaries }),
		field("start_date", func(r *ProjectRecord) **time.Time { return &r.StartDate }),
		field("end_date", func(r *ProjectRecord) **time.Time { return &r.EndDate }),
		field("duration_days", func(r *ProjectRecord) **int { return &r.DurationDays }),
		field("total_amount", func(r *ProjectRecord) *decimal.Decimal { return &r.TotalAmount }),
		field("funding_source", func(r *ProjectRecord) *string { return &r.FundingSource }),
		field("executing_entity", func(r *ProjectRecord) *string { return &r.ExecutingEntity }),
		field("bioregional_axis", func(r *ProjectRecord) *string { return &r.BioregionalAxis }),
		field("bioregional_thematic_axis", func(r *ProjectRecord) *string { return &r.BioregionalThematicAxis }),
		field("bioregional_strategy", func(r *ProjectRecord) *string { return &r.BioregionalStrategy }),
		field("bioregional_action", func(r *ProjectRecord) *string { return &r.BioregionalAction }),
		field("pei_strategic_objective", func(r *ProjectRecord) *string { return &r.PEIStrategicObjective }),
		field("pei_strategy", func(r *ProjectRecord) *string { return &r.PEIStrategy }),
		field("pb_indicator", func(r *ProjectRecord) *string { return &r.PBIndicator }),
		field("pb_unit", func(r *ProjectRecord) *string { return &r.PBUnit }),
		field("pb_target", func(r *ProjectRecord) *decimal.Decimal { return &r.PBTarget }),
		field("pei_indicator", func(r *ProjectRecord) *string { return &r.PEIIndicator }),
		field("pei_unit", func(r *ProjectRecord) *string { return &r.PEIUnit }),
		field("pei_target", func(r *ProjectRecord) *decimal.Decimal { return &r.PEITarget }),
		field("project_indicator", func(r *ProjectRecord) *string { return &r.ProjectIndicator }),
		field("project_unit", func(r *ProjectRecord) *string { return &r.ProjectUnit }),
		field("project_target", func(r *ProjectRecord) *decimal.Decimal { return &r.ProjectTarget }),
		field("indicator_trend", func(r *ProjectRecord) *string { return &r.IndicatorTrend }),
		field("target_year", func(r *ProjectRecord) *int { return &r.TargetYear }),
		field("baseline_year", func(r *ProjectRecord) *int { return &r.BaselineYear }),
		field("baseline_value", func(r *ProjectRecord) *decimal.Decimal { return &r.BaselineValue }),
	}

	for i := 0; i < TargetYears; i++ {
		i := i
		cols = append(cols, field(fmt.Sprintf("target_%d", FirstTargetYear+i),
			func(r *ProjectRecord) *decimal.Decimal { return &r.YearTargets[i] }))
	}

	cols = append(cols,
		field("cumulative_target_achieved", func(r *ProjectRecord) *decimal.Decimal { return &r.CumulativeTargetAchieved }),
		field("physical_execution_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.PhysicalExecutionPct }),
		field("total_budgeted", func(r *ProjectRecord) *decimal.Decimal { return &r.TotalBudgeted }),
		field("total_disbursed", func(r *ProjectRecord) *decimal.Decimal { return &r.TotalDisbursed }),
		field("budget_execution_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.BudgetExecutionPct }),
	)

	for i := 0; i < Quarters; i++ {
		i := i
		q := fmt.Sprintf("q%d_", i+1)
		cols = append(cols,
			field(q+"planned", func(r *ProjectRecord) *decimal.Decimal { return &r.Quarters[i].Planned }),
			field(q+"achieved", func(r *ProjectRecord) *decimal.Decimal { return &r.Quarters[i].Achieved }),
			field(q+"achieved_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.Quarters[i].AchievedPct }),
			field(q+"budgeted", func(r *ProjectRecord) *decimal.Decimal { return &r.Quarters[i].Budgeted }),
			field(q+"disbursed", func(r *ProjectRecord) *decimal.Decimal { return &r.Quarters[i].Disbursed }),
			field(q+"budget_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.Quarters[i].BudgetPct }),
		)
	}

	cols = append(cols,
		field("annual_planned", func(r *ProjectRecord) *decimal.Decimal { return &r.Annual.Planned }),
		field("annual_achieved", func(r *ProjectRecord) *decimal.Decimal { return &r.Annual.Achieved }),
		field("annual_execution_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.Annual.ExecutionPct }),
		field("annual_budgeted", func(r *ProjectRecord) *decimal.Decimal { return &r.Annual.Budgeted }),
		field("annual_disbursed", func(r *ProjectRecord) *decimal.Decimal { return &r.Annual.Disbursed }),
		field("annual_budget_pct", func(r *ProjectRecord) *decimal.NullDecimal { return &r.Annual.BudgetPct }),
		field("critical_issues", func(r *ProjectRecord) *string { return &r.CriticalIssues }),
		field("achievements", func(r *ProjectRecord) *string { return &r.Achievements }),
		field("lessons", func(r *ProjectRecord) *string { return &r.Lessons }),
		field("verification_means", func(r *ProjectRecord) *string { return &r.VerificationMeans }),
		field("responsible_name", func(r *ProjectRecord) *string { return &r.ResponsibleName }),
		field("responsible_role", func(r *ProjectRecord) *string { return &r.ResponsibleRole }),
		field("responsible_email", func(r *ProjectRecord) *string { return &r.ResponsibleEmail }),
		field("responsible_phone", func(r *ProjectRecord) *string { return &r.ResponsiblePhone }),
	)
	return cols
}

var (
	idColumn          = field("id", func(r *ProjectRecord) *int64 { return &r.ID })
	provenanceColumns = []column{
		field("created_by", func(r *ProjectRecord) *string { return &r.CreatedBy }),
		field("created_at", func(r *ProjectRecord) *time.Time { return &r.CreatedAt }),
		field("updated_at", func(r *ProjectRecord) *time.Time { return &r.UpdatedAt }),
	}
)

func allColumns() []column {
	cols := make([]column, 0, len(dataColumns)+1+len(provenanceColumns))
	cols = append(cols, idColumn)
	cols = append(cols, dataColumns...)
	return append(cols, provenanceColumns...)
}

func names(cols []column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.name
	}
	return out
}

// DataColumns lists the editable and derived columns, excluding id and provenance.
func DataColumns() []string { return names(dataColumns) }

// ProvenanceColumns lists created_by, created_at and updated_at.
func ProvenanceColumns() []string { return names(provenanceColumns) }

// RecordColumns is the full column list: id, data columns, provenance. It is the
// SELECT list and the export header.
func RecordColumns() []string { return names(allColumns()) }

// DataValues returns the values of DataColumns in order.
func (r *ProjectRecord) DataValues() []any {
	out := make([]any, len(dataColumns))
	for i, c := range dataColumns {
		out[i] = c.value(r)
	}
	return out
}

// Values returns the values of RecordColumns in order.
func (r *ProjectRecord) Values() []any {
	cols := allColumns()
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c.value(r)
	}
	return out
}

// InputField is an editable column and a pointer to the field backing it.
type InputField struct {
	Name   string
	Target any
}

func isDerived(name string) bool {
	return name == "total_beneficiaries" || name == "duration_days" ||
		strings.HasSuffix(name, "_pct") || strings.HasPrefix(name, "annual_")
}

// InputFields returns the data columns a submission may set, skipping derived ones.
func (r *ProjectRecord) InputFields() []InputField {
	out := make([]InputField, 0, len(dataColumns))
	for _, c := range dataColumns {
		if isDerived(c.name) {
			continue
		}
		out = append(out, InputField{Name: c.name, Target: c.target(r)})
	}
	return out
}

// ScanTargets returns Scan destinations matching RecordColumns.
func (r *ProjectRecord) ScanTargets() []any {
	cols := allColumns()
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c.target(r)
	}
	return out
}
