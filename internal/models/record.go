package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	FirstTargetYear = 2021
	LastTargetYear  = 2030
	TargetYears     = LastTargetYear - FirstTargetYear + 1
	Quarters        = 4
)

// Storage scales: amounts and targets are NUMERIC(20, 4), percentages NUMERIC(12, 2).
const (
	AmountScale  = 4
	PercentScale = 2
)

// Countries offered by the submission form.
var Countries = []string{"Ecuador", "Perú", "Biorregional: Ecuador – Perú"}

// Quarter holds one quarterly slot of the yearly programme.
type Quarter struct {
	Planned     decimal.Decimal     `json:"planned"`
	Achieved    decimal.Decimal     `json:"achieved"`
	AchievedPct decimal.NullDecimal `json:"achieved_pct"`
	Budgeted    decimal.Decimal     `json:"budgeted" validate:"gte=0"`
	Disbursed   decimal.Decimal     `json:"disbursed" validate:"gte=0"`
	BudgetPct   decimal.NullDecimal `json:"budget_pct"`
}

// Annual is the rollup of the four quarters. Every field is derived.
type Annual struct {
	Planned      decimal.Decimal     `json:"planned"`
	Achieved     decimal.Decimal     `json:"achieved"`
	ExecutionPct decimal.NullDecimal `json:"execution_pct"`
	Budgeted     decimal.Decimal     `json:"budgeted"`
	Disbursed    decimal.Decimal     `json:"disbursed"`
	BudgetPct    decimal.NullDecimal `json:"budget_pct"`
}

// ProjectRecord is one monitoring entry for one project-period.
type ProjectRecord struct {
	ID int64 `json:"id"`

	ProjectName       string   `json:"project_name" validate:"required"`
	Country           string   `json:"country"`
	Province          string   `json:"province"`
	Canton            string   `json:"canton"`
	PeopleNationality string   `json:"people_nationality"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	Men                int `json:"men" validate:"gte=0"`
	Women              int `json:"women" validate:"gte=0"`
	GLBTI              int `json:"glbti" validate:"gte=0"`
	TotalBeneficiaries int `json:"total_beneficiaries"`

	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DurationDays *int       `json:"duration_days"`

	TotalAmount     decimal.Decimal `json:"total_amount" validate:"gte=0"`
	FundingSource   string          `json:"funding_source"`
	ExecutingEntity string          `json:"executing_entity"`

	BioregionalAxis         string `json:"bioregional_axis"`
	BioregionalThematicAxis string `json:"bioregional_thematic_axis"`
	BioregionalStrategy     string `json:"bioregional_strategy"`
	BioregionalAction       string `json:"bioregional_action"`
	PEIStrategicObjective   string `json:"pei_strategic_objective"`
	PEIStrategy             string `json:"pei_strategy"`

	PBIndicator      string          `json:"pb_indicator"`
	PBUnit           string          `json:"pb_unit"`
	PBTarget         decimal.Decimal `json:"pb_target"`
	PEIIndicator     string          `json:"pei_indicator"`
	PEIUnit          string          `json:"pei_unit"`
	PEITarget        decimal.Decimal `json:"pei_target"`
	ProjectIndicator string          `json:"project_indicator"`
	ProjectUnit      string          `json:"project_unit"`
	ProjectTarget    decimal.Decimal `json:"project_target"`
	IndicatorTrend   string          `json:"indicator_trend"`
	TargetYear       int             `json:"target_year" validate:"gte=0"`
	BaselineYear     int             `json:"baseline_year" validate:"gte=0"`
	BaselineValue    decimal.Decimal `json:"baseline_value"`

	// YearTargets[i] is the target for FirstTargetYear+i.
	YearTargets [TargetYears]decimal.Decimal `json:"year_targets"`

	CumulativeTargetAchieved decimal.Decimal     `json:"cumulative_target_achieved"`
	PhysicalExecutionPct     decimal.NullDecimal `json:"physical_execution_pct"`

	TotalBudgeted      decimal.Decimal     `json:"total_budgeted" validate:"gte=0"`
	TotalDisbursed     decimal.Decimal     `json:"total_disbursed" validate:"gte=0"`
	BudgetExecutionPct decimal.NullDecimal `json:"budget_execution_pct"`

	Quarters [Quarters]Quarter `json:"quarters" validate:"dive"`
	Annual   Annual            `json:"annual"`

	CriticalIssues    string `json:"critical_issues"`
	Achievements      string `json:"achievements"`
	Lessons           string `json:"lessons"`
	VerificationMeans string `json:"verification_means"`

	ResponsibleName  string `json:"responsible_name"`
	ResponsibleRole  string `json:"responsible_role"`
	ResponsibleEmail string `json:"responsible_email" validate:"omitempty,email"`
	ResponsiblePhone string `json:"responsible_phone"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// YearTarget returns the target for the given year, zero outside 2021-2030.
func (r *ProjectRecord) YearTarget(year int) decimal.Decimal {
	if year < FirstTargetYear || year > LastTargetYear {
		return decimal.Zero
	}
	return r.YearTargets[year-FirstTargetYear]
}

// RecordSummary aggregates a set of records for the admin dashboard.
type RecordSummary struct {
	Records            int                 `json:"records"`
	TotalBeneficiaries int                 `json:"total_beneficiaries"`
	TotalBudgeted      decimal.Decimal     `json:"total_budgeted"`
	TotalDisbursed     decimal.Decimal     `json:"total_disbursed"`
	BudgetExecutionPct decimal.NullDecimal `json:"budget_execution_pct"`
}

type RecordListResponse struct {
	Records  []ProjectRecord `json:"records"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
}
