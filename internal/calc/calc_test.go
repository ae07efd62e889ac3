package calc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsea/internal/models"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPercent(t *testing.T) {
	for _, x := range []int64{-3, 0, 1, 500} {
		assert.False(t, Percent(d(x), decimal.Zero).Valid, "percent(%d, 0) must be absent", x)
	}

	zero := Percent(decimal.Zero, d(40))
	require.True(t, zero.Valid)
	assert.True(t, zero.Decimal.IsZero())

	quarter := Percent(d(50), d(200))
	require.True(t, quarter.Valid)
	assert.True(t, quarter.Decimal.Equal(d(25)), "got %s", quarter.Decimal)

	third := Percent(d(1), d(3))
	require.True(t, third.Valid)
	assert.Equal(t, "33.33", third.Decimal.String())
}

func TestTotalBeneficiaries(t *testing.T) {
	for _, tc := range [][3]int{{0, 0, 0}, {10, 8, 2}, {1, 0, 0}, {1000, 2000, 3}} {
		assert.Equal(t, tc[0]+tc[1]+tc[2], TotalBeneficiaries(tc[0], tc[1], tc[2]))
	}
}

func TestDurationDays(t *testing.T) {
	got := DurationDays(date(2024, 1, 1), date(2024, 3, 1))
	require.NotNil(t, got)
	assert.Equal(t, 60, *got)

	same := DurationDays(date(2024, 5, 5), date(2024, 5, 5))
	require.NotNil(t, same)
	assert.Equal(t, 0, *same)

	assert.Nil(t, DurationDays(nil, date(2024, 1, 1)))
	assert.Nil(t, DurationDays(date(2024, 1, 1), nil))
	assert.Nil(t, DurationDays(date(2024, 2, 1), date(2024, 1, 1)))
}

func TestDurationDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)
	got := DurationDays(&start, &end)
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)
}

func TestDurationDaysLongSpan(t *testing.T) {
	got := DurationDays(date(1700, 1, 1), date(2024, 1, 1))
	require.NotNil(t, got)
	assert.Equal(t, 118338, *got)
}

func quartersOf(planned, achieved [models.Quarters]int64) [models.Quarters]models.Quarter {
	var qs [models.Quarters]models.Quarter
	for i := range qs {
		qs[i].Planned = d(planned[i])
		qs[i].Achieved = d(achieved[i])
	}
	return qs
}

func TestAnnualRollupUsesAnnualSums(t *testing.T) {
	a := AnnualRollup(quartersOf([4]int64{5, 5, 5, 5}, [4]int64{5, 0, 5, 5}))

	assert.True(t, a.Planned.Equal(d(20)))
	assert.True(t, a.Achieved.Equal(d(15)))
	require.True(t, a.ExecutionPct.Valid)
	assert.Equal(t, "75", a.ExecutionPct.Decimal.String())
	assert.False(t, a.BudgetPct.Valid, "no budget means no budget percentage")
}

func TestDeriveRecord(t *testing.T) {
	r := models.ProjectRecord{
		ProjectName:              "Manglares",
		Men:                      10,
		Women:                    8,
		GLBTI:                    2,
		StartDate:                date(2024, 1, 1),
		EndDate:                  date(2024, 1, 31),
		ProjectTarget:            d(200),
		CumulativeTargetAchieved: d(50),
		TotalBudgeted:            decimal.Zero,
		TotalDisbursed:           d(100),
	}
	r.Quarters = quartersOf([4]int64{5, 5, 5, 5}, [4]int64{5, 0, 5, 5})
	r.Quarters[0].Budgeted = d(40)
	r.Quarters[0].Disbursed = d(10)

	got := Derive(r)

	assert.Equal(t, 20, got.TotalBeneficiaries)
	require.NotNil(t, got.DurationDays)
	assert.Equal(t, 30, *got.DurationDays)
	require.True(t, got.PhysicalExecutionPct.Valid)
	assert.True(t, got.PhysicalExecutionPct.Decimal.Equal(d(25)))
	assert.False(t, got.BudgetExecutionPct.Valid, "zero budget must give an absent percentage")

	require.True(t, got.Quarters[0].AchievedPct.Valid)
	assert.True(t, got.Quarters[0].AchievedPct.Decimal.Equal(d(100)))
	require.True(t, got.Quarters[1].AchievedPct.Valid)
	assert.True(t, got.Quarters[1].AchievedPct.Decimal.IsZero())
	require.True(t, got.Quarters[0].BudgetPct.Valid)
	assert.True(t, got.Quarters[0].BudgetPct.Decimal.Equal(d(25)))
	assert.False(t, got.Quarters[1].BudgetPct.Valid)

	assert.True(t, got.Annual.Planned.Equal(d(20)))
	assert.True(t, got.Annual.Achieved.Equal(d(15)))
	assert.True(t, got.Annual.ExecutionPct.Decimal.Equal(d(75)))
}

func TestDeriveIsIdempotent(t *testing.T) {
	r := models.ProjectRecord{
		Men:            3,
		Women:          4,
		StartDate:      date(2023, 6, 1),
		EndDate:        date(2024, 6, 1),
		ProjectTarget:  d(7),
		TotalBudgeted:  d(300),
		TotalDisbursed: d(100),
	}
	r.Quarters = quartersOf([4]int64{1, 2, 3, 4}, [4]int64{1, 1, 1, 1})

	once, err := json.Marshal(Derive(r))
	require.NoError(t, err)
	twice, err := json.Marshal(Derive(Derive(r)))
	require.NoError(t, err)
	assert.JSONEq(t, string(once), string(twice))
}

func TestDeriveOverwritesStaleDerivedFields(t *testing.T) {
	r := models.ProjectRecord{Men: 1, Women: 1, TotalBeneficiaries: 999}
	r.Annual.Planned = d(42)

	got := Derive(r)
	assert.Equal(t, 2, got.TotalBeneficiaries)
	assert.True(t, got.Annual.Planned.IsZero())
}

func TestSummarize(t *testing.T) {
	records := []models.ProjectRecord{
		{Men: 10, Women: 8, GLBTI: 2, TotalBudgeted: d(100), TotalDisbursed: d(50)},
		{Men: 5, TotalBudgeted: d(300), TotalDisbursed: d(150)},
	}

	s := Summarize(records)
	assert.Equal(t, 2, s.Records)
	assert.Equal(t, 25, s.TotalBeneficiaries)
	assert.True(t, s.TotalBudgeted.Equal(d(400)))
	assert.True(t, s.TotalDisbursed.Equal(d(200)))
	require.True(t, s.BudgetExecutionPct.Valid)
	assert.True(t, s.BudgetExecutionPct.Decimal.Equal(d(50)))

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Records)
	assert.False(t, empty.BudgetExecutionPct.Valid)
}
