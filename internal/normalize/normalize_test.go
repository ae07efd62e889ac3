package normalize

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntDefaultsAndForms(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"  ":    0,
		"abc":   0,
		"12":    12,
		" 7 ":   7,
		"10.0":  10,
		"10,0":  10,
		"10.5":  0,
		"-3":    -3,
		"1,2,3": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, Int(in), "Int(%q)", in)
	}
}

func TestIntRejectsValuesBeyondInt64(t *testing.T) {
	for _, in := range []string{"18446744073709551617", "99999999999999999999", "1e30", "-1e30"} {
		assert.Equal(t, 0, Int(in), "Int(%q)", in)
	}
	assert.Equal(t, 2147483648, Int("2147483648"), "range against the column is a validation concern")
}

func TestDecimalRoundsToStoredScale(t *testing.T) {
	assert.Equal(t, "0.0001", Decimal("0.00005").String())
	assert.Equal(t, "0", Decimal("0.00003").String())
	assert.Equal(t, "12.3457", Decimal("12.34565").String())
	assert.Equal(t, "1500.25", Decimal("1500.25").String())
}

func TestDecimal(t *testing.T) {
	assert.True(t, Decimal("").IsZero())
	assert.True(t, Decimal("n/a").IsZero())
	assert.True(t, Decimal("1500.25").Equal(decimal.RequireFromString("1500.25")))
	assert.True(t, Decimal("12,5").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, Decimal("1,000.5").IsZero(), "thousands separators are not guessed")
}

func TestFloatAndCoordinates(t *testing.T) {
	assert.Nil(t, Float(""))
	assert.Nil(t, Float("north"))
	assert.Nil(t, Float("NaN"))

	f := Float("-2,17")
	require.NotNil(t, f)
	assert.InDelta(t, -2.17, *f, 1e-9)

	assert.Nil(t, coordinate("latitude", "91"))
	assert.NotNil(t, coordinate("longitude", "91"))
	assert.Nil(t, coordinate("longitude", "-180.5"))
}

func TestDate(t *testing.T) {
	d := Date("2024-03-01")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)

	ts := Date("2024-03-01T18:30:00-05:00")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *ts)

	assert.Nil(t, Date(""))
	assert.Nil(t, Date("01/03/2024"))
	assert.Nil(t, Date("2024-02-30"))
}

func TestRecordFromForm(t *testing.T) {
	form := url.Values{
		"project_name":        {"  Manglares del Sur  "},
		"country":             {"Ecuador"},
		"latitude":            {"-2.2"},
		"longitude":           {"999"},
		"men":                 {"10"},
		"women":               {"8.0"},
		"glbti":               {"dos"},
		"start_date":          {"2024-01-01"},
		"end_date":            {"bad"},
		"total_amount":        {"25000,50"},
		"target_2025":         {"40"},
		"q3_planned":          {"5"},
		"q3_achieved":         {"4"},
		"total_beneficiaries": {"999"},
		"annual_planned":      {"123"},
	}

	rec := Record(FromForm(form))

	assert.Equal(t, "Manglares del Sur", rec.ProjectName)
	assert.Equal(t, "Ecuador", rec.Country)
	require.NotNil(t, rec.Latitude)
	assert.InDelta(t, -2.2, *rec.Latitude, 1e-9)
	assert.Nil(t, rec.Longitude)
	assert.Equal(t, 10, rec.Men)
	assert.Equal(t, 8, rec.Women)
	assert.Equal(t, 0, rec.GLBTI)
	require.NotNil(t, rec.StartDate)
	assert.Nil(t, rec.EndDate)
	assert.True(t, rec.TotalAmount.Equal(decimal.RequireFromString("25000.50")))
	assert.True(t, rec.YearTarget(2025).Equal(decimal.NewFromInt(40)))
	assert.True(t, rec.Quarters[2].Planned.Equal(decimal.NewFromInt(5)))
	assert.True(t, rec.Quarters[2].Achieved.Equal(decimal.NewFromInt(4)))

	assert.Equal(t, 0, rec.TotalBeneficiaries, "derived fields are not taken from input")
	assert.True(t, rec.Annual.Planned.IsZero())
}

func TestRecordEmptyInput(t *testing.T) {
	rec := Record(Raw{})
	assert.Equal(t, "", rec.ProjectName)
	assert.Equal(t, 0, rec.Men)
	assert.Nil(t, rec.Latitude)
	assert.Nil(t, rec.StartDate)
	assert.True(t, rec.TotalBudgeted.IsZero())
}

func TestFromJSONFlattensNestedShapes(t *testing.T) {
	body := `{
		"project_name": "Bosque seco",
		"men": 4,
		"latitude": -4.05,
		"responsible_email": null,
		"tags": ["ignored"],
		"quarters": [
			{"planned": "5", "achieved": 5, "achieved_pct": "100"},
			{"planned": 5, "achieved": 0}
		],
		"year_targets": [1, 2, 3]
	}`

	raw, err := FromJSON(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "Bosque seco", raw["project_name"])
	assert.Equal(t, "4", raw["men"])
	assert.Equal(t, "-4.05", raw["latitude"])
	assert.NotContains(t, raw, "responsible_email")
	assert.NotContains(t, raw, "tags")
	assert.Equal(t, "5", raw["q1_planned"])
	assert.Equal(t, "0", raw["q2_achieved"])
	assert.NotContains(t, raw, "q1_achieved_pct")
	assert.Equal(t, "3", raw["target_2023"])

	rec := Record(raw)
	assert.Equal(t, 4, rec.Men)
	assert.True(t, rec.YearTarget(2022).Equal(decimal.NewFromInt(2)))
}

func TestFromJSONRejectsNonObjects(t *testing.T) {
	for _, body := range []string{"", "[1,2]", `"text"`, "null", "{broken"} {
		_, err := FromJSON(strings.NewReader(body))
		assert.ErrorIs(t, err, ErrMalformedSubmission, "body %q", body)
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "", Phone("  ", "Ecuador"))
	assert.Equal(t, "ext. 204", Phone(" ext. 204 ", "Ecuador"))
	assert.Equal(t, "+593991234567", Phone("099 123 4567", "Ecuador"))
}
