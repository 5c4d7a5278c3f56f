package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fincovid/aggregate"
	"github.com/bitmark-inc/fincovid/schema"
)

var testLabels = Labels{
	Title:               "title",
	CasesAxis:           "cases",
	DeathsAxis:          "deaths",
	ConfirmedByDate:     "confirmed by date",
	ConfirmedByDistrict: "confirmed by district",
	DeathsByDate:        "deaths by date",
	DeathsByArea:        "deaths by area",
	CumulativeConfirmed: "cumulative confirmed",
	CumulativeDeaths:    "cumulative deaths",
}

func testResult() *aggregate.Result {
	return aggregate.Aggregate([]schema.CaseRecord{
		{Date: "2020-04-26T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-25T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-25T09:00:00Z", HealthCareDistrict: "Pirkanmaa"},
	}, []schema.DeathRecord{
		{Date: "2020-04-26T08:00:00Z", Area: "HUS"},
	})
}

func TestBuild(t *testing.T) {
	r := testResult()
	defs := Build(r, r.CumulativeConfirmed(), r.CumulativeDeaths(), testLabels)

	assert.Len(t, defs, 6)
	for i, def := range defs {
		assert.Equal(t, IDs[i], def.ID, "wrong chart order")
		assert.Equal(t, len(def.Labels), len(def.Dataset.Data), "labels and data mismatch in %s", def.ID)
	}

	byID := map[string]Definition{}
	for _, def := range defs {
		byID[def.ID] = def
	}

	d := byID[ConfirmedCasesByDateID]
	assert.Equal(t, KindLine, d.Kind)
	assert.Equal(t, []string{"2020-04-25", "2020-04-26"}, d.Labels)
	assert.Equal(t, []int{2, 1}, d.Dataset.Data)
	assert.Equal(t, "cases", d.YAxisLabel)
	assert.Equal(t, "#10316b", d.Dataset.Color(0))

	d = byID[ConfirmedCasesByDistrictID]
	assert.Equal(t, KindBar, d.Kind)
	assert.Equal(t, []string{"HUS", "Pirkanmaa"}, d.Labels)
	assert.Equal(t, []int{2, 1}, d.Dataset.Data)
	assert.Len(t, d.Dataset.Colors, 22)

	d = byID[DeathCasesByDateID]
	assert.Equal(t, []int{0, 1}, d.Dataset.Data)
	assert.Equal(t, "deaths", d.YAxisLabel)
	assert.Equal(t, "#222", d.Dataset.Color(0))

	d = byID[DeathCasesByAreaID]
	assert.Equal(t, KindDoughnut, d.Kind)
	assert.Equal(t, "", d.YAxisLabel)
	assert.Equal(t, "deaths by area", d.Dataset.Label)

	d = byID[CumulativeConfirmedID]
	assert.Equal(t, []int{2, 3}, d.Dataset.Data)
	assert.Equal(t, "#e25822", d.Dataset.Color(0))

	d = byID[CumulativeDeathsID]
	assert.Equal(t, []int{0, 1}, d.Dataset.Data)
	assert.Equal(t, "cumulative deaths", d.Dataset.Label)
}

func TestDatasetColorCycles(t *testing.T) {
	d := Dataset{Colors: areaColors}
	assert.Equal(t, "#10316b", d.Color(5))
	assert.Equal(t, "#363636", d.Color(4))
	assert.Equal(t, "", Dataset{}.Color(0))
}
