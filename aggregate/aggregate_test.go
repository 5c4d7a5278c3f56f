package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fincovid/schema"
)

func TestAggregate(t *testing.T) {
	confirmed := []schema.CaseRecord{
		{Date: "2020-04-26T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-25T10:00:00Z", HealthCareDistrict: "HUS"},
	}
	deaths := []schema.DeathRecord{
		{Date: "2020-04-26T08:00:00Z", Area: "HUS"},
	}

	r := Aggregate(confirmed, deaths)

	assert.Equal(t, []string{"2020-04-25", "2020-04-26"}, r.ConfirmedCasesByDate.Keys(), "wrong date order")
	assert.Equal(t, []int{1, 1}, r.ConfirmedCasesByDate.Values())
	assert.Equal(t, []string{"HUS"}, r.ConfirmedCasesByDistricts.Keys())
	assert.Equal(t, []int{2}, r.ConfirmedCasesByDistricts.Values())
	assert.Equal(t, []string{"2020-04-25", "2020-04-26"}, r.DeathCasesByDate.Keys())
	assert.Equal(t, []int{0, 1}, r.DeathCasesByDate.Values())
	assert.Equal(t, []string{"HUS"}, r.DeathCasesByArea.Keys())
	assert.Equal(t, []int{1}, r.DeathCasesByArea.Values())
	assert.Equal(t, []int{1, 2}, r.CumulativeConfirmed())
	assert.Equal(t, []int{0, 1}, r.CumulativeDeaths())
}

func TestAggregateDeathOutsideConfirmedRange(t *testing.T) {
	confirmed := []schema.CaseRecord{
		{Date: "2020-04-26T10:00:00Z", HealthCareDistrict: "HUS"},
	}
	deaths := []schema.DeathRecord{
		{Date: "2020-05-02T08:00:00Z", Area: "Pirkanmaa"},
		{Date: "2020-04-26T08:00:00Z", Area: "HUS"},
	}

	r := Aggregate(confirmed, deaths)

	assert.False(t, r.DeathCasesByDate.Has("2020-05-02"), "unseeded death date added")
	assert.Equal(t, []string{"2020-04-26"}, r.DeathCasesByDate.Keys())
	assert.Equal(t, 1, r.DeathCasesByDate.Sum())

	assert.Equal(t, []string{"Pirkanmaa", "HUS"}, r.DeathCasesByArea.Keys(), "wrong area order")
	assert.Equal(t, []int{1, 1}, r.DeathCasesByArea.Values())
}

func TestAggregateEmpty(t *testing.T) {
	r := Aggregate(nil, []schema.DeathRecord{})

	assert.Equal(t, 0, r.ConfirmedCasesByDate.Len())
	assert.Equal(t, 0, r.ConfirmedCasesByDistricts.Len())
	assert.Equal(t, 0, r.DeathCasesByDate.Len())
	assert.Equal(t, 0, r.DeathCasesByArea.Len())
	assert.Empty(t, r.CumulativeConfirmed())
	assert.Empty(t, r.CumulativeDeaths())
}

func TestAggregateMalformedDates(t *testing.T) {
	confirmed := []schema.CaseRecord{
		{Date: "2020-04-27T09:00:00Z", HealthCareDistrict: "Varsinais-Suomi"},
		{Date: "", HealthCareDistrict: "HUS"},
		{Date: "T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "yesterday", HealthCareDistrict: "Pirkanmaa"},
		{Date: "2020-04-26", HealthCareDistrict: "HUS"},
	}
	deaths := []schema.DeathRecord{
		{Date: "not a date", Area: "HUS"},
		{Date: "2020-04-27T01:00:00Z", Area: "HUS"},
	}

	r := Aggregate(confirmed, deaths)

	assert.Equal(t, []string{"2020-04-26", "2020-04-27"}, r.ConfirmedCasesByDate.Keys())
	assert.Equal(t, 2, r.ConfirmedCasesByDate.Sum(), "malformed dates counted")
	assert.Equal(t, len(confirmed), r.ConfirmedCasesByDistricts.Sum(), "district total should count every record")
	assert.Equal(t, []string{"Varsinais-Suomi", "HUS", "Pirkanmaa"}, r.ConfirmedCasesByDistricts.Keys())

	assert.Equal(t, []int{0, 1}, r.DeathCasesByDate.Values())
	v, _ := r.DeathCasesByArea.Get("HUS")
	assert.Equal(t, 2, v)
}

func TestAggregateDoesNotModifyInput(t *testing.T) {
	confirmed := []schema.CaseRecord{
		{Date: "2020-04-26T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-25T10:00:00Z", HealthCareDistrict: "Pirkanmaa"},
	}
	deaths := []schema.DeathRecord{
		{Date: "2020-04-26T10:00:00Z", Area: "HUS"},
		{Date: "2020-04-25T10:00:00Z", Area: "Pirkanmaa"},
	}

	Aggregate(confirmed, deaths)

	assert.Equal(t, "2020-04-26T10:00:00Z", confirmed[0].Date)
	assert.Equal(t, "HUS", deaths[0].Area)
}

func TestAggregateProperties(t *testing.T) {
	confirmed := []schema.CaseRecord{
		{Date: "2020-04-28T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-28T07:00:00Z", HealthCareDistrict: "Pirkanmaa"},
		{Date: "2020-04-27T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "broken", HealthCareDistrict: "Lappi"},
		{Date: "2020-04-25T10:00:00Z", HealthCareDistrict: "HUS"},
		{Date: "2020-04-25T01:00:00Z", HealthCareDistrict: "Lappi"},
	}
	deaths := []schema.DeathRecord{
		{Date: "2020-04-29T10:00:00Z", Area: "HUS"},
		{Date: "2020-04-28T10:00:00Z", Area: "HUS"},
		{Date: "2020-04-20T10:00:00Z", Area: "Lappi"},
	}

	r := Aggregate(confirmed, deaths)

	wellFormed := 0
	for _, c := range confirmed {
		if _, ok := DateKey(c.Date); ok {
			wellFormed++
		}
	}

	for _, counts := range []*Counts{
		r.ConfirmedCasesByDate,
		r.ConfirmedCasesByDistricts,
		r.DeathCasesByDate,
		r.DeathCasesByArea,
	} {
		for _, v := range counts.Values() {
			assert.True(t, v >= 0, "negative count")
		}
	}

	assert.Equal(t, len(confirmed), r.ConfirmedCasesByDistricts.Sum())
	assert.Equal(t, wellFormed, r.ConfirmedCasesByDate.Sum())
	assert.Equal(t, r.ConfirmedCasesByDate.Keys(), r.DeathCasesByDate.Keys())
	assert.Equal(t, len(deaths), r.DeathCasesByArea.Sum())
	assert.Equal(t, []string{"2020-04-25", "2020-04-27", "2020-04-28"}, r.ConfirmedCasesByDate.Keys())
	assert.Equal(t, []int{2, 1, 2}, r.ConfirmedCasesByDate.Values())
}

func TestDateKey(t *testing.T) {
	cases := []struct {
		timestamp string
		key       string
		ok        bool
	}{
		{"2020-04-26T10:00:00.000Z", "2020-04-26", true},
		{"2020-04-26", "2020-04-26", true},
		{"2020-02-30T10:00:00Z", "", false},
		{"", "", false},
		{"T12:00:00Z", "", false},
		{"26.4.2020", "", false},
	}

	for _, c := range cases {
		key, ok := DateKey(c.timestamp)
		assert.Equal(t, c.ok, ok, c.timestamp)
		assert.Equal(t, c.key, key, c.timestamp)
	}
}
