package aggregate

import (
	"strings"
	"time"

	"github.com/bitmark-inc/fincovid/schema"
)

const dateLayout = "2006-01-02"

// Result holds the counts the charts are drawn from. Date keyed counts are
// ordered oldest first, district and area counts in first-seen order.
type Result struct {
	ConfirmedCasesByDate      *Counts `json:"confirmedCasesByDate"`
	ConfirmedCasesByDistricts *Counts `json:"confirmedCasesByDistricts"`
	DeathCasesByDate          *Counts `json:"deathCasesByDate"`
	DeathCasesByArea          *Counts `json:"deathCasesByArea"`
}

// CumulativeConfirmed returns the running total of confirmed cases per date
func (r *Result) CumulativeConfirmed() []int {
	return Cumulative(r.ConfirmedCasesByDate.Values())
}

// CumulativeDeaths returns the running total of death cases per date
func (r *Result) CumulativeDeaths() []int {
	return Cumulative(r.DeathCasesByDate.Values())
}

// DateKey returns the calendar date part of an ISO-8601 timestamp.
// The second return value is false when the timestamp has no usable date.
func DateKey(timestamp string) (string, bool) {
	key := timestamp
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		key = timestamp[:i]
	}

	if key == "" {
		return "", false
	}

	if _, err := time.Parse(dateLayout, key); err != nil {
		return "", false
	}

	return key, true
}

// Aggregate counts confirmed and death cases by date and by region.
// Both inputs are expected newest first, as the data source publishes them.
// The input slices are not modified.
func Aggregate(confirmed []schema.CaseRecord, deaths []schema.DeathRecord) *Result {
	r := &Result{
		ConfirmedCasesByDate:      NewCounts(),
		ConfirmedCasesByDistricts: NewCounts(),
		DeathCasesByArea:          NewCounts(),
	}

	confirmedOldestFirst := reverseCases(confirmed)
	deathsOldestFirst := reverseDeaths(deaths)

	for _, c := range confirmedOldestFirst {
		if date, ok := DateKey(c.Date); ok {
			r.ConfirmedCasesByDate.Seed(date)
		}
	}

	// death dates outside of the confirmed range never become labels
	r.DeathCasesByDate = r.ConfirmedCasesByDate.Clone()

	for _, c := range confirmed {
		r.ConfirmedCasesByDistricts.Seed(c.HealthCareDistrict)
	}

	for _, d := range deaths {
		r.DeathCasesByArea.Seed(d.Area)
	}

	for _, c := range confirmedOldestFirst {
		if date, ok := DateKey(c.Date); ok {
			r.ConfirmedCasesByDate.Inc(date)
		}
		r.ConfirmedCasesByDistricts.Inc(c.HealthCareDistrict)
	}

	for _, d := range deathsOldestFirst {
		if date, ok := DateKey(d.Date); ok {
			r.DeathCasesByDate.Inc(date)
		}
		r.DeathCasesByArea.Inc(d.Area)
	}

	return r
}

func reverseCases(records []schema.CaseRecord) []schema.CaseRecord {
	reversed := make([]schema.CaseRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	return reversed
}

func reverseDeaths(records []schema.DeathRecord) []schema.DeathRecord {
	reversed := make([]schema.DeathRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	return reversed
}
