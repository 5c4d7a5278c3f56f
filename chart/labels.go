package chart

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Labels holds the static texts shown on the charts
type Labels struct {
	Title               string
	CasesAxis           string
	DeathsAxis          string
	ConfirmedByDate     string
	ConfirmedByDistrict string
	DeathsByDate        string
	DeathsByArea        string
	CumulativeConfirmed string
	CumulativeDeaths    string
}

// LocalizedLabels reads the chart texts from loc
func LocalizedLabels(loc *i18n.Localizer) (Labels, error) {
	var l Labels

	fields := []struct {
		id     string
		target *string
	}{
		{"chart.title", &l.Title},
		{"chart.axis.cases", &l.CasesAxis},
		{"chart.axis.deaths", &l.DeathsAxis},
		{"chart.dataset.confirmed_by_date", &l.ConfirmedByDate},
		{"chart.dataset.confirmed_by_district", &l.ConfirmedByDistrict},
		{"chart.dataset.deaths_by_date", &l.DeathsByDate},
		{"chart.dataset.deaths_by_area", &l.DeathsByArea},
		{"chart.dataset.cumulative_confirmed", &l.CumulativeConfirmed},
		{"chart.dataset.cumulative_deaths", &l.CumulativeDeaths},
	}

	for _, f := range fields {
		text, err := loc.Localize(&i18n.LocalizeConfig{MessageID: f.id})
		if err != nil {
			return Labels{}, err
		}
		*f.target = text
	}

	return l, nil
}
