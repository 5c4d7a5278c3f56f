package chart

import (
	"github.com/bitmark-inc/fincovid/aggregate"
)

// Build returns the six chart definitions for an aggregate result and its
// cumulative confirmed and death series
func Build(r *aggregate.Result, cumulativeConfirmed, cumulativeDeaths []int, l Labels) []Definition {
	dates := r.ConfirmedCasesByDate.Keys()
	deathDates := r.DeathCasesByDate.Keys()

	return []Definition{
		{
			ID:     ConfirmedCasesByDateID,
			Kind:   KindLine,
			Labels: dates,
			Dataset: Dataset{
				Label:       l.ConfirmedByDate,
				Data:        r.ConfirmedCasesByDate.Values(),
				Colors:      []string{confirmedColor},
				BorderWidth: 1,
			},
			YAxisLabel: l.CasesAxis,
		},
		{
			ID:     ConfirmedCasesByDistrictID,
			Kind:   KindBar,
			Labels: r.ConfirmedCasesByDistricts.Keys(),
			Dataset: Dataset{
				Label:       l.ConfirmedByDistrict,
				Data:        r.ConfirmedCasesByDistricts.Values(),
				Colors:      districtColors,
				BorderWidth: 1,
			},
			YAxisLabel: l.CasesAxis,
		},
		{
			ID:     DeathCasesByDateID,
			Kind:   KindLine,
			Labels: deathDates,
			Dataset: Dataset{
				Label:       l.DeathsByDate,
				Data:        r.DeathCasesByDate.Values(),
				Colors:      []string{deathColor},
				BorderWidth: 1,
			},
			YAxisLabel: l.DeathsAxis,
		},
		{
			ID:     DeathCasesByAreaID,
			Kind:   KindDoughnut,
			Labels: r.DeathCasesByArea.Keys(),
			Dataset: Dataset{
				Label:       l.DeathsByArea,
				Data:        r.DeathCasesByArea.Values(),
				Colors:      areaColors,
				BorderWidth: 1,
			},
		},
		{
			ID:     CumulativeConfirmedID,
			Kind:   KindLine,
			Labels: dates,
			Dataset: Dataset{
				Label:       l.CumulativeConfirmed,
				Data:        cumulativeConfirmed,
				Colors:      []string{cumulativeColor},
				BorderWidth: 1,
			},
			YAxisLabel: l.CasesAxis,
		},
		{
			ID:     CumulativeDeathsID,
			Kind:   KindLine,
			Labels: deathDates,
			Dataset: Dataset{
				Label:       l.CumulativeDeaths,
				Data:        cumulativeDeaths,
				Colors:      []string{deathColor},
				BorderWidth: 1,
			},
			YAxisLabel: l.DeathsAxis,
		},
	}
}
