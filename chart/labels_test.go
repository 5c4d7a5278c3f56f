package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fincovid/utils"
)

func TestLocalizedLabels(t *testing.T) {
	assert.Nil(t, utils.InitI18NBundle(""))

	l, err := LocalizedLabels(utils.NewLocalizer("fi"))
	assert.Nil(t, err)
	assert.Equal(t, "Vahvistetut tapaukset", l.CasesAxis)
	assert.Equal(t, "Vahvistetut kuolemat", l.DeathsAxis)
	assert.Equal(t, "Vahvistetut tapaukset tänä päivänä", l.ConfirmedByDate)
	assert.Equal(t, "Vahvistetut kuolemat tässä sairaanhoitopiirissä", l.DeathsByArea)
	assert.Equal(t, "Vahvistetut tapaukset yhteensä Suomessa", l.CumulativeConfirmed)

	l, err = LocalizedLabels(utils.NewLocalizer("en"))
	assert.Nil(t, err)
	assert.Equal(t, "Confirmed cases", l.CasesAxis)
}
