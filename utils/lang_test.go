package utils

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

func TestNewLocalizer(t *testing.T) {
	err := InitI18NBundle("")
	assert.Nil(t, err, "wrong bundle init")

	fi, err := NewLocalizer("fi").Localize(&i18n.LocalizeConfig{MessageID: "chart.axis.cases"})
	assert.Nil(t, err)
	assert.Equal(t, "Vahvistetut tapaukset", fi)

	en, err := NewLocalizer("en").Localize(&i18n.LocalizeConfig{MessageID: "chart.axis.deaths"})
	assert.Nil(t, err)
	assert.Equal(t, "Confirmed deaths", en)

	// unsupported languages fall back to finnish
	sv, err := NewLocalizer("sv").Localize(&i18n.LocalizeConfig{MessageID: "chart.dataset.cumulative_deaths"})
	assert.Nil(t, err)
	assert.Equal(t, "Vahvistetut kuolemat yhteensä Suomessa", sv)

	_, err = NewLocalizer("fi").Localize(&i18n.LocalizeConfig{MessageID: "chart.unknown"})
	assert.IsType(t, &i18n.MessageNotFoundErr{}, err)
}

func TestInitI18NBundleFromDir(t *testing.T) {
	err := InitI18NBundle("./i18n")
	assert.Nil(t, err)

	title, err := NewLocalizer("en").Localize(&i18n.LocalizeConfig{MessageID: "chart.title"})
	assert.Nil(t, err)
	assert.Equal(t, "Coronavirus in Finland", title)

	err = InitI18NBundle("./missing")
	assert.NotNil(t, err)
}
