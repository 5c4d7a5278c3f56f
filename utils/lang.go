package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed i18n/*.yaml
var messageFiles embed.FS

var messageFileNames = []string{"fi.yaml", "en.yaml"}

var bundle *i18n.Bundle

// InitI18NBundle loads message files from dir, or the built-in ones when dir is empty
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.Finnish)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range messageFileNames {
		if dir != "" {
			if _, err := b.LoadMessageFile(path.Join(dir, name)); err != nil {
				return err
			}
			continue
		}

		data, err := messageFiles.ReadFile(path.Join("i18n", name))
		if err != nil {
			return err
		}
		if _, err := b.ParseMessageFileBytes(data, name); err != nil {
			return err
		}
	}

	bundle = b
	return nil
}

// NewLocalizer returns a localizer for lang. The bundle must be initialised first.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}
