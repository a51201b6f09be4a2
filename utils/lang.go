package utils

import (
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return b
}

// InitI18NBundle loads every yaml message file found in `i18n.dir`.
// Messages without a translation fall back to their English default.
func InitI18NBundle() error {
	var err error
	bundleOnce.Do(func() {
		bundle = newBundle()

		dir := viper.GetString("i18n.dir")
		if dir == "" {
			return
		}

		var files []string
		files, err = filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return
		}

		for _, f := range files {
			if _, err = bundle.LoadMessageFile(f); err != nil {
				return
			}
		}
	})
	return err
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	bundleOnce.Do(func() {
		bundle = newBundle()
	})
	return i18n.NewLocalizer(bundle, langs...)
}

// Translate localizes a message id, returning fallback when no translation exists.
func Translate(localizer *i18n.Localizer, id, fallback string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
