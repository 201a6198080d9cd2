package i18n

import "fmt"

// Locale identifies one of the two content languages.
// Every content file on disk belongs to exactly one locale.
type Locale string

const (
	LocaleKo Locale = "ko"
	LocaleEn Locale = "en"
)

// DefaultLocale is Korean: the Korean variant of every post is mandatory,
// English is an optional translation.
const DefaultLocale = LocaleKo

// Locales lists all supported locales, default first.
var Locales = []Locale{LocaleKo, LocaleEn}

// Parse returns the locale for s, or the default locale when s is empty.
func Parse(s string) (Locale, error) {
	switch s {
	case "":
		return DefaultLocale, nil
	case string(LocaleKo):
		return LocaleKo, nil
	case string(LocaleEn):
		return LocaleEn, nil
	}
	return "", fmt.Errorf("unsupported locale: %q", s)
}

// Valid reports whether s names a supported locale.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil && s != ""
}

func (l Locale) String() string {
	return string(l)
}
