package i18n

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator returns a collator for ordering translated labels under the
// locale's own sort order. Chinese collation differs from English, so group
// ordering may legitimately differ between locales for the same data.
func Collator(loc Locale) *collate.Collator {
	if loc == LocaleZH {
		return collate.New(language.SimplifiedChinese)
	}
	return collate.New(language.English)
}
