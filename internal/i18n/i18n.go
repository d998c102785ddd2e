// Package i18n holds the storefront's locale rules: supported languages,
// text direction, and the translation keys the client uses for categories.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported languages. The first entry is the default.
const (
	English = "en"
	Hebrew  = "he"
)

// FallbackCategoryKey is used for slugs outside the known catalog.
const FallbackCategoryKey = "categories"

var categoryKeys = map[string]string{
	"supermarket":   "category_supermarket",
	"dried-fruits":  "category_driedfruits",
	"nuts":          "category_nuts",
	"spices":        "category_spices",
	"bakery":        "category_bakery",
	"sauces":        "category_sauces",
	"alcohol":       "category_alcohol",
	"tahini-hummus": "category_tahini",
	"snacks":        "category_snacks",
	"coffee":        "category_coffee",
	"organic":       "category_organic",
}

// CategoryKey maps a category slug to its translation key.
func CategoryKey(slug string) string {
	if key, ok := categoryKeys[strings.ToLower(slug)]; ok {
		return key
	}
	return FallbackCategoryKey
}

var (
	supported = []string{English, Hebrew}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Hebrew})
)

// Negotiate picks the response language. An explicit lang (query parameter)
// wins over the Accept-Language header; anything unmatched yields English.
func Negotiate(lang, acceptLanguage string) string {
	var tags []language.Tag
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 && acceptLanguage != "" {
		parsed, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			tags = parsed
		}
	}
	if len(tags) == 0 {
		return English
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return supported[idx]
}

// Direction is "rtl" for Hebrew and "ltr" otherwise.
func Direction(lang string) string {
	if lang == Hebrew {
		return "rtl"
	}
	return "ltr"
}
