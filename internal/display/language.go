package display

import (
	"strings"

	"golang.org/x/text/language"

	"tarediiran-industries.com/gap-assist/internal/route"
)

// Language selects between the two languages of a route. It only changes display
// text, never the journey.
type Language int

const (
	Primary Language = iota
	Secondary
)

func (lang Language) String() string {
	if lang == Secondary {
		return "secondary"
	}
	return "primary"
}

// Toggle returns the other language, like the language button on the display.
func (lang Language) Toggle() Language {
	if lang == Secondary {
		return Primary
	}
	return Secondary
}

type Localizer struct {
	route   route.Route
	matcher language.Matcher
}

func NewLocalizer(rt route.Route) *Localizer {
	return &Localizer{
		route:   rt,
		matcher: language.NewMatcher([]language.Tag{rt.Primary, rt.Secondary}),
	}
}

func (localizer *Localizer) Tag(lang Language) language.Tag {
	if lang == Secondary {
		return localizer.route.Secondary
	}
	return localizer.route.Primary
}

// Parse accepts a language tag of the route ("en", "hi") or the words primary and
// secondary.
func (localizer *Localizer) Parse(value string) (Language, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return Primary, false
	case "primary":
		return Primary, true
	case "secondary":
		return Secondary, true
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Primary, false
	}
	base, _ := tag.Base()
	for _, lang := range []Language{Primary, Secondary} {
		if candidate, _ := localizer.Tag(lang).Base(); candidate == base {
			return lang, true
		}
	}
	return Primary, false
}

// Default is the language the display opens in when the rider expressed no
// preference the route supports.
func (localizer *Localizer) Default() Language {
	if localizer.route.DefaultSecondary {
		return Secondary
	}
	return Primary
}

// Match picks the language that best fits an Accept-Language header.
func (localizer *Localizer) Match(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return localizer.Default()
	}

	_, index, confidence := localizer.matcher.Match(tags...)
	if confidence == language.No {
		return localizer.Default()
	}
	return Language(index)
}

func (localizer *Localizer) Labels(lang Language) route.Labels {
	if lang == Secondary {
		return localizer.route.SecondaryLabels
	}
	return localizer.route.PrimaryLabels
}
