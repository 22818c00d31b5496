package assist_web

import (
	"net/http"
	"strings"

	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/feed"
)

type DisplayQuery struct {
	Language display.Language
}

// ParseDisplayQuery takes the language from ?lang=, then the Accept-Language header,
// then the route's default language.
func ParseDisplayQuery(request *http.Request, localizer *display.Localizer) DisplayQuery {
	if lang, ok := localizer.Parse(request.URL.Query().Get("lang")); ok {
		return DisplayQuery{Language: lang}
	}
	return DisplayQuery{Language: localizer.Match(request.Header.Get("Accept-Language"))}
}

type FeedQuery struct {
	Format string // "pb" or "json"
}

func ParseFeedQuery(request *http.Request) FeedQuery {
	format := strings.ToLower(strings.TrimSpace(request.URL.Query().Get("format")))
	if format == "" {
		format = feed.FormatProtobuf
	}
	return FeedQuery{Format: format}
}
