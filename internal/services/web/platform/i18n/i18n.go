// Package i18n resolves the request language for web handlers.
//
// Resolution order is the lang query parameter, then the golear_lang cookie,
// then Accept-Language. A lang parameter is persisted as the cookie so the
// choice survives navigation.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/golear/golear/internal/platform/i18n"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "golear_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ResolveTag resolves the request language. A non-nil resolveLanguage wins
// when it yields a supported tag.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(strings.TrimSpace(resolveLanguage(r))); ok {
			return tag
		}
	}
	tag, _ := resolveRequestTag(r)
	return tag
}

// ResolveLanguage returns the request language as a BCP 47 string.
func ResolveLanguage(r *http.Request) string {
	return ResolveTag(r, nil).String()
}

// resolveRequestTag reports whether the tag came from the query parameter.
func resolveRequestTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
			if tag, ok := platformi18n.ParseTag(raw); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists tag on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// EnsureLanguageCookie writes the cookie when it does not already hold tag.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	expected := strings.TrimSpace(tag.String())
	if expected == "" {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil && strings.TrimSpace(cookie.Value) == expected {
			return
		}
	}
	SetLanguageCookie(w, tag)
}

// ResolveLocalizer resolves a printer and language string for a request and
// syncs the language cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag := ResolveTag(r, resolveLanguage)
	if _, fromQuery := resolveRequestTag(r); fromQuery {
		EnsureLanguageCookie(w, r, tag)
	}
	return platformi18n.Printer(tag), tag.String()
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageOptions builds the switcher entries for the current request.
func LanguageOptions(loc Localizer, r *http.Request, active string) []LanguageOption {
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	activeTag, _ := platformi18n.ParseTag(active)
	tags := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		label := tag.String()
		if loc != nil {
			if text := strings.TrimSpace(loc.Sprintf("core.language." + tag.String())); text != "" {
				label = text
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LocalizeError resolves a translated error string when a key is attached,
// otherwise the generic message for its status.
func LocalizeError(loc Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			return loc.Sprintf(key)
		}
	}
	return http.StatusText(apperrors.HTTPStatus(err))
}

// dateLayouts are the timestamp shapes the backend sends.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// FormatDate renders a backend timestamp as a calendar date in lang. Input
// that matches no known layout is returned unchanged.
func FormatDate(raw string, lang string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if tag, ok := platformi18n.ParseTag(lang); ok {
			if base, _ := tag.Base(); base.String() == "en" {
				return parsed.Format("Jan 2, 2006")
			}
		}
		return parsed.Format("02/01/2006")
	}
	return raw
}

// FormatPrice renders a BRL amount with the decimal separator of lang.
func FormatPrice(amount float64, lang string) string {
	tag, ok := platformi18n.ParseTag(lang)
	if !ok {
		tag = platformi18n.DefaultTag()
	}
	return "R$ " + message.NewPrinter(tag).Sprint(number.Decimal(amount, number.Scale(2)))
}

// FormatDateTime renders t as a local date and time in lang.
func FormatDateTime(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	if tag, ok := platformi18n.ParseTag(lang); ok {
		if base, _ := tag.Base(); base.String() == "en" {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return t.Format("02/01/2006 15:04")
}
