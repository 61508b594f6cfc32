package i18n

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"golang.org/x/text/language"
)

func TestResolveTagOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "default", target: "/", want: "pt-BR"},
		{name: "accept language", target: "/", accept: "en-GB,en;q=0.8", want: "en-US"},
		{name: "cookie beats header", target: "/", cookie: "pt-BR", accept: "en-US", want: "pt-BR"},
		{name: "query beats cookie", target: "/?lang=en-US", cookie: "pt-BR", want: "en-US"},
		{name: "unsupported query ignored", target: "/?lang=xx", accept: "en", want: "en-US"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req, nil).String(); got != tc.want {
				t.Fatalf("ResolveTag() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveTagPrefersResolver(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	got := ResolveTag(req, func(*http.Request) string { return "en" })
	if got != language.MustParse("en-US") {
		t.Fatalf("ResolveTag() = %v, want en-US", got)
	}
}

func TestResolveLocalizerPersistsQueryLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/peneiras?lang=en-US", nil)
	rr := httptest.NewRecorder()
	printer, lang := ResolveLocalizer(rr, req, nil)
	if lang != "en-US" {
		t.Fatalf("lang = %q, want en-US", lang)
	}
	if got := printer.Sprintf("core.app_name"); got != "Golear" {
		t.Fatalf("app name = %q", got)
	}
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, LangCookieName+"=en-US") {
		t.Fatalf("Set-Cookie = %q, want language cookie", got)
	}

	plain := httptest.NewRequest(http.MethodGet, "/peneiras", nil)
	plainRR := httptest.NewRecorder()
	_, _ = ResolveLocalizer(plainRR, plain, nil)
	if got := plainRR.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want none without lang param", got)
	}
}

func TestLanguageURLKeepsQuery(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/app/search", "role=Jogador&lang=pt-BR", "en-US")
	if got != "/app/search?lang=en-US&role=Jogador" {
		t.Fatalf("LanguageURL() = %q", got)
	}
	if got := LanguageURL("", "", "pt-BR"); got != "/?lang=pt-BR" {
		t.Fatalf("LanguageURL(empty) = %q", got)
	}
}

func TestLanguageOptionsMarkActive(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/peneiras", nil)
	options := LanguageOptions(nil, req, "en-US")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Tag != "pt-BR" || options[0].Active {
		t.Fatalf("options[0] = %+v", options[0])
	}
	if !options[1].Active || options[1].URL != "/peneiras?lang=en-US" {
		t.Fatalf("options[1] = %+v", options[1])
	}
}

func TestLocalizeError(t *testing.T) {
	t.Parallel()

	if got := LocalizeError(nil, nil); got != "" {
		t.Fatalf("LocalizeError(nil) = %q", got)
	}
	if got := LocalizeError(nil, errors.New("dial tcp: refused")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("LocalizeError(plain) = %q", got)
	}
	printer, _ := ResolveLocalizer(nil, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil), nil)
	err := apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "bad form")
	if got := LocalizeError(printer, err); got == "" || got == "error.web.invalid_form" {
		t.Fatalf("LocalizeError(keyed) = %q, want translated text", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		lang string
		want string
	}{
		{name: "rfc3339 pt", raw: "2025-03-10T14:00:00.000Z", lang: "pt-BR", want: "10/03/2025"},
		{name: "date only en", raw: "2025-03-10", lang: "en-US", want: "Mar 10, 2025"},
		{name: "unknown language", raw: "2025-03-10", lang: "", want: "10/03/2025"},
		{name: "unparseable", raw: "amanhã", lang: "pt-BR", want: "amanhã"},
		{name: "empty", raw: " ", lang: "pt-BR", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDate(tc.raw, tc.lang); got != tc.want {
				t.Fatalf("FormatDate(%q, %q) = %q, want %q", tc.raw, tc.lang, got, tc.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	if got := FormatPrice(29.99, "pt-BR"); got != "R$ 29,99" {
		t.Fatalf("FormatPrice(pt-BR) = %q", got)
	}
	if got := FormatPrice(9.9, "en-US"); got != "R$ 9.90" {
		t.Fatalf("FormatPrice(en-US) = %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	if got := FormatDateTime(at, "pt-BR"); got != "10/03/2026 14:05" {
		t.Fatalf("FormatDateTime(pt-BR) = %q", got)
	}
	if got := FormatDateTime(at, "en-US"); got != "Mar 10, 2026 14:05" {
		t.Fatalf("FormatDateTime(en-US) = %q", got)
	}
	if got := FormatDateTime(time.Time{}, "en-US"); got != "" {
		t.Fatalf("zero time = %q", got)
	}
}
