// Package i18n defines the languages Golear serves and installs the message
// catalogs used by x/text/message printers.
package i18n

import (
	"strings"
	"sync"

	"github.com/golear/golear/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	portugueseBR = language.MustParse("pt-BR")
	englishUS    = language.MustParse("en-US")

	supported = []language.Tag{portugueseBR, englishUS}
	matcher   = language.NewMatcher(supported)

	registerOnce sync.Once
	registerErr  error
)

// DefaultTag returns the language used when nothing else matches.
func DefaultTag() language.Tag {
	return portugueseBR
}

// SupportedTags returns the supported tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag parses raw and reports whether it maps to a supported tag.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultTag(), false
	}
	matched, _, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultTag(), false
	}
	return normalize(matched), true
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	matched, _, _ := matcher.Match(tags...)
	return normalize(matched)
}

// Printer returns a printer for tag after making sure catalogs are loaded.
func Printer(tag language.Tag) *message.Printer {
	_ = Register()
	return message.NewPrinter(normalize(tag))
}

// Register loads the embedded catalogs once per process.
func Register() error {
	registerOnce.Do(func() {
		bundle, err := catalog.LoadEmbedded()
		if err != nil {
			registerErr = err
			return
		}
		registerErr = bundle.Register()
	})
	return registerErr
}

// Matcher may return tags with -u-rg extensions; strip them back to ours.
func normalize(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, candidate := range supported {
		if candidateBase, _ := candidate.Base(); candidateBase == base {
			return candidate
		}
	}
	return DefaultTag()
}
