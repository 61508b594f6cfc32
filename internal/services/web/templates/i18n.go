package templates

import (
	platformi18n "github.com/golear/golear/internal/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key with loc. A nil loc renders the default language so a
// page built without a request localizer still reads as Portuguese.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		loc = platformi18n.Printer(platformi18n.DefaultTag())
	}
	return loc.Sprintf(key, args...)
}
