package public

import (
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

func roleOptions(loc webtemplates.Localizer) []webtemplates.RoleOption {
	options := make([]webtemplates.RoleOption, 0, len(golearapi.Roles))
	for _, role := range golearapi.Roles {
		options = append(options, webtemplates.RoleOption{
			Value: string(role),
			Label: webtemplates.T(loc, "web.role."+roleKey(role)),
		})
	}
	return options
}

// roleKey returns the catalog suffix of a role.
func roleKey(role golearapi.Role) string {
	switch role {
	case golearapi.RoleFa:
		return "fa"
	default:
		return strings.ToLower(string(role))
	}
}

func localizedFieldErrors(loc webtemplates.Localizer, errs fieldErrors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for name, key := range errs {
		out[name] = webtemplates.T(loc, key)
	}
	return out
}

func publicPeneiraCards(items []golearapi.Peneira, lang string) []webtemplates.PeneiraCard {
	cards := make([]webtemplates.PeneiraCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, webtemplates.PeneiraCard{
			ID:         item.ID,
			Titulo:     item.Titulo,
			Descricao:  item.Descricao,
			Local:      item.Local,
			DataEvento: webi18n.FormatDate(item.DataEvento, lang),
			Estado:     item.Estado,
			Idade:      item.Idade,
			Posicao:    item.Posicao,
			Detalhes:   item.Detalhes,
			Objetivo:   item.Objetivo,
		})
	}
	return cards
}

// safeNext keeps post-login redirects on this host.
func safeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return ""
	}
	if raw == routepath.Login || strings.HasPrefix(raw, routepath.Login+"?") {
		return ""
	}
	return raw
}
