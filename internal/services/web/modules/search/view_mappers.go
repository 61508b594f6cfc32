package search

import (
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/profileview"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

func filterFields(filters golearapi.SearchFilters, loc webtemplates.Localizer) []webtemplates.SearchFilterField {
	values := filters.Values()
	keys := golearapi.FilterKeys()
	fields := make([]webtemplates.SearchFilterField, 0, len(keys))
	for _, key := range keys {
		field := webtemplates.SearchFilterField{
			Name:  key,
			Label: webtemplates.T(loc, "web.search.filter_"+key),
			Value: values.Get(key),
		}
		if key == "role" {
			field.Options = roleOptions(loc)
		}
		fields = append(fields, field)
	}
	return fields
}

func roleOptions(loc webtemplates.Localizer) []webtemplates.RoleOption {
	options := make([]webtemplates.RoleOption, 0, len(golearapi.Roles))
	for _, role := range golearapi.Roles {
		options = append(options, webtemplates.RoleOption{Value: string(role), Label: profileview.RoleLabel(role, loc)})
	}
	return options
}

func resultCards(profiles []golearapi.Profile, loc webtemplates.Localizer) []webtemplates.UserCard {
	cards := make([]webtemplates.UserCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, webtemplates.UserCard{
			ID:       p.ID,
			Name:     p.DisplayName(),
			Role:     profileview.RoleLabel(p.Role, loc),
			Avatar:   p.Avatar(),
			Position: p.MainPosition(),
			Location: profileview.Location(p),
			URL:      routepath.AppUser(p.ID),
		})
	}
	return cards
}

func recommendationCards(recs []golearapi.Recommendation, loc webtemplates.Localizer) []webtemplates.UserCard {
	cards := make([]webtemplates.UserCard, 0, len(recs))
	for _, rec := range recs {
		name := strings.TrimSpace(rec.Nome)
		if name == "" {
			name = rec.Email
		}
		avatar := rec.ProfilePictureURL
		if strings.TrimSpace(avatar) == "" {
			avatar = golearapi.DefaultAvatarURL
		}
		cards = append(cards, webtemplates.UserCard{
			ID:       rec.ID,
			Name:     name,
			Role:     profileview.RoleLabel(rec.Role, loc),
			Avatar:   avatar,
			Position: rec.Posicao,
			Location: profileview.Location(golearapi.Profile{Cidade: rec.Cidade, Regiao: rec.Regiao}),
			URL:      routepath.AppUser(rec.ID),
		})
	}
	return cards
}
