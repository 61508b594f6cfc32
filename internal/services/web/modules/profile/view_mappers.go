package profile

import (
	"net/url"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/profile/stats"
	"github.com/golear/golear/internal/services/web/profileview"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

// editView maps p to the edit form. submitted, when set, overrides the
// stored values so a rejected form keeps the user's input.
func editView(p golearapi.Profile, submitted url.Values, loc webtemplates.Localizer) webtemplates.ProfileEditView {
	view := webtemplates.ProfileEditView{Avatar: p.Avatar()}
	for _, f := range profileview.Fields {
		if !f.AppliesTo(p.Role) {
			continue
		}
		value := f.Value(p)
		if submitted != nil {
			value = submitted.Get(f.Name)
		}
		view.Fields = append(view.Fields, webtemplates.ProfileField{
			Name:  f.Name,
			Label: profileview.FieldLabel(f.Name, loc),
			Type:  f.Type,
			Value: value,
		})
	}
	if p.Role == golearapi.RoleJogador {
		vector := stats.Normalize(p.Estatisticas)
		if submitted != nil {
			vector = allocate(submitted["current"], submitted["estatisticas"])
		}
		view.Stats = profileview.Stats(vector, true, loc)
	}
	return view
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
