package peneiras

import (
	"github.com/golear/golear/internal/services/golearapi"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

func peneiraCards(items []golearapi.Peneira, lang string) []webtemplates.PeneiraCard {
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
			EnrollURL:  routepath.AppPeneiraEnroll(item.ID),
			LeaveURL:   routepath.AppPeneiraLeave(item.ID),
		})
	}
	return cards
}

func formValues(in golearapi.NewPeneira) webtemplates.PeneiraForm {
	return webtemplates.PeneiraForm{
		Titulo:     in.Titulo,
		Descricao:  in.Descricao,
		Local:      in.Local,
		DataEvento: in.DataEvento,
		Estado:     in.Estado,
		Idade:      in.Idade,
		Posicao:    in.Posicao,
		Detalhes:   in.Detalhes,
		Objetivo:   in.Objetivo,
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
