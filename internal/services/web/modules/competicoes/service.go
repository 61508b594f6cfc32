package competicoes

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

const dateLayout = "2006-01-02"

// CompeticaoGateway abstracts the competition endpoints.
type CompeticaoGateway interface {
	ListCompeticoes(ctx context.Context) ([]golearapi.Competicao, error)
	CreateCompeticao(ctx context.Context, in golearapi.Competicao) (golearapi.Competicao, error)
}

type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

type service struct {
	gateway CompeticaoGateway
}

func newService(gateway CompeticaoGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) list(ctx context.Context, userID string) ([]golearapi.Competicao, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	items, err := s.gateway.ListCompeticoes(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].DataInicio < items[j].DataInicio })
	return items, nil
}

// create publishes a competition. Only clubs organise competitions.
func (s service) create(ctx context.Context, userID string, role golearapi.Role, in golearapi.Competicao) (golearapi.Competicao, error) {
	if err := requireUserID(userID); err != nil {
		return golearapi.Competicao{}, err
	}
	if role != golearapi.RoleClube {
		return golearapi.Competicao{}, apperrors.EK(apperrors.KindForbidden, "web.competicoes.error_clubs_only", "only clubs create competicoes")
	}
	in = normalize(in)
	if errs := validate(in); len(errs) > 0 {
		return golearapi.Competicao{}, errs
	}
	return s.gateway.CreateCompeticao(ctx, in)
}

func normalize(in golearapi.Competicao) golearapi.Competicao {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Descricao = strings.TrimSpace(in.Descricao)
	in.DataInicio = strings.TrimSpace(in.DataInicio)
	in.DataFim = strings.TrimSpace(in.DataFim)
	return in
}

func validate(in golearapi.Competicao) fieldErrors {
	errs := fieldErrors{}
	if in.Nome == "" {
		errs["nome"] = "web.form.error_required"
	}
	if in.Descricao == "" {
		errs["descricao"] = "web.form.error_required"
	}
	start, startErr := parseDate(in.DataInicio, "data_inicio", errs)
	end, endErr := parseDate(in.DataFim, "data_fim", errs)
	if startErr == nil && endErr == nil && end.Before(start) {
		errs["data_fim"] = "web.competicoes.error_end_before_start"
	}
	return errs
}

func parseDate(raw, name string, errs fieldErrors) (time.Time, error) {
	if raw == "" {
		errs[name] = "web.form.error_required"
		return time.Time{}, fmt.Errorf("%s is empty", name)
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs[name] = "web.form.error_date"
		return time.Time{}, err
	}
	return value, nil
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	return nil
}
