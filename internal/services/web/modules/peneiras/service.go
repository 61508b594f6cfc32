package peneiras

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// dateLayout is the value format of date inputs.
const dateLayout = "2006-01-02"

// PeneiraGateway abstracts the tryout endpoints behind domain types.
type PeneiraGateway interface {
	ListPeneiras(ctx context.Context) ([]golearapi.Peneira, error)
	CreatePeneira(ctx context.Context, in golearapi.NewPeneira) (int64, error)
	EnrollPeneira(ctx context.Context, peneiraID int64) error
	UnenrollPeneira(ctx context.Context, peneiraID int64) error
}

// fieldErrors maps form field names to catalog keys.
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
	gateway PeneiraGateway
}

func newService(gateway PeneiraGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) list(ctx context.Context, userID string) ([]golearapi.Peneira, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.gateway.ListPeneiras(ctx)
}

// create publishes a tryout. Only scouts may publish.
func (s service) create(ctx context.Context, userID string, role golearapi.Role, in golearapi.NewPeneira) (int64, error) {
	if err := requireUserID(userID); err != nil {
		return 0, err
	}
	if role != golearapi.RoleOlheiro {
		return 0, apperrors.EK(apperrors.KindForbidden, "web.peneiras.error_scouts_only", "only scouts publish peneiras")
	}
	in = normalize(in)
	if errs := validate(in); len(errs) > 0 {
		return 0, errs
	}
	return s.gateway.CreatePeneira(ctx, in)
}

func (s service) enroll(ctx context.Context, userID string, peneiraID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.gateway.EnrollPeneira(ctx, peneiraID)
}

func (s service) leave(ctx context.Context, userID string, peneiraID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.gateway.UnenrollPeneira(ctx, peneiraID)
}

func normalize(in golearapi.NewPeneira) golearapi.NewPeneira {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.Descricao = strings.TrimSpace(in.Descricao)
	in.Local = strings.TrimSpace(in.Local)
	in.DataEvento = strings.TrimSpace(in.DataEvento)
	in.Estado = strings.TrimSpace(in.Estado)
	in.Idade = strings.TrimSpace(in.Idade)
	in.Posicao = strings.TrimSpace(in.Posicao)
	in.Detalhes = strings.TrimSpace(in.Detalhes)
	in.Objetivo = strings.TrimSpace(in.Objetivo)
	return in
}

func validate(in golearapi.NewPeneira) fieldErrors {
	errs := fieldErrors{}
	if in.Titulo == "" {
		errs["titulo"] = "web.form.error_required"
	}
	if in.Descricao == "" {
		errs["descricao"] = "web.form.error_required"
	}
	if in.Local == "" {
		errs["local"] = "web.form.error_required"
	}
	if in.DataEvento == "" {
		errs["data_evento"] = "web.form.error_required"
	} else if _, err := time.Parse(dateLayout, in.DataEvento); err != nil {
		errs["data_evento"] = "web.form.error_date"
	}
	return errs
}

// requireUserID guards operations that need an authenticated user.
func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	return nil
}
