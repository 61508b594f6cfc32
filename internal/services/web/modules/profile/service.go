package profile

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/profile/stats"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/profileview"
)

// maxPictureBytes bounds avatar uploads.
const maxPictureBytes = 5 << 20

// ProfileGateway abstracts the own-profile endpoints behind domain types.
type ProfileGateway interface {
	GetProfile(ctx context.Context) (golearapi.Profile, error)
	UpdateProfile(ctx context.Context, in golearapi.ProfileUpdate) error
	UploadProfilePicture(ctx context.Context, picture golearapi.Upload) error
	Followers(ctx context.Context, userID int64) (golearapi.Connections, error)
	Following(ctx context.Context, userID int64) (golearapi.Connections, error)
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
	gateway ProfileGateway
}

func newService(gateway ProfileGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) load(ctx context.Context, userID string) (golearapi.Profile, error) {
	if err := requireUserID(userID); err != nil {
		return golearapi.Profile{}, err
	}
	return s.gateway.GetProfile(ctx)
}

// counts loads the connection totals. They are decoration: failures other
// than an expired token leave the totals at zero.
func (s service) counts(ctx context.Context, profileID int64) (profileview.Counts, error) {
	var counts profileview.Counts
	if profileID <= 0 {
		return counts, nil
	}
	followers, err := s.gateway.Followers(ctx, profileID)
	if golearapi.IsUnauthorized(err) {
		return counts, err
	}
	if err == nil {
		counts.Followers = followers.Total
	}
	following, err := s.gateway.Following(ctx, profileID)
	if golearapi.IsUnauthorized(err) {
		return counts, err
	}
	if err == nil {
		counts.Following = following.Total
	}
	return counts, nil
}

// save validates the edit form and replaces the editable profile fields.
func (s service) save(ctx context.Context, userID string, role golearapi.Role, form url.Values) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	update, errs := updateFromForm(role, form)
	if len(errs) > 0 {
		return errs
	}
	return s.gateway.UpdateProfile(ctx, update)
}

func (s service) uploadPicture(ctx context.Context, userID string, picture golearapi.Upload) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(picture.ContentType)), "image/") {
		return fieldErrors{"picture": "web.profile.error_picture_type"}
	}
	return s.gateway.UploadProfilePicture(ctx, picture)
}

// updateFromForm builds the update payload from the fields that apply to
// role. Player attributes go through the allocator so a tampered form cannot
// break the caps.
func updateFromForm(role golearapi.Role, form url.Values) (golearapi.ProfileUpdate, fieldErrors) {
	errs := fieldErrors{}
	var update golearapi.ProfileUpdate
	value := func(name string) string { return strings.TrimSpace(form.Get(name)) }

	update.Nome = value("nome")
	if update.Nome == "" {
		errs["nome"] = "web.form.error_required"
	}
	update.Bio = value("bio")
	update.Cidade = value("cidade")
	update.Regiao = value("regiao")
	update.Whatsapp = value("whatsapp")
	update.Instagram = value("instagram")
	update.Twitter = value("twitter")

	switch role {
	case golearapi.RoleJogador:
		update.PosicaoPrincipal = value("posicaoPrincipal")
		update.PosicaoSecundaria = value("posicaoSecundaria")
		update.DominantFoot = value("dominantFoot")
		update.Modalidade = value("modalidade")
		update.EstiloJogo = value("estiloJogo")
		update.Referencia = value("referencia")
		update.Altura = parsePositiveFloat(value("altura"), "altura", errs)
		update.Peso = parsePositiveFloat(value("peso"), "peso", errs)
		update.Idade = parseAge(value("idade"), errs)
		update.Estatisticas = []int(allocate(form["current"], form["estatisticas"]))
	case golearapi.RoleClube:
		update.CategoriaClube = value("categoriaClube")
		update.Divisao = value("divisao")
		update.Titulos = value("titulos")
		update.HistoricoClubes = value("historicoClubes")
	case golearapi.RoleOlheiro:
		update.ClubeOlheiro = value("clubeOlheiro")
		update.NivelAtuacaoOlheiro = value("nivelAtuacaoOlheiro")
		update.Especializacao = value("especializacao")
		fillProfessional(&update, value)
	case golearapi.RoleProfissional:
		fillProfessional(&update, value)
	case golearapi.RoleFa:
		update.TimeCoracao = value("timeCoracao")
		update.JogadorFavorito = value("jogadorFavorito")
	}
	return update, errs
}

func fillProfessional(update *golearapi.ProfileUpdate, value func(string) string) {
	update.AreaAtuacao = value("areaAtuacao")
	update.Experiencia = value("experiencia")
	for _, part := range strings.Split(value("tipoAtuacao"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			update.TipoAtuacao = append(update.TipoAtuacao, part)
		}
	}
}

// allocate applies a full set of proposed scores on top of current. A valid
// proposal is kept as submitted. When the submitted current vector is itself
// out of bounds the walk restarts from zero.
func allocate(current, proposed []string) stats.Vector {
	from := parseVector(current)
	next := parseVector(proposed)
	out := stats.Default.ApplyAll(from, next)
	if !stats.Default.Valid(out) {
		out = stats.Default.ApplyAll(stats.New(), next)
	}
	return out
}

// applyStat applies one interactive change. An unparsable index or value
// leaves the vector as submitted.
func applyStat(current, proposed []string, rawIndex string) stats.Vector {
	from := parseVector(current)
	index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil || index < 0 || index >= len(proposed) {
		return from
	}
	attempted, err := strconv.Atoi(strings.TrimSpace(proposed[index]))
	if err != nil {
		return from
	}
	return stats.ApplyChange(from, index, attempted)
}

func parseVector(values []string) stats.Vector {
	out := stats.New()
	for i := 0; i < len(out) && i < len(values); i++ {
		if n, err := strconv.Atoi(strings.TrimSpace(values[i])); err == nil {
			out[i] = n
		}
	}
	return out
}

func parsePositiveFloat(raw, name string, errs fieldErrors) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || v <= 0 {
		errs[name] = "web.form.error_number"
		return nil
	}
	return &v
}

func parseAge(raw string, errs fieldErrors) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > 120 {
		errs["idade"] = "web.form.error_number"
		return nil
	}
	return &v
}

// requireUserID guards profile operations that need an authenticated user.
func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	return nil
}
