// Package profileview maps remote profiles to the shared profile templates.
//
// Own and foreign profile pages render the same facts; the per-role field
// table here drives both the read-only facts and the edit form.
package profileview

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/profile/stats"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

// Field describes one editable profile attribute.
type Field struct {
	// Name is the form field and catalog suffix.
	Name string
	// Type is the input type; empty means text.
	Type string
	// Roles limits the field to some account kinds; nil means every role.
	Roles []golearapi.Role
	// Fact marks fields shown on the read-only profile.
	Fact bool
	get  func(golearapi.Profile) string
}

// AppliesTo reports whether the field belongs on a profile of role.
func (f Field) AppliesTo(role golearapi.Role) bool {
	if len(f.Roles) == 0 {
		return true
	}
	for _, candidate := range f.Roles {
		if candidate == role {
			return true
		}
	}
	return false
}

// Value reads the field from p.
func (f Field) Value(p golearapi.Profile) string {
	if f.get == nil {
		return ""
	}
	return f.get(p)
}

var (
	jogador      = []golearapi.Role{golearapi.RoleJogador}
	clube        = []golearapi.Role{golearapi.RoleClube}
	olheiro      = []golearapi.Role{golearapi.RoleOlheiro}
	fa           = []golearapi.Role{golearapi.RoleFa}
	profissional = []golearapi.Role{golearapi.RoleOlheiro, golearapi.RoleProfissional}
)

// Fields lists every profile attribute in form order.
var Fields = []Field{
	{Name: "nome", get: func(p golearapi.Profile) string { return p.Nome }},
	{Name: "bio", Type: "textarea", get: func(p golearapi.Profile) string { return p.Bio }},
	{Name: "cidade", get: func(p golearapi.Profile) string { return p.Cidade }},
	{Name: "regiao", get: func(p golearapi.Profile) string { return p.Regiao }},
	{Name: "whatsapp", Type: "tel", get: func(p golearapi.Profile) string { return p.Whatsapp }},
	{Name: "instagram", get: func(p golearapi.Profile) string { return p.Instagram }},
	{Name: "twitter", get: func(p golearapi.Profile) string { return p.Twitter }},

	{Name: "posicaoPrincipal", Roles: jogador, Fact: true, get: golearapi.Profile.MainPosition},
	{Name: "posicaoSecundaria", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return p.PosicaoSecundaria }},
	{Name: "dominantFoot", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return p.DominantFoot }},
	{Name: "altura", Type: "number", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return formatFloat(p.Altura) }},
	{Name: "peso", Type: "number", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return formatFloat(p.Peso) }},
	{Name: "idade", Type: "number", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return formatInt(p.Idade) }},
	{Name: "modalidade", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return p.Modalidade }},
	{Name: "estiloJogo", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return p.EstiloJogo }},
	{Name: "referencia", Roles: jogador, Fact: true, get: func(p golearapi.Profile) string { return p.Referencia }},

	{Name: "categoriaClube", Roles: clube, Fact: true, get: func(p golearapi.Profile) string { return p.CategoriaClube }},
	{Name: "divisao", Roles: clube, Fact: true, get: func(p golearapi.Profile) string { return p.Divisao }},
	{Name: "titulos", Roles: clube, Fact: true, get: func(p golearapi.Profile) string { return p.Titulos }},
	{Name: "historicoClubes", Type: "textarea", Roles: clube, Fact: true, get: func(p golearapi.Profile) string { return p.HistoricoClubes }},

	{Name: "clubeOlheiro", Roles: olheiro, Fact: true, get: func(p golearapi.Profile) string { return p.ClubeOlheiro }},
	{Name: "nivelAtuacaoOlheiro", Roles: olheiro, Fact: true, get: func(p golearapi.Profile) string { return p.NivelAtuacaoOlheiro }},
	{Name: "especializacao", Roles: olheiro, Fact: true, get: func(p golearapi.Profile) string { return p.Especializacao }},
	{Name: "areaAtuacao", Roles: profissional, Fact: true, get: func(p golearapi.Profile) string { return p.AreaAtuacao }},
	{Name: "tipoAtuacao", Roles: profissional, Fact: true, get: func(p golearapi.Profile) string { return strings.Join(p.TipoAtuacao, ", ") }},
	{Name: "experiencia", Type: "textarea", Roles: profissional, Fact: true, get: func(p golearapi.Profile) string { return p.Experiencia }},

	{Name: "timeCoracao", Roles: fa, Fact: true, get: func(p golearapi.Profile) string { return p.TimeCoracao }},
	{Name: "jogadorFavorito", Roles: fa, Fact: true, get: func(p golearapi.Profile) string { return p.JogadorFavorito }},
}

// Counts holds the connection totals shown in the profile header.
type Counts struct {
	Followers int
	Following int
}

// Build maps p to the profile template. own selects the edit action; the
// caller sets Connection for foreign profiles.
func Build(p golearapi.Profile, counts Counts, own bool, loc webtemplates.Localizer) webtemplates.ProfileView {
	view := webtemplates.ProfileView{
		UserID:    p.ID,
		Name:      p.DisplayName(),
		Email:     p.Email,
		Role:      RoleLabel(p.Role, loc),
		Bio:       p.Bio,
		Avatar:    p.Avatar(),
		Banner:    p.Banner,
		Location:  Location(p),
		Facts:     Facts(p, loc),
		Links:     Links(p, loc),
		Followers: counts.Followers,
		Following: counts.Following,
		Own:       own,
	}
	if own {
		view.EditURL = routepath.AppProfileEdit
	}
	if p.Role == golearapi.RoleJogador {
		view.ShowStats = true
		view.Stats = Stats(stats.Normalize(p.Estatisticas), false, loc)
	}
	return view
}

// Facts lists the non-empty role attributes of p.
func Facts(p golearapi.Profile, loc webtemplates.Localizer) []webtemplates.ProfileFact {
	var facts []webtemplates.ProfileFact
	for _, f := range Fields {
		if !f.Fact || !f.AppliesTo(p.Role) {
			continue
		}
		value := strings.TrimSpace(f.Value(p))
		if value == "" {
			continue
		}
		facts = append(facts, webtemplates.ProfileFact{Label: FieldLabel(f.Name, loc), Value: value})
	}
	return facts
}

// Links turns contact handles into outbound links.
func Links(p golearapi.Profile, loc webtemplates.Localizer) []webtemplates.ProfileLink {
	var links []webtemplates.ProfileLink
	if digits := onlyDigits(p.Whatsapp); digits != "" {
		links = append(links, webtemplates.ProfileLink{Label: FieldLabel("whatsapp", loc), URL: "https://wa.me/" + digits})
	}
	if handle := handle(p.Instagram); handle != "" {
		links = append(links, webtemplates.ProfileLink{Label: "@" + handle, URL: "https://instagram.com/" + url.PathEscape(handle)})
	}
	if handle := handle(p.Twitter); handle != "" {
		links = append(links, webtemplates.ProfileLink{Label: "@" + handle, URL: "https://x.com/" + url.PathEscape(handle)})
	}
	return links
}

// Location joins city and region, falling back to the free-form location.
func Location(p golearapi.Profile) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{p.Cidade, p.Regiao} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(p.Localizacao)
	}
	return strings.Join(parts, ", ")
}

// Stats maps a vector to the attribute panel.
func Stats(v stats.Vector, editable bool, loc webtemplates.Localizer) webtemplates.StatsView {
	view := webtemplates.StatsView{
		Rows:      make([]webtemplates.StatRow, 0, stats.Count),
		Total:     stats.Sum(v),
		Cap:       stats.Default.TotalCap,
		Max:       stats.Default.PerAttributeMax,
		Remaining: max(0, stats.Default.Remaining(v)),
		Editable:  editable,
	}
	if editable {
		view.PostURL = routepath.AppProfileStats
	}
	for _, attr := range stats.Attributes {
		value := 0
		if int(attr) < len(v) {
			value = v[attr]
		}
		view.Rows = append(view.Rows, webtemplates.StatRow{
			Index: int(attr),
			Key:   attr.Key(),
			Label: StatLabel(attr, loc),
			Value: value,
		})
	}
	return view
}

// StatLabel localizes an attribute name, falling back to its Portuguese label.
func StatLabel(attr stats.Attribute, loc webtemplates.Localizer) string {
	key := "web.stats." + attr.Key()
	if label := webtemplates.T(loc, key); label != "" && label != key {
		return label
	}
	return attr.Label()
}

// FieldLabel localizes a profile field name.
func FieldLabel(name string, loc webtemplates.Localizer) string {
	return webtemplates.T(loc, "web.profile.field_"+name)
}

// RoleLabel localizes a role.
func RoleLabel(role golearapi.Role, loc webtemplates.Localizer) string {
	if role == "" {
		return ""
	}
	key := strings.ToLower(string(role))
	if role == golearapi.RoleFa {
		key = "fa"
	}
	return webtemplates.T(loc, "web.role."+key)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func handle(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, prefix := range []string{"https://", "http://", "www.", "instagram.com/", "twitter.com/", "x.com/"} {
		raw = strings.TrimPrefix(raw, prefix)
	}
	return strings.Trim(strings.TrimPrefix(raw, "@"), "/ ")
}
