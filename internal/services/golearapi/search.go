package golearapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// SearchFilters narrows SearchUsers. Empty fields are not sent.
type SearchFilters struct {
	Nome                string
	Role                string
	Posicao             string
	Modalidade          string
	Altura              string
	Peso                string
	DominantFoot        string
	PosicaoSecundaria   string
	Regiao              string
	Especializacao      string
	ClubeOlheiro        string
	NivelAtuacaoOlheiro string
	Cidade              string
}

func (f SearchFilters) pairs() [][2]string {
	return [][2]string{
		{"nome", f.Nome},
		{"role", f.Role},
		{"posicao", f.Posicao},
		{"modalidade", f.Modalidade},
		{"altura", f.Altura},
		{"peso", f.Peso},
		{"dominantFoot", f.DominantFoot},
		{"posicaoSecundaria", f.PosicaoSecundaria},
		{"regiao", f.Regiao},
		{"especializacao", f.Especializacao},
		{"clubeOlheiro", f.ClubeOlheiro},
		{"nivelAtuacaoOlheiro", f.NivelAtuacaoOlheiro},
		{"cidade", f.Cidade},
	}
}

// FilterKeys lists the query keys SearchFilters understands, in form order.
func FilterKeys() []string {
	pairs := SearchFilters{}.pairs()
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p[0]
	}
	return keys
}

// SearchFiltersFromValues reads filters from a query string or form.
func SearchFiltersFromValues(v url.Values) SearchFilters {
	get := func(key string) string { return strings.TrimSpace(v.Get(key)) }
	return SearchFilters{
		Nome:                get("nome"),
		Role:                get("role"),
		Posicao:             get("posicao"),
		Modalidade:          get("modalidade"),
		Altura:              get("altura"),
		Peso:                get("peso"),
		DominantFoot:        get("dominantFoot"),
		PosicaoSecundaria:   get("posicaoSecundaria"),
		Regiao:              get("regiao"),
		Especializacao:      get("especializacao"),
		ClubeOlheiro:        get("clubeOlheiro"),
		NivelAtuacaoOlheiro: get("nivelAtuacaoOlheiro"),
		Cidade:              get("cidade"),
	}
}

// Values returns the non-empty filters as query parameters.
func (f SearchFilters) Values() url.Values {
	out := url.Values{}
	for _, p := range f.pairs() {
		if value := strings.TrimSpace(p[1]); value != "" {
			out.Set(p[0], value)
		}
	}
	return out
}

// Empty reports whether no filter is set.
func (f SearchFilters) Empty() bool {
	return len(f.Values()) == 0
}

// SearchUsers finds profiles matching filters. Profiles without a picture get
// DefaultAvatarURL.
func (c *Client) SearchUsers(ctx context.Context, filters SearchFilters) ([]Profile, error) {
	var out struct {
		Data []Profile `json:"data"`
	}
	err := c.do(ctx, call{
		op:     "SearchUsers",
		method: http.MethodGet,
		path:   "/api/players/search",
		query:  filters.Values(),
		auth:   true,
	}, &out)
	if err != nil {
		return nil, err
	}
	for i := range out.Data {
		if strings.TrimSpace(out.Data[i].ProfilePictureURL) == "" {
			out.Data[i].ProfilePictureURL = DefaultAvatarURL
		}
	}
	return out.Data, nil
}

type rawRecommendation struct {
	ID               int64  `json:"id"`
	Nome             string `json:"nome"`
	Tipo             Role   `json:"tipo"`
	Cidade           string `json:"cidade"`
	Regiao           string `json:"regiao"`
	PosicaoPrincipal string `json:"posicao_principal"`
	Posicao          string `json:"posicao"`
	URLFoto          string `json:"url_foto"`
	Email            string `json:"email"`
}

// Recommendations returns users the backend suggests following.
func (c *Client) Recommendations(ctx context.Context) ([]Recommendation, error) {
	var out struct {
		Data []rawRecommendation `json:"data"`
	}
	if err := c.do(ctx, call{op: "Recommendations", method: http.MethodGet, path: "/api/recomendacoes/api", auth: true}, &out); err != nil {
		return nil, err
	}
	recs := make([]Recommendation, 0, len(out.Data))
	for _, raw := range out.Data {
		recs = append(recs, raw.recommendation())
	}
	return recs, nil
}

func (r rawRecommendation) recommendation() Recommendation {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		email = strings.Join(strings.Fields(strings.ToLower(r.Nome)), "") + "@golear.com"
	}
	picture := strings.TrimSpace(r.URLFoto)
	if picture == "" {
		picture = DefaultAvatarURL
	}
	position := r.PosicaoPrincipal
	if position == "" {
		position = r.Posicao
	}
	return Recommendation{
		ID:                r.ID,
		Email:             email,
		Role:              r.Tipo,
		ProfilePictureURL: picture,
		Nome:              r.Nome,
		Posicao:           position,
		Cidade:            r.Cidade,
		Regiao:            r.Regiao,
	}
}
