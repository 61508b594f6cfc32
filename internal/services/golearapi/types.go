package golearapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultAvatarURL is shown for users without a profile picture.
const DefaultAvatarURL = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"

// Role is the kind of account a user holds.
type Role string

const (
	RoleJogador      Role = "Jogador"
	RoleClube        Role = "Clube"
	RoleOlheiro      Role = "Olheiro"
	RoleFa           Role = "Fã"
	RoleProfissional Role = "Profissional"
)

// Roles lists every role in registration order.
var Roles = []Role{RoleJogador, RoleClube, RoleOlheiro, RoleFa, RoleProfissional}

// ParseRole matches raw against the known roles.
func ParseRole(raw string) (Role, bool) {
	raw = strings.TrimSpace(raw)
	for _, role := range Roles {
		if strings.EqualFold(raw, string(role)) {
			return role, true
		}
	}
	return "", false
}

// StringList decodes either a JSON array of strings or a string holding one
// (the backend stores tipoAtuacao as serialized JSON) or a comma list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			*s = list
			return nil
		}
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*s = out
	return nil
}

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// OK reports whether the backend declared itself healthy.
func (h HealthStatus) OK() bool { return h.Status == "ok" }

// User is the account record returned by auth and profile endpoints.
type User struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Role              Role   `json:"role"`
	CreatedAt         string `json:"createdAt,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Bio               string `json:"bio,omitempty"`
}

// Profile is the merged user and profile view. Fields are a union across
// roles; only the ones relevant to Role are populated.
type Profile struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"UserId,omitempty"`
	Email             string `json:"email"`
	Role              Role   `json:"role"`
	Nome              string `json:"nome"`
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Banner            string `json:"banner,omitempty"`
	Estatisticas      []*int `json:"estatisticas,omitempty"`

	Whatsapp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`

	Posicao           string   `json:"posicao,omitempty"`
	PosicaoPrincipal  string   `json:"posicaoPrincipal,omitempty"`
	PosicaoSecundaria string   `json:"posicaoSecundaria,omitempty"`
	DominantFoot      string   `json:"dominantFoot,omitempty"`
	Altura            *float64 `json:"altura,omitempty"`
	Peso              *float64 `json:"peso,omitempty"`
	Idade             *int     `json:"idade,omitempty"`
	EstiloJogo        string   `json:"estiloJogo,omitempty"`
	Referencia        string   `json:"referencia,omitempty"`
	Modalidade        string   `json:"modalidade,omitempty"`

	HistoricoClubes      string `json:"historicoClubes,omitempty"`
	CategoriaClube       string `json:"categoriaClube,omitempty"`
	Divisao              string `json:"divisao,omitempty"`
	CompeticoesParticipa string `json:"competicoesParticipa,omitempty"`
	Titulos              string `json:"titulos,omitempty"`
	PosicaoProcurada     string `json:"posicaoProcurada,omitempty"`

	AreaAtuacao         string     `json:"areaAtuacao,omitempty"`
	TipoAtuacao         StringList `json:"tipoAtuacao,omitempty"`
	Experiencia         string     `json:"experiencia,omitempty"`
	ClubeOlheiro        string     `json:"clubeOlheiro,omitempty"`
	NivelAtuacaoOlheiro string     `json:"nivelAtuacaoOlheiro,omitempty"`
	Especializacao      string     `json:"especializacao,omitempty"`

	TimeCoracao     string `json:"time_coracao,omitempty"`
	JogadorFavorito string `json:"jogador_favorito,omitempty"`

	Cidade      string `json:"cidade,omitempty"`
	Regiao      string `json:"regiao,omitempty"`
	Localizacao string `json:"localizacao,omitempty"`
}

// Avatar returns the picture URL or the default avatar.
func (p Profile) Avatar() string {
	if strings.TrimSpace(p.ProfilePictureURL) == "" {
		return DefaultAvatarURL
	}
	return p.ProfilePictureURL
}

// DisplayName falls back to the e-mail when the profile has no name.
func (p Profile) DisplayName() string {
	if name := strings.TrimSpace(p.Nome); name != "" {
		return name
	}
	return p.Email
}

// MainPosition prefers posicaoPrincipal over the legacy posicao alias.
func (p Profile) MainPosition() string {
	if p.PosicaoPrincipal != "" {
		return p.PosicaoPrincipal
	}
	return p.Posicao
}

// ProfileUpdate is the PUT /profile/api payload. Empty fields are omitted so
// the backend keeps their current values.
type ProfileUpdate struct {
	Nome                string     `json:"nome,omitempty"`
	Bio                 string     `json:"bio,omitempty"`
	Cidade              string     `json:"cidade,omitempty"`
	Regiao              string     `json:"regiao,omitempty"`
	Whatsapp            string     `json:"whatsapp,omitempty"`
	Instagram           string     `json:"instagram,omitempty"`
	Twitter             string     `json:"twitter,omitempty"`
	PosicaoPrincipal    string     `json:"posicaoPrincipal,omitempty"`
	PosicaoSecundaria   string     `json:"posicaoSecundaria,omitempty"`
	DominantFoot        string     `json:"dominantFoot,omitempty"`
	Altura              *float64   `json:"altura,omitempty"`
	Peso                *float64   `json:"peso,omitempty"`
	Idade               *int       `json:"idade,omitempty"`
	Modalidade          string     `json:"modalidade,omitempty"`
	EstiloJogo          string     `json:"estiloJogo,omitempty"`
	Referencia          string     `json:"referencia,omitempty"`
	HistoricoClubes     string     `json:"historicoClubes,omitempty"`
	CategoriaClube      string     `json:"categoriaClube,omitempty"`
	Divisao             string     `json:"divisao,omitempty"`
	Titulos             string     `json:"titulos,omitempty"`
	AreaAtuacao         string     `json:"areaAtuacao,omitempty"`
	TipoAtuacao         StringList `json:"tipoAtuacao,omitempty"`
	Experiencia         string     `json:"experiencia,omitempty"`
	ClubeOlheiro        string     `json:"clubeOlheiro,omitempty"`
	NivelAtuacaoOlheiro string     `json:"nivelAtuacaoOlheiro,omitempty"`
	Especializacao      string     `json:"especializacao,omitempty"`
	TimeCoracao         string     `json:"time_coracao,omitempty"`
	JogadorFavorito     string     `json:"jogador_favorito,omitempty"`
	Estatisticas        []int      `json:"estatisticas,omitempty"`
}

// PostAuthor is the embedded author of a feed post.
type PostAuthor struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              Role   `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// Post is one feed entry.
type Post struct {
	ID                 int64       `json:"id"`
	Titulo             string      `json:"titulo"`
	Conteudo           string      `json:"conteudo"`
	UsuarioID          int64       `json:"usuarioId"`
	CreatedAt          string      `json:"createdAt"`
	ImageURL           string      `json:"imageUrl,omitempty"`
	MediaType          string      `json:"mediaType,omitempty"`
	LikedByCurrentUser bool        `json:"likedByCurrentUser,omitempty"`
	Likes              int         `json:"likes,omitempty"`
	Author             *PostAuthor `json:"author,omitempty"`
	Count              *struct {
		Comentarios int `json:"comentarios"`
	} `json:"_count,omitempty"`
}

// CommentCount returns the _count.comentarios value, zero when absent.
func (p Post) CommentCount() int {
	if p.Count == nil {
		return 0
	}
	return p.Count.Comentarios
}

// NewPost is the input of CreatePost.
type NewPost struct {
	Titulo   string
	Conteudo string
	Image    *Upload
}

// CommentAuthor is the embedded author of a comment.
type CommentAuthor struct {
	ID                int64  `json:"id"`
	Nome              string `json:"nome"`
	Role              Role   `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// Comment is one reply under a post.
type Comment struct {
	ID        int64         `json:"id"`
	Texto     string        `json:"texto"`
	CreatedAt string        `json:"createdAt"`
	Autor     CommentAuthor `json:"autor"`
}

// Peneira is a tryout listing.
type Peneira struct {
	ID         int64  `json:"id"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Local      string `json:"local"`
	DataEvento string `json:"data_evento"`
	CreatedAt  string `json:"createdAt,omitempty"`
	Estado     string `json:"estado,omitempty"`
	Idade      string `json:"idade,omitempty"`
	Posicao    string `json:"posicao,omitempty"`
	Detalhes   string `json:"detalhes,omitempty"`
	Objetivo   string `json:"objetivo,omitempty"`
}

// NewPeneira is the input of CreatePeneira.
type NewPeneira struct {
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Local      string `json:"local"`
	DataEvento string `json:"data_evento"`
	Estado     string `json:"estado,omitempty"`
	Idade      string `json:"idade,omitempty"`
	Posicao    string `json:"posicao,omitempty"`
	Detalhes   string `json:"detalhes,omitempty"`
	Objetivo   string `json:"objetivo,omitempty"`
}

// Competicao is a competition organised by a club.
type Competicao struct {
	ID         int64  `json:"id,omitempty"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
	ClubeID    int64  `json:"clubeId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Connection is one entry of a followers or following list.
type Connection struct {
	ID                int64  `json:"id"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Profile           struct {
		Nome string `json:"nome"`
	} `json:"profile"`
}

// Avatar returns the picture URL or the default avatar.
func (c Connection) Avatar() string {
	if strings.TrimSpace(c.ProfilePictureURL) == "" {
		return DefaultAvatarURL
	}
	return c.ProfilePictureURL
}

// Connections is a page of followers or followed users.
type Connections struct {
	Users []Connection
	Total int
}

// Recommendation is a suggested user to follow.
type Recommendation struct {
	ID                int64
	Email             string
	Role              Role
	ProfilePictureURL string
	Nome              string
	Posicao           string
	Cidade            string
	Regiao            string
}

// LoginResult carries the issued token and the signed-in user.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// RegisterInput is the POST /auth/register/api payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Nome     string `json:"nome,omitempty"`
	Posicao  string `json:"posicao,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Regiao   string `json:"regiao,omitempty"`
}
