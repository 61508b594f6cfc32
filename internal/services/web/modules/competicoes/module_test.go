package competicoes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golear/golear/internal/services/golearapi"
	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/routepath"
)

type fakeGateway struct {
	items     []golearapi.Competicao
	listErr   error
	createErr error
	created   *golearapi.Competicao
}

func (f fakeGateway) ListCompeticoes(context.Context) ([]golearapi.Competicao, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]golearapi.Competicao(nil), f.items...), nil
}

func (f fakeGateway) CreateCompeticao(_ context.Context, in golearapi.Competicao) (golearapi.Competicao, error) {
	if f.created != nil {
		*f.created = in
	}
	if f.createErr != nil {
		return golearapi.Competicao{}, f.createErr
	}
	in.ID = 4
	return in, nil
}

func testBase(role golearapi.Role) modulehandler.Base {
	viewer := module.Viewer{UserID: "3", DisplayName: "EC Várzea", Role: role}
	return modulehandler.NewBase(module.Dependencies{
		ResolveViewer:   func(*http.Request) module.Viewer { return viewer },
		ResolveUserID:   func(*http.Request) string { return viewer.UserID },
		ResolveLanguage: func(*http.Request) string { return "en-US" },
		ResolveSignedIn: func(*http.Request) bool { return true },
		ResolveToken:    func(*http.Request) string { return "token-1" },
	})
}

func mountCompeticoes(t *testing.T, gateway CompeticaoGateway, role golearapi.Role) http.Handler {
	t.Helper()
	mount, err := NewWithGateway(gateway, testBase(role)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.CompeticoesPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.CompeticoesPrefix)
	}
	return mount.Handler
}

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.AppCompeticoesCreate, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestModuleIdentity(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "competicoes" {
		t.Fatalf("ID() = %q", got)
	}
	if New().Healthy() || NewWithGateway(NewAPIGateway(nil), testBase(golearapi.RoleClube)).Healthy() {
		t.Fatalf("module without client should be unhealthy")
	}
	if !NewWithGateway(fakeGateway{}, testBase(golearapi.RoleClube)).Healthy() {
		t.Fatalf("configured module should be healthy")
	}
}

func TestIndexListsByStartDate(t *testing.T) {
	t.Parallel()

	items := []golearapi.Competicao{
		{ID: 2, Nome: "Copa Inverno", DataInicio: "2026-07-01", DataFim: "2026-07-20"},
		{ID: 1, Nome: "Copa Verão", DataInicio: "2026-01-10", DataFim: "2026-02-01"},
	}
	h := mountCompeticoes(t, fakeGateway{items: items}, golearapi.RoleJogador)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.AppCompeticoes, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	first := strings.Index(body, `data-competicao-id="1"`)
	second := strings.Index(body, `data-competicao-id="2"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("competicoes not ordered by start date: %q", body)
	}
	if strings.Contains(body, `id="competicao-form"`) {
		t.Fatalf("players should not see the create form")
	}
}

func TestClubSeesCreateForm(t *testing.T) {
	t.Parallel()

	h := mountCompeticoes(t, fakeGateway{}, golearapi.RoleClube)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.CompeticoesPrefix, nil))
	if !strings.Contains(rr.Body.String(), `id="competicao-form"`) {
		t.Fatalf("club should see the create form")
	}
}

func TestCreateCompeticao(t *testing.T) {
	t.Parallel()

	valid := url.Values{
		"nome":        {" Copa Primavera "},
		"descricao":   {"Sub-13 e Sub-15"},
		"data_inicio": {"2026-09-01"},
		"data_fim":    {"2026-09-30"},
	}
	reversed := url.Values{
		"nome":        {"Copa"},
		"descricao":   {"Sub-13"},
		"data_inicio": {"2026-09-30"},
		"data_fim":    {"2026-09-01"},
	}
	tests := []struct {
		name        string
		role        golearapi.Role
		form        url.Values
		wantStatus  int
		wantCreated string
		wantInvalid string
	}{
		{name: "club creates", role: golearapi.RoleClube, form: valid, wantStatus: http.StatusFound, wantCreated: "Copa Primavera"},
		{name: "scout forbidden", role: golearapi.RoleOlheiro, form: valid, wantStatus: http.StatusForbidden},
		{name: "end before start", role: golearapi.RoleClube, form: reversed, wantStatus: http.StatusUnprocessableEntity, wantInvalid: "data_fim"},
		{name: "missing fields", role: golearapi.RoleClube, form: url.Values{}, wantStatus: http.StatusUnprocessableEntity, wantInvalid: "nome"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var created golearapi.Competicao
			h := mountCompeticoes(t, fakeGateway{created: &created}, tc.role)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, postForm(tc.form))

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if created.Nome != tc.wantCreated {
				t.Fatalf("created nome = %q, want %q", created.Nome, tc.wantCreated)
			}
			if tc.wantInvalid != "" && !strings.Contains(rr.Body.String(), `field field-invalid"><label for="field-`+tc.wantInvalid+`"`) {
				t.Fatalf("body missing invalid marker for %s", tc.wantInvalid)
			}
		})
	}
}

func TestRoutesContract(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
	h := mountCompeticoes(t, fakeGateway{}, golearapi.RoleClube)
	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: routepath.AppCompeticoes, wantStatus: http.StatusOK},
		{method: http.MethodGet, path: routepath.AppCompeticoesCreate, wantStatus: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/app/competicoes/4", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.wantStatus)
		}
	}
}
