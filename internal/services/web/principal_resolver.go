package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/golearapi"
	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	"github.com/golear/golear/internal/services/web/platform/sessioncookie"
	"github.com/golear/golear/internal/services/web/routepath"
	"github.com/golear/golear/internal/services/web/session"
	"github.com/golear/golear/internal/services/web/storage"
)

// SessionResolver is the narrow session surface needed by request principal
// resolution.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (storage.Session, error)
	End(ctx context.Context, id string) error
}

// Readiness reports whether the remote API has answered its health probe.
type Readiness interface {
	Ready() bool
}

type requestPrincipalState struct {
	sessionOnce  sync.Once
	session      storage.Session
	viewerOnce   sync.Once
	viewer       module.Viewer
	languageOnce sync.Once
	language     string
}

type requestPrincipalStateKey struct{}

// principalResolver turns the session cookie into the viewer, user ID, token
// and language seen by modules. Lookups are cached per request.
type principalResolver struct {
	sessions SessionResolver
	backend  Readiness
	policy   requestmeta.SchemePolicy
	logger   *slog.Logger
}

func newPrincipalResolver(cfg Config) principalResolver {
	r := principalResolver{
		backend: cfg.Backend,
		policy:  cfg.RequestSchemePolicy,
		logger:  logging.OrDiscard(cfg.Logger),
	}
	if cfg.Sessions != nil {
		r.sessions = cfg.Sessions
	}
	return r
}

func (r principalResolver) resolveSessionUncached(request *http.Request) storage.Session {
	if request == nil || r.sessions == nil {
		return storage.Session{}
	}
	sessionID, ok := sessioncookie.Read(request)
	if !ok {
		return storage.Session{}
	}
	resolved, err := r.sessions.Resolve(request.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			r.logger.WarnContext(request.Context(), "resolve session", "error", err)
		}
		return storage.Session{}
	}
	if strings.TrimSpace(resolved.UserID) == "" {
		return storage.Session{}
	}
	return resolved
}

func (r principalResolver) resolveSession(request *http.Request) storage.Session {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.sessionOnce.Do(func() {
			state.session = r.resolveSessionUncached(request)
		})
		return state.session
	}
	return r.resolveSessionUncached(request)
}

func (r principalResolver) resolveRequestUserID(request *http.Request) string {
	return strings.TrimSpace(r.resolveSession(request).UserID)
}

func (r principalResolver) resolveRequestSignedIn(request *http.Request) bool {
	return r.resolveRequestUserID(request) != ""
}

func (r principalResolver) resolveRequestToken(request *http.Request) string {
	return r.resolveSession(request).Token
}

func (r principalResolver) backendWaking() bool {
	return r.backend != nil && !r.backend.Ready()
}

func (r principalResolver) resolveViewerUncached(request *http.Request) module.Viewer {
	current := r.resolveSession(request)
	viewer := module.Viewer{BackendWaking: r.backendWaking()}
	if current.UserID == "" {
		return viewer
	}
	viewer.UserID = current.UserID
	viewer.DisplayName = strings.TrimSpace(current.Name)
	if viewer.DisplayName == "" {
		viewer.DisplayName = "Golear"
	}
	viewer.AvatarURL = golearapi.DefaultAvatarURL
	viewer.ProfileURL = routepath.AppProfile
	viewer.Role = golearapi.Role(current.Role)
	return viewer
}

func (r principalResolver) resolveViewer(request *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = r.resolveViewerUncached(request)
		})
		return state.viewer
	}
	return r.resolveViewerUncached(request)
}

func (r principalResolver) resolveRequestLanguage(request *http.Request) string {
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.languageOnce.Do(func() {
			state.language = webi18n.ResolveLanguage(request)
		})
		return state.language
	}
	return webi18n.ResolveLanguage(request)
}

// endSession drops the stored session and clears the browser cookie.
func (r principalResolver) endSession(w http.ResponseWriter, request *http.Request) {
	if request == nil {
		return
	}
	if sessionID, ok := sessioncookie.Read(request); ok && r.sessions != nil {
		if err := r.sessions.End(request.Context(), sessionID); err != nil {
			r.logger.WarnContext(request.Context(), "end session", "error", err)
		}
	}
	if state := requestPrincipalStateFromRequest(request); state != nil {
		state.sessionOnce.Do(func() {})
		state.session = storage.Session{}
	}
	sessioncookie.ClearWithPolicy(w, request, r.policy)
}

func (r principalResolver) authRequired() func(*http.Request) bool {
	return r.resolveRequestSignedIn
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	return requestPrincipalStateFromContext(r.Context())
}

func requestPrincipalStateFromContext(ctx context.Context) *requestPrincipalState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
