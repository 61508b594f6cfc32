package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	"github.com/golear/golear/internal/services/web/platform/sessioncookie"
	"github.com/golear/golear/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	AuthRequired        func(*http.Request) bool
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// router mounts modules on one mux and remembers which module owns each
// prefix.
type router struct {
	mux    *http.ServeMux
	owners map[string]string
}

// Compose builds a root HTTP handler from module groups. Public modules must
// stay outside /app/; protected modules must live under it and are wrapped
// with the sign-in check and the same-origin guard.
func Compose(input ComposeInput) (http.Handler, error) {
	signedIn := input.AuthRequired
	if signedIn == nil {
		signedIn = func(*http.Request) bool { return false }
	}
	r := router{mux: http.NewServeMux(), owners: map[string]string{}}

	for _, m := range input.PublicModules {
		if m == nil {
			return nil, errors.New("public module is nil")
		}
		if err := r.mountPublic(m); err != nil {
			return nil, err
		}
	}

	guard := protect(signedIn, input.RequestSchemePolicy)
	for _, m := range input.ProtectedModules {
		if m == nil {
			return nil, errors.New("protected module is nil")
		}
		if err := r.mountProtected(m, guard); err != nil {
			return nil, err
		}
	}
	return r.mux, nil
}

func (r router) mountPublic(m module.Module) error {
	mount, prefix, err := resolveMount(m)
	if err != nil {
		return err
	}
	if underApp(prefix) {
		return fmt.Errorf("module %q has protected prefix %q in public group", m.ID(), prefix)
	}
	return r.handle(m.ID(), prefix, mount.Handler)
}

func (r router) mountProtected(m module.Module, guard func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(m)
	if err != nil {
		return err
	}
	if !underApp(prefix) {
		return fmt.Errorf("module %q must mount under %s, got %q", m.ID(), routepath.AppPrefix, prefix)
	}
	handler := guard(mount.Handler)
	if err := r.handle(m.ID(), prefix, handler); err != nil {
		return err
	}
	// "/app/feed" must hit the guard instead of falling through to the
	// public "/" handler.
	if bare := strings.TrimSuffix(prefix, "/"); bare != "" && bare != prefix {
		return r.handle(m.ID(), bare, handler)
	}
	return nil
}

func (r router) handle(id, pattern string, h http.Handler) error {
	if owner, taken := r.owners[pattern]; taken {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, pattern, owner)
	}
	r.owners[pattern] = id
	r.mux.Handle(pattern, h)
	return nil
}

func underApp(prefix string) bool {
	return strings.HasPrefix(prefix, routepath.AppPrefix)
}

func resolveMount(m module.Module) (module.Mount, string, error) {
	mount, err := m.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", m.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", m.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", m.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return errors.New("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return errors.New("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(prefix, "/"):
		return errors.New("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return errors.New("prefix must end with /")
	}
	return nil
}

// protect wraps a protected handler: anonymous visitors go to the login page
// with a return path, and cookie-authenticated mutations need same-origin
// proof.
func protect(signedIn func(*http.Request) bool, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !signedIn(r) {
				httpx.WriteRedirect(w, r, routepath.LoginWithNext(returnPath(r)))
				return
			}
			if isMutation(r.Method) && hasSessionCookie(r) && !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// returnPath is empty for anything but reads.
func returnPath(r *http.Request) string {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return ""
	}
	return r.URL.RequestURI()
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
