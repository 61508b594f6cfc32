// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/golear/golear/internal/services/golearapi"
)

// Viewer contains user-facing chrome data for app pages.
type Viewer struct {
	UserID      string
	DisplayName string
	AvatarURL   string
	ProfileURL  string
	Role        golearapi.Role
	// BackendWaking is set while the remote API has not answered its health
	// probe yet; pages show a waking-up banner.
	BackendWaking bool
}

// SignedIn reports whether the viewer belongs to an authenticated session.
func (v Viewer) SignedIn() bool {
	return v.UserID != ""
}

// Is reports whether the viewer holds role.
func (v Viewer) Is(role golearapi.Role) bool {
	return v.Role == role
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in actor.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ResolveToken returns the API bearer token of the request session.
type ResolveToken func(*http.Request) string

// EndSession drops the request session and clears its cookie.
type EndSession func(http.ResponseWriter, *http.Request)

// Dependencies carries the request resolvers shared by module handlers.
type Dependencies struct {
	ResolveViewer   ResolveViewer
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
	ResolveSignedIn ResolveSignedIn
	ResolveToken    ResolveToken
	EndSession      EndSession
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
