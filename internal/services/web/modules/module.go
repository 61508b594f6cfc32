// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/modules/competicoes"
	"github.com/golear/golear/internal/services/web/modules/feed"
	"github.com/golear/golear/internal/services/web/modules/peneiras"
	"github.com/golear/golear/internal/services/web/modules/profile"
	"github.com/golear/golear/internal/services/web/modules/public"
	"github.com/golear/golear/internal/services/web/modules/search"
	"github.com/golear/golear/internal/services/web/modules/users"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	checkout "github.com/golear/golear/internal/services/web/plans"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// ModuleResolvers carries request-scoped resolver functions derived from the
// principal resolver. The server constructs these after building the principal
// resolver and passes them to registry functions for module composition.
type ModuleResolvers struct {
	ResolveViewer   module.ResolveViewer
	ResolveSignedIn module.ResolveSignedIn
	ResolveUserID   module.ResolveUserID
	ResolveLanguage module.ResolveLanguage
	ResolveToken    module.ResolveToken
	EndSession      module.EndSession
}

// moduleDependencies converts resolvers into the handler dependency bundle.
func (r ModuleResolvers) moduleDependencies() module.Dependencies {
	return module.Dependencies{
		ResolveViewer:   r.ResolveViewer,
		ResolveUserID:   r.ResolveUserID,
		ResolveLanguage: r.ResolveLanguage,
		ResolveSignedIn: r.ResolveSignedIn,
		ResolveToken:    r.ResolveToken,
		EndSession:      r.EndSession,
	}
}

// Dependencies carries the API clients and shared config required to compose
// the web module registry. Each client field is typed as the narrow interface
// defined by the consuming module, so modules physically cannot access clients
// they were not given. A nil field leaves its module in degraded mode.
//
// Request-scoped resolvers are provided separately via ModuleResolvers since
// they are derived by the server after construction.
type Dependencies struct {
	// Public module.
	AuthClient public.AuthClient
	Sessions   public.SessionStarter

	// Feed module.
	PostClient feed.PostClient
	News       feed.NewsSource

	PeneiraClient    peneiras.PeneiraClient
	CompeticaoClient competicoes.CompeticaoClient
	ProfileClient    profile.ProfileClient
	UserClient       users.UserClient
	SearchClient     search.SearchClient

	// PaymentProcessor charges plan checkouts.
	PaymentProcessor checkout.Processor

	RequestSchemePolicy requestmeta.SchemePolicy
}
