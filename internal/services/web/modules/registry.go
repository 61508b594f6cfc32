package modules

import (
	"github.com/golear/golear/internal/services/web/modules/competicoes"
	"github.com/golear/golear/internal/services/web/modules/feed"
	"github.com/golear/golear/internal/services/web/modules/peneiras"
	"github.com/golear/golear/internal/services/web/modules/plans"
	"github.com/golear/golear/internal/services/web/modules/profile"
	"github.com/golear/golear/internal/services/web/modules/public"
	"github.com/golear/golear/internal/services/web/modules/search"
	"github.com/golear/golear/internal/services/web/modules/users"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/platform/publichandler"
)

// DefaultPublicModules returns the signed-out surface.
func DefaultPublicModules(deps Dependencies, resolvers ModuleResolvers) []Module {
	base := publichandler.NewBase(
		publichandler.WithResolveViewer(resolvers.ResolveViewer),
		publichandler.WithResolveViewerSignedIn(resolvers.ResolveSignedIn),
		publichandler.WithResolveLanguage(resolvers.ResolveLanguage),
	)
	return []Module{
		public.NewWithGateway(public.NewAPIGateway(deps.AuthClient), deps.Sessions, base, deps.RequestSchemePolicy),
	}
}

// DefaultProtectedModules returns the authenticated /app/ modules.
func DefaultProtectedModules(deps Dependencies, resolvers ModuleResolvers) []Module {
	base := modulehandler.NewBase(resolvers.moduleDependencies())
	return []Module{
		feed.NewWithGateway(feed.NewAPIGateway(deps.PostClient), deps.News, base),
		peneiras.NewWithGateway(peneiras.NewAPIGateway(deps.PeneiraClient), base),
		competicoes.NewWithGateway(competicoes.NewAPIGateway(deps.CompeticaoClient), base),
		profile.NewWithGateway(profile.NewAPIGateway(deps.ProfileClient), base),
		users.NewWithGateway(users.NewAPIGateway(deps.UserClient), base),
		search.NewWithGateway(search.NewAPIGateway(deps.SearchClient), base),
		plans.NewWithProcessor(deps.PaymentProcessor, base),
	}
}
