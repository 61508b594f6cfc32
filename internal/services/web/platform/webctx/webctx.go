// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	module "github.com/golear/golear/internal/services/web/module"
)

// WithToken returns the request context carrying the session bearer token
// for downstream API calls.
func WithToken(r *http.Request, resolve module.ResolveToken) context.Context {
	if r == nil {
		return context.Background()
	}
	ctx := r.Context()
	if resolve == nil {
		return ctx
	}
	token := strings.TrimSpace(resolve(r))
	if token == "" {
		return ctx
	}
	return golearapi.WithToken(ctx, token)
}
