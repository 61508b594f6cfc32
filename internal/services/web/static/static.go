// Package static embeds the stylesheet and script served under /static/.
package static

import (
	"embed"
	"net/http"
)

// Asset file names referenced by the layout.
const (
	Stylesheet = "golear.css"
	Script     = "golear.js"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS

// Handler serves FS below prefix. Assets are not fingerprinted, so browsers
// must revalidate them.
func Handler(prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.FS(FS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
		files.ServeHTTP(w, r)
	})
}
