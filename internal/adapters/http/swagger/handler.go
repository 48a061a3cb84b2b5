package swagger

import (
	"context"
	"errors"
	"net/http"
)

// Error constants.
var (
	ErrServe = errors.New("swagger serve failed")
)

// Register attaches the dashboard API docs to mux.
//
//	GET /api-docs      -> ReDoc page
//	GET /openapi.yaml  -> embedded OpenAPI document
//
// Other methods get 404, like the dashboard routes.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/api-docs", serveStatic("text/html; charset=utf-8", []byte(indexHTML)))
	mux.HandleFunc("/openapi.yaml", serveStatic("application/yaml; charset=utf-8", OpenAPI))
}

func serveStatic(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}
}

// indexHTML renders /openapi.yaml with ReDoc and links back to the dashboard.
const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>jobpulse API Docs - ReDoc</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <a href="/dashboard" style="position:fixed;top:8px;right:16px;z-index:10">Back to dashboard</a>
    <redoc id="redoc-container"></redoc>
    <script src="` + RedocScriptURL + `"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
