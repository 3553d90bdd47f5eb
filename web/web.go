// Package web serves the embedded single-page UI. The page is static;
// everything dynamic goes through the JSON API.
package web

import (
	"context"
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// Index serves the UI at GET /.
func Index(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}
