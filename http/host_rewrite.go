package http

import (
	"net/http"
	"strings"
)

// HostRewriteMiddleware serves the alternate launch page for requests
// arriving on its subdomain: when the Host contains the configured
// subdomain, the root path is rewritten to targetPath. All other paths pass
// through untouched so shared endpoints keep working on either host.
func HostRewriteMiddleware(subdomain, targetPath string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subdomain != "" &&
			strings.Contains(r.Host, subdomain) &&
			r.URL.Path == "/" {
			r.URL.Path = targetPath
		}

		next.ServeHTTP(w, r)
	})
}
