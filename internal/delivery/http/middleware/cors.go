package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PATCH, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, Accept, " + RequestIDHeader
	corsMaxAge       = "86400"
)

// corsPolicy is the parsed allow-list. "*" admits any origin without credentials.
type corsPolicy struct {
	origins  map[string]bool
	wildcard bool
}

func newCORSPolicy(allowed []string) corsPolicy {
	p := corsPolicy{origins: make(map[string]bool, len(allowed))}
	for _, o := range allowed {
		switch o = strings.TrimSuffix(strings.TrimSpace(o), "/"); o {
		case "":
		case "*":
			p.wildcard = true
		default:
			p.origins[o] = true
		}
	}
	return p
}

// admit reports whether origin may read responses and whether it may send credentials.
func (p corsPolicy) admit(origin string) (ok, credentials bool) {
	if origin == "" {
		return false, false
	}
	if p.origins[origin] {
		return true, true
	}
	return p.wildcard, false
}

// CORS adds CORS headers for admitted origins and answers preflight requests with 204.
// Other OPTIONS requests reach next.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		ok, credentials := policy.admit(origin)
		h := w.Header()
		h.Add("Vary", "Origin")
		if ok {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			if credentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if ok {
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
