package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// proxy headers checked in priority order
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP"}

// ClientIPMiddleware rewrites RemoteAddr to the real client IP taken
// from proxy headers so downstream logging sees the caller, not the
// ingress.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)

		if clientIP != "" {
			_, port, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || port == "" {
				port = "0"
			}
			r.RemoteAddr = net.JoinHostPort(clientIP, port)
		}

		next.ServeHTTP(w, r)
	})
}

func extractClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := r.Header.Get(header); ip != "" {
			if parsed := net.ParseIP(strings.TrimSpace(ip)); parsed != nil {
				return parsed.String()
			}
		}
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if parsed := net.ParseIP(first); parsed != nil {
			return parsed.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return ""
}
