package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// ClientAddress derives a best-effort client address from proxy headers,
// preferring the first entry of X-Forwarded-For, then X-Real-IP, then the
// request's peer address. Header values are spoofable; this is attribution
// for rate limiting, not client authentication.
func ClientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if addr := strings.TrimSpace(first); addr != "" {
			return addr
		}
	}
	if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
		return rip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Identifier scopes a rate-limit counter to a logical bucket and a client
// address, e.g. "contact-203.0.113.7".
func Identifier(bucket, addr string) string {
	if addr == "" {
		addr = "unknown"
	}
	return bucket + "-" + addr
}
