package vhttp

import (
	"net"
	"net/http"
	"strings"
)

// ClientAddress reports who made r: the first X-Forwarded-For entry, then
// X-Real-IP, then the host of the transport peer.
func ClientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
