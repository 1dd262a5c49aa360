// Package clientip extracts the client's network address from an HTTP
// request, looking through the proxy headers common in front of the
// service before falling back to the connection address.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client's IP address. Header priority:
// CF-Connecting-IP, then the first valid entry of X-Forwarded-For, then
// X-Real-IP, then RemoteAddr.
func GetIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, entry := range strings.Split(forwarded, ",") {
			if ip := parseIP(entry); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string, returning an
// empty string for invalid input.
func parseIP(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	ip := net.ParseIP(raw)
	if ip == nil {
		return ""
	}
	return ip.String()
}
