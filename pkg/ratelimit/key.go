package ratelimit

import (
	"net/http"

	"github.com/Emmraan/form-validator/pkg/clientip"
)

// ByClientIP keys the limiter on the client's network address.
func ByClientIP(r *http.Request) string {
	return clientip.GetIP(r)
}
