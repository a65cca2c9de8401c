package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// TokenFromRequest reads the session token from the Authorization header.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
