// Package common contains shared constants and sentinel errors used across
// the board client components.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound API requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the credential in AuthorizationHeaderName.
	BearerScheme = "Bearer"

	// RequestIDHeaderName correlates a client request with server logs.
	RequestIDHeaderName = "X-Request-ID"
)
