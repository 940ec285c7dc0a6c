// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme is the authorization scheme prefix.
	BearerScheme = "Bearer"
	// RequestIDHeaderName correlates a client request with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// APIPrefix is prepended to every backend path.
	APIPrefix = "/api"
)
