// Package common contains constants and sentinel errors shared by the client
// and the fake API.
package common

const (
	// AuthorizationHeader carries the session token on outbound requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "
)
