// Package session persists the authenticated session (token and user
// record) between runs of the client, so that a restarted process can
// restore it before the first request.
package session
