// Package client is the remote gateway of the showcase client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (API, split into AuthAPI, ProjectsAPI,
//     UsersAPI and CommentsAPI) with one method per remote call.
//  2. HTTPClient, an implementation over net/http that attaches the session
//     token as a bearer credential, encodes JSON or multipart bodies and
//     unwraps the {success, data, message} envelope every endpoint returns.
//
// # Error Handling
//
// A call either returns its data or an error. Server rejections (success:false
// or an HTTP error status) surface as *APIError; transport failures wrap
// ErrUnavailable; 401 responses match ErrUnauthorized. Message turns any of
// them into the single string the store keeps on a slice.
//
// The client never touches store state; it only reads the token through a
// TokenSource.
package client
