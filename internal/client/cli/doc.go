// Package cli provides the interactive terminal client of the developer
// showcase.
//
// It wires configuration, the local session database, the HTTP gateway and
// the store, then runs a REPL. Commands read state from the store and
// dispatch its operations; all invariants live in the store.
//
// Key features:
//   - Register / Login / Logout, profile and avatar updates
//   - Browse, search and sort projects and developers
//   - Create, edit and delete own projects
//   - Read and write comments
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
