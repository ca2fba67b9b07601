// Package store is the client-side state container.
//
// State is split into four slices (auth, projects, users, comments). Every
// change goes through Dispatch as an Action; pure reducers compute the next
// State. Asynchronous operations are ordinary blocking methods that dispatch
// a pending action, call the remote API and then dispatch either a fulfilled
// or a rejected action carrying the same request id. Concurrent operations
// of the same kind are not sequenced: whichever settles last overwrites the
// slice.
package store
