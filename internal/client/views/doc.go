// Package views derives what the front end shows from store state: search,
// sorting, preview windows and small lookups. Nothing here mutates its input.
package views
