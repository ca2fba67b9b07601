// Package models defines the showcase entities exchanged with the API
// (users, projects, comments), page payloads with pagination metadata, and
// the request types the client sends, together with their validation rules.
package models
