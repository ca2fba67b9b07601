// Package fakeapi is an in-memory implementation of the showcase HTTP API.
// It backs integration tests of the client library and local runs of the
// terminal client. Responses use the {success, data, message} envelope and
// the demo data the web client was developed against.
package fakeapi
