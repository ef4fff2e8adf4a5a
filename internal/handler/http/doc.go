// Package http implements the HTTP transport layer of the cipher service.
//
// It exposes route wiring, the encrypt/decrypt handlers, the two browser
// pages and the middleware used in front of them. Request tracing, access
// logging, CORS and rate limiting are handled in this package before
// requests are delegated to the service layer.
package http
