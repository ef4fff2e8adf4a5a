// Package server runs the HTTP and gRPC listeners of the cipher service.
//
// Whichever transports are configured start together and stop together: a
// signal, or a failure in one listener, gracefully shuts all of them down.
package server
