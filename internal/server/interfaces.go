package server

// Server is the process-level lifecycle of the cipher service.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, or until a listener
	// fails.
	RunServer()

	// Shutdown stops every listener, letting in-flight requests finish.
	Shutdown()
}
