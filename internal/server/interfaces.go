package server

// Server runs every configured transport of the tweet API.
type Server interface {
	// RunServer blocks until a termination signal arrives or a transport
	// fails, then shuts all transports down.
	RunServer()

	// Shutdown stops every transport, letting in-flight calls finish.
	Shutdown()
}

// transport is one listener managed by [Server].
type transport interface {
	name() string
	// serve blocks until the transport is shut down. A nil error means a
	// clean shutdown.
	serve() error
	shutdown()
}
