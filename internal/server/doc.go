// Package server runs the HTTP API and the gRPC health endpoint side by side
// and stops them together on SIGTERM, SIGINT or SIGQUIT.
package server
