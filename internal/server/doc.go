// Package server runs the HTTP server of the forum bridge: startup, signal
// handling and graceful shutdown.
package server
