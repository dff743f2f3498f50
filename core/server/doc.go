// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in cmd/start.go; this package
// only carries the settings (listen port, API key) that the config loader
// binds from the environment.
package server
