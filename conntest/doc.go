// Package conntest provides helpers for testing code that processes
// requests: request builders, a recording logger and handler and decorator
// mocks.
package conntest
