// Package logging provides the server's diagnostic output. It wraps the
// standard library's log.Logger rather than pulling in a structured logging
// library: neither the lvlath family nor leanlp-BTC-coinjoin's transport
// layer (internal/api/websocket.go) reach for one either, and this server's
// log volume (connect/disconnect/dispatch/error lines) doesn't warrant the
// dependency.
package logging

import (
	"log"
	"os"
)

// Logger prefixes every line with a fixed tag, matching the
// log.Printf("WebSocket ...", ...) style of the reference transport layer.
type Logger struct {
	*log.Logger
}

// New builds a Logger writing to stderr with a "pathviz " prefix.
func New() *Logger {
	return &Logger{Logger: log.New(os.Stderr, "pathviz ", log.LstdFlags)}
}

// Connect logs a new client session.
func (l *Logger) Connect(clientID string) {
	l.Printf("client %s connected", clientID)
}

// Disconnect logs a client session ending.
func (l *Logger) Disconnect(clientID string) {
	l.Printf("client %s disconnected", clientID)
}

// Dispatch logs a successfully handled action request.
func (l *Logger) Dispatch(clientID, action string) {
	l.Printf("client %s dispatched %s", clientID, action)
}

// Error logs a request-ending failure for a client.
func (l *Logger) Error(clientID string, err error) {
	l.Printf("client %s error: %v", clientID, err)
}
