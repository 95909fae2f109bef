// Command server runs the pathviz algorithm-visualization websocket server.
// It takes no arguments; the listen port is the build-time constant
// transport.Port.
package main

import (
	"github.com/leo848/pathviz/internal/logging"
	"github.com/leo848/pathviz/internal/transport"
)

func main() {
	log := logging.New()
	srv := transport.NewServer(log)
	log.Printf("listening on :%d", transport.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
