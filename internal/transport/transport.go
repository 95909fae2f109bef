// Package transport upgrades incoming HTTP connections to websockets and
// runs one read/dispatch loop per connection. Grounded on
// leanlp-BTC-coinjoin/internal/api/websocket.go's upgrader and write-deadline
// handling, adapted from that file's one-way broadcast Hub to a
// per-connection request/response loop: this protocol answers each client's
// own requests rather than fanning one message out to every subscriber.
package transport

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/leo848/pathviz/internal/dispatcher"
	"github.com/leo848/pathviz/internal/logging"
	"github.com/leo848/pathviz/internal/wire"
)

// Port is the fixed listen port, matching original_source's `const PORT: u16
// = 3141` in main.rs.
const Port = 3141

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// writeTimeout bounds how long a single frame write may block a slow or
// wedged client, matching the reference Hub's 5s deadline.
const writeTimeout = 5 * time.Second

// Responder adapts one client's websocket.Conn to stepsink.Responder.
// gorilla/websocket permits at most one concurrent writer per connection, so
// every send is serialized under mu.
type Responder struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// Send writes data as a single text frame. It is a no-op once the connection
// has been marked closed.
func (r *Responder) Send(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	_ = r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := r.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		r.closed = true
		return err
	}
	return nil
}

// Closed reports whether the connection has been torn down.
func (r *Responder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Responder) markClosed() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Server upgrades HTTP requests to websockets and runs the dispatcher loop.
type Server struct {
	dispatcher *dispatcher.Dispatcher
	log        *logging.Logger
}

// NewServer builds a Server that logs through log.
func NewServer(log *logging.Logger) *Server {
	return &Server{dispatcher: dispatcher.New(log), log: log}
}

// ListenAndServe upgrades every request on "/" and blocks serving
// connections until the listener fails.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveWS)
	return http.ListenAndServe(fmt.Sprintf(":%d", Port), mux)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("upgrade failed: %v", err)
		return
	}

	clientID := uuid.New().String()
	resp := &Responder{conn: conn}
	s.log.Connect(clientID)
	defer func() {
		resp.markClosed()
		conn.Close()
		s.log.Disconnect(clientID)
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Error(clientID, err)
			}
			return
		}

		if msgType == websocket.BinaryMessage {
			_ = sendBinaryDataError(resp)
			continue
		}

		_ = s.dispatcher.Handle(resp, clientID, data)
	}
}

func sendBinaryDataError(resp *Responder) error {
	data, err := wire.Encode(wire.ErrorOutput(wire.NewBinaryDataError()))
	if err != nil {
		return err
	}
	return resp.Send(data)
}
