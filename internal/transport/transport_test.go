package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/leo848/pathviz/internal/logging"
)

func newTestServer(t *testing.T) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	srv := NewServer(logging.New())
	ts := httptest.NewServer(http.HandlerFunc(srv.serveWS))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return ts, conn
}

func TestServeWS_SortNumbersRoundTrip(t *testing.T) {
	_, conn := newTestServer(t)

	frame := `{"type":"action","action":{"type":"sortNumbers","numbers":[3,1,2],"algorithm":"bubble"}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, "sortedNumbers", out["type"])
}

func TestServeWS_BinaryFrameRejected(t *testing.T) {
	_, conn := newTestServer(t)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, "error", out["type"])
	errBody := out["error"].(map[string]any)
	require.Equal(t, "binaryData", errBody["type"])
}
