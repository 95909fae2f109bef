package dispatcher

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/leo848/pathviz/internal/logging"
	"github.com/stretchr/testify/require"
)

type capturingResponder struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (r *capturingResponder) Send(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, data)
	return nil
}

func (r *capturingResponder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *capturingResponder) last(t *testing.T) map[string]any {
	t.Helper()
	require.NotEmpty(t, r.frames)
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.frames[len(r.frames)-1], &out))
	return out
}

func TestHandle_Log(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	err := d.Handle(resp, "client-1", []byte(`{"type":"log","message":"hello"}`))
	require.NoError(t, err)
	out := resp.last(t)
	require.Equal(t, "log", out["type"])
}

func TestHandle_Latency(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	err := d.Handle(resp, "client-1", []byte(`{"type":"latency","latency":42}`))
	require.NoError(t, err)
	out := resp.last(t)
	require.Equal(t, "latency", out["type"])
}

func TestHandle_MalformedFrame(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	err := d.Handle(resp, "client-1", []byte(`not json`))
	require.Error(t, err)
	out := resp.last(t)
	require.Equal(t, "error", out["type"])
}

func TestHandle_SortNumbers(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	frame := `{"type":"action","action":{"type":"sortNumbers","numbers":[3,1,2],"algorithm":"bubble"}}`
	err := d.Handle(resp, "client-1", []byte(frame))
	require.NoError(t, err)
	out := resp.last(t)
	require.Equal(t, "sortedNumbers", out["type"])
}

func TestHandle_CreatePath_MatrixBased(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	frame := `{"type":"action","action":{"type":"createPath","matrix":[[0,1,2],[1,0,3],[2,3,0]],"method":{"type":"transmute"}}}`
	err := d.Handle(resp, "client-1", []byte(frame))
	require.NoError(t, err)
	out := resp.last(t)
	require.Equal(t, "pathCreation", out["type"])
}

func TestHandle_WordToVec_ReportsAlgorithmError(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	frame := `{"type":"action","action":{"type":"wordToVec","word":"tour"}}`
	err := d.Handle(resp, "client-1", []byte(frame))
	require.Error(t, err)
	out := resp.last(t)
	require.Equal(t, "error", out["type"])
	errBody := out["error"].(map[string]any)
	require.Equal(t, "algorithm", errBody["type"])
}

func TestHandle_NonSquareMatrix_ReportsAlgorithmError(t *testing.T) {
	d := New(logging.New())
	resp := &capturingResponder{}
	frame := `{"type":"action","action":{"type":"createPath","matrix":[[0,1],[1,0,3]],"method":{"type":"transmute"}}}`
	err := d.Handle(resp, "client-1", []byte(frame))
	require.Error(t, err)
	out := resp.last(t)
	require.Equal(t, "error", out["type"])
}
