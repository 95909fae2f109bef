package wire

import "encoding/json"

// Output is the top-level outbound message envelope. Exactly one of its
// payload fields is populated, selected by Type.
type Output struct {
	Type string `json:"type"`

	SortedNumbers       *SortedNumbers       `json:"sortedNumbers,omitempty"`
	DistPathCreation    *DistPathCreation    `json:"distPathCreation,omitempty"`
	DistPathImprovement *DistPathImprovement `json:"distPathImprovement,omitempty"`
	PathCreation        *PathCreation        `json:"pathCreation,omitempty"`
	PathImprovement     *PathImprovement     `json:"pathImprovement,omitempty"`
	Error               *ErrorRecord         `json:"error,omitempty"`
	Latency             *LatencyRecord       `json:"latency,omitempty"`
	Log                 *LogRecord           `json:"log,omitempty"`
}

const (
	OutputSortedNumbers       = "sortedNumbers"
	OutputDistPathCreation    = "distPathCreation"
	OutputDistPathImprovement = "distPathImprovement"
	OutputPathCreation        = "pathCreation"
	OutputPathImprovement     = "pathImprovement"
	OutputError               = "error"
	OutputLatency             = "latency"
	OutputLog                 = "log"
)

// LogRecord echoes a diagnostic message back to the client that sent it.
type LogRecord struct {
	Message string `json:"message"`
}

// Edge is a pair of node indices, the wire form of weightmatrix.Edge.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// HighlightKind names the role an index played in the most recent sort step.
type HighlightKind string

const (
	HighlightCompare  HighlightKind = "compare"
	HighlightSwap     HighlightKind = "swap"
	HighlightCorrect  HighlightKind = "correct"
	HighlightConsider HighlightKind = "consider"
	HighlightSmaller  HighlightKind = "smaller"
	HighlightLarger   HighlightKind = "larger"
	HighlightPivot    HighlightKind = "pivot"
)

// HighlightEntry is one (index, kind) pair. It marshals as the 2-element
// wire array `[idx, kind]` rather than as an object.
type HighlightEntry struct {
	Index int
	Kind  HighlightKind
}

func (h HighlightEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{h.Index, h.Kind})
}

func (h *HighlightEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &h.Index); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &h.Kind)
}

// SortedNumbers is a single emitted step of a sortengine run. Done is true
// only on the terminal step, at which point Numbers holds the final order,
// Highlight is empty and Progress is 1.
type SortedNumbers struct {
	Done      bool             `json:"done"`
	Numbers   []int64          `json:"numbers"`
	Highlight []HighlightEntry `json:"highlight,omitempty"`
	Progress  *float64         `json:"progress,omitempty"`
}

// DistPathCreation is a single emitted step of a point-based tspconstruct
// run. Intermediate steps carry CurrentEdges; the terminal step carries
// DonePath as a sequence of materialized points.
type DistPathCreation struct {
	Done         bool        `json:"done"`
	DonePath     [][]float32 `json:"donePath,omitempty"`
	CurrentEdges []Edge      `json:"currentEdges,omitempty"`
	Progress     *float64    `json:"progress,omitempty"`
}

// DistPathImprovement is a single emitted step of a point-based tspimprove
// run, CurrentPath materialized as points.
type DistPathImprovement struct {
	Done        bool        `json:"done"`
	Better      bool        `json:"better"`
	CurrentPath [][]float32 `json:"currentPath"`
	Progress    *float64    `json:"progress,omitempty"`
}

// PathCreation is a single emitted step of a matrix-based tspconstruct run.
// Intermediate steps carry CurrentEdges; the terminal step carries
// DonePath as vertex indices.
type PathCreation struct {
	Done         bool     `json:"done"`
	DonePath     []int    `json:"donePath,omitempty"`
	CurrentEdges []Edge   `json:"currentEdges,omitempty"`
	Progress     *float64 `json:"progress,omitempty"`
}

// PathImprovement is a single emitted step of a matrix-based tspimprove run.
// Better reports whether CurrentPath strictly improved on the previous
// emission; the stepsink forwards non-improving intermediate steps
// immediately and rate-limits the improving ones and the terminal one.
type PathImprovement struct {
	Done        bool     `json:"done"`
	Better      bool     `json:"better"`
	CurrentPath []int    `json:"currentPath"`
	Progress    *float64 `json:"progress,omitempty"`
}

// LatencyRecord answers a {type:"latency"} ping by echoing the latency value
// the request carried.
type LatencyRecord struct {
	TimeMillis uint64 `json:"timeMillis"`
}

// ErrorRecord is the outbound error taxonomy. Type selects which of
// Original/Error carries detail.
type ErrorRecord struct {
	Type     string `json:"type"`
	Original string `json:"original,omitempty"`
	Error    string `json:"error,omitempty"`
}

const (
	// ErrBinaryData reports that a binary websocket frame was received; the
	// protocol only accepts text frames.
	ErrBinaryData = "binaryData"
	// ErrSerde reports that a text frame failed to decode as a valid Input;
	// Original carries the raw frame and Error the decode error text.
	ErrSerde = "serde"
	// ErrAlgorithm reports that a request was structurally valid but could
	// not be carried out (e.g. wordToVec, or a dimension/validation failure).
	ErrAlgorithm = "algorithm"
)

// NewBinaryDataError builds the error sent when a client sends a binary frame.
func NewBinaryDataError() ErrorRecord { return ErrorRecord{Type: ErrBinaryData} }

// NewSerdeError builds the error sent when a text frame fails to decode.
func NewSerdeError(original string, err error) ErrorRecord {
	return ErrorRecord{Type: ErrSerde, Original: original, Error: err.Error()}
}

// NewAlgorithmError builds the error sent when a structurally valid request
// cannot be executed or fails validation.
func NewAlgorithmError(message string) ErrorRecord {
	return ErrorRecord{Type: ErrAlgorithm, Error: message}
}

// Encode marshals an Output to its wire JSON form.
func Encode(o Output) ([]byte, error) {
	return json.Marshal(o)
}
