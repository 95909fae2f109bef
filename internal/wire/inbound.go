package wire

import (
	"encoding/json"
	"fmt"
)

// Input is the top-level inbound message. Its Type field discriminates which
// of the three inbound shapes (log/action/latency) a frame carries.
type Input struct {
	Type    string     `json:"type"`
	Message string     `json:"message,omitempty"`
	Action  ActionBody `json:"action,omitempty"`
	Latency uint64     `json:"latency,omitempty"`
	Pool    OptionPool `json:"pool,omitempty"`
}

const (
	InputLog    = "log"
	InputAction = "action"
	InputLatency = "latency"
)

// ActionBody is the envelope for the five action kinds the dispatcher
// understands, plus the out-of-scope wordToVec kind. All fields beyond Type
// are optional; which ones are populated depends on Type.
type ActionBody struct {
	Type string `json:"type"`

	// sortNumbers
	Numbers   []int64 `json:"numbers,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`

	// createDistPath / improveDistPath
	Dimensions uint8         `json:"dimensions,omitempty"`
	Values     [][]float32   `json:"values,omitempty"`
	Path       [][]float32   `json:"path,omitempty"`
	Metric     *MetricBody   `json:"metric,omitempty"`

	// createPath / improvePath (matrix-based)
	Matrix    [][]float32 `json:"matrix,omitempty"`
	IndexPath []int       `json:"indexPath,omitempty"`

	// improve* common
	PreferStep *bool `json:"preferStep,omitempty"`

	// construction/improvement method selector, shared across all path actions
	Method MethodBody `json:"method,omitempty"`

	// wordToVec (out of scope; decoded so it round-trips, never executed)
	Word string `json:"word,omitempty"`
	Desc string `json:"desc,omitempty"`
}

const (
	ActionSortNumbers     = "sortNumbers"
	ActionCreateDistPath  = "createDistPath"
	ActionImproveDistPath = "improveDistPath"
	ActionCreatePath      = "createPath"
	ActionImprovePath     = "improvePath"
	ActionWordToVec       = "wordToVec"
)

// MetricBody is the wire shape of a geometry.Metric.
type MetricBody struct {
	Norm   string `json:"norm,omitempty"`
	Invert bool   `json:"invert,omitempty"`
}

// MethodBody carries the method/algorithm tag for path construction and
// improvement requests.
type MethodBody struct {
	Type string `json:"type"`
}

const (
	MethodTransmute              = "transmute"
	MethodRandom                 = "random"
	MethodNearestNeighbor        = "nearestNeighbor"
	MethodOptimalNearestNeighbor = "optimalNearestNeighbor"
	MethodBruteForce             = "bruteForce"
	MethodGreedy                 = "greedy"
	MethodHeldKarp               = "heldKarp"
	MethodILP                    = "ilp"
	MethodInsertion              = "insertion"

	MethodRotate             = "rotate"
	MethodSwap               = "swap"
	MethodTwoOpt             = "twoOpt"
	MethodThreeOpt           = "threeOpt"
	MethodInnerRotate        = "innerRotate"
	MethodSimulatedAnnealing = "simulatedAnnealing"

	AlgorithmBubble    = "bubble"
	AlgorithmSelection = "selection"
	AlgorithmInsertion = "insertion"
	AlgorithmMerge     = "merge"
	AlgorithmQuick     = "quick"
)

// OptionPool is the configuration record recognized per-request. All fields
// are optional; unknown JSON fields are ignored for forward compatibility
// (no DisallowUnknownFields).
type OptionPool struct {
	IterationCount      *int     `json:"iterationCount,omitempty"`
	InitialTemperature  *float64 `json:"initialTemperature,omitempty"`
	MILPSolver          string   `json:"milpSolver,omitempty"`
	ILPMaxDuration      *uint64  `json:"ilpMaxDuration,omitempty"`
	ILPStart            *int     `json:"ilpStart,omitempty"`
	ILPEnd              *int     `json:"ilpEnd,omitempty"`
}

// DecodeInput parses a single inbound text frame.
func DecodeInput(data []byte) (Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("wire: decode input: %w", err)
	}
	return in, nil
}
