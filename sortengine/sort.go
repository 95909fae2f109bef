package sortengine

import (
	"fmt"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
)

// Algorithm names one of the five registered sorts, matching the wire
// protocol's algorithm tag.
type Algorithm string

const (
	Bubble    Algorithm = wire.AlgorithmBubble
	Selection Algorithm = wire.AlgorithmSelection
	Insertion Algorithm = wire.AlgorithmInsertion
	Merge     Algorithm = wire.AlgorithmMerge
	Quick     Algorithm = wire.AlgorithmQuick
)

// Run dispatches to the named algorithm and returns the sorted numbers,
// having streamed every intermediate snapshot through sink along the way.
func Run(algorithm Algorithm, sink *stepsink.Sink, numbers []int64) ([]int64, error) {
	switch algorithm {
	case Bubble:
		return RunBubble(sink, numbers), nil
	case Selection:
		return RunSelection(sink, numbers), nil
	case Insertion:
		return RunInsertion(sink, numbers), nil
	case Merge:
		return RunMerge(sink, numbers), nil
	case Quick:
		return RunQuick(sink, numbers), nil
	default:
		return nil, fmt.Errorf("sortengine: unknown algorithm %q", algorithm)
	}
}

// send wraps a snapshot in its SortedNumbers envelope and forwards it,
// cloning numbers so later in-place mutation never races the encoder.
func send(sink *stepsink.Sink, numbers []int64, highlight []wire.HighlightEntry) {
	sendWithProgress(sink, numbers, highlight, nil)
}

func sendWithProgress(sink *stepsink.Sink, numbers []int64, highlight []wire.HighlightEntry, progress *float64) {
	snapshot := make([]int64, len(numbers))
	copy(snapshot, numbers)
	_ = sink.Send(stepsink.Step{
		Output: wire.SortedNumbersOutput(wire.SortedNumbers{
			Numbers:   snapshot,
			Highlight: highlight,
			Progress:  progress,
		}),
		Relevant: true,
	})
}

// sendDone emits the terminal snapshot: done=true, progress=1, no highlights.
func sendDone(sink *stepsink.Sink, numbers []int64) {
	snapshot := make([]int64, len(numbers))
	copy(snapshot, numbers)
	progress := 1.0
	_ = sink.Send(stepsink.Step{
		Output: wire.SortedNumbersOutput(wire.SortedNumbers{
			Done:     true,
			Numbers:  snapshot,
			Progress: &progress,
		}),
		Relevant: true,
	})
}

func compareHighlight(indices ...int) []wire.HighlightEntry {
	return highlightAll(wire.HighlightCompare, indices)
}

func swapHighlight(indices ...int) []wire.HighlightEntry {
	return highlightAll(wire.HighlightSwap, indices)
}

func highlightAll(kind wire.HighlightKind, indices []int) []wire.HighlightEntry {
	out := make([]wire.HighlightEntry, len(indices))
	for i, idx := range indices {
		out[i] = wire.HighlightEntry{Index: idx, Kind: kind}
	}
	return out
}

// rangeHighlight marks every index in [lo, hi) with kind.
func rangeHighlight(kind wire.HighlightKind, lo, hi int) []wire.HighlightEntry {
	if hi <= lo {
		return nil
	}
	out := make([]wire.HighlightEntry, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, wire.HighlightEntry{Index: i, Kind: kind})
	}
	return out
}

// correctRange marks [0, upto] (inclusive) as Correct.
func correctRange(upto int) []wire.HighlightEntry {
	return rangeHighlight(wire.HighlightCorrect, 0, upto+1)
}
