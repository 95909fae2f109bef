package sortengine

import "github.com/leo848/pathviz/internal/stepsink"

// RunSelection sorts numbers ascending with selection sort. For each i, it
// tracks the running minimum index, comparing (j, minIndex) and re-emitting
// Compare on minIndex whenever the minimum updates; it emits a before/after
// Swap pair when i and minIndex differ, a single Compare(i) when they don't
// (unless i is the last index), then Correct over [0,i].
func RunSelection(sink *stepsink.Sink, numbers []int64) []int64 {
	out := make([]int64, len(numbers))
	copy(out, numbers)
	n := len(out)

	for i := 0; i < n; i++ {
		minIndex := i
		for j := i; j < n; j++ {
			send(sink, out, compareHighlight(j, minIndex))
			if out[j] < out[minIndex] {
				minIndex = j
				send(sink, out, compareHighlight(minIndex))
			}
		}
		if i != minIndex {
			send(sink, out, swapHighlight(i, minIndex))
			out[i], out[minIndex] = out[minIndex], out[i]
			send(sink, out, swapHighlight(i, minIndex))
		} else if i != n-1 {
			send(sink, out, compareHighlight(i))
		}
		send(sink, out, correctRange(i))
	}

	sendDone(sink, out)
	return out
}
