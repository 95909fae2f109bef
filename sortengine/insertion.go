package sortengine

import "github.com/leo848/pathviz/internal/stepsink"

// RunInsertion sorts numbers ascending with insertion sort, shifting the
// element at i left while it is strictly smaller than its predecessor,
// emitting a Compare/Swap pair per shift and a final Correct over [0,i].
func RunInsertion(sink *stepsink.Sink, numbers []int64) []int64 {
	out := make([]int64, len(numbers))
	copy(out, numbers)

	for i := range out {
		nextToInsert := out[i]
		index := i
		for index > 0 && nextToInsert < out[index-1] {
			send(sink, out, compareHighlight(index, index-1))
			out[index], out[index-1] = out[index-1], out[index]
			send(sink, out, swapHighlight(index, index-1))
			index--
		}
		if index > 0 {
			send(sink, out, compareHighlight(index, index-1))
		}
		send(sink, out, correctRange(i))
	}

	sendDone(sink, out)
	return out
}
