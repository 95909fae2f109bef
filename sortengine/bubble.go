package sortengine

import "github.com/leo848/pathviz/internal/stepsink"

// RunBubble sorts numbers ascending with classic bubble sort, emitting a
// Compare snapshot before every comparison, a Swap snapshot after every
// exchange, and a Correct snapshot over [0,i] at the end of each outer pass.
func RunBubble(sink *stepsink.Sink, numbers []int64) []int64 {
	out := make([]int64, len(numbers))
	copy(out, numbers)
	n := len(out)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			progress := bubbleProgress(i, j, n)
			sendWithProgress(sink, out, compareHighlight(i, j), &progress)
			if out[i] > out[j] {
				out[i], out[j] = out[j], out[i]
				sendWithProgress(sink, out, swapHighlight(i, j), &progress)
			}
		}
		send(sink, out, correctRange(i))
	}

	sendDone(sink, out)
	return out
}

// bubbleProgress implements the source's (i·n + (j-i)) / n² fraction.
func bubbleProgress(i, j, n int) float64 {
	if n == 0 {
		return 1
	}
	return float64(i*n+(j-i)) / float64(n*n)
}
