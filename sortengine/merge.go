package sortengine

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
)

// RunMerge sorts numbers ascending with top-down recursive merge sort. Each
// recursive call emits a Consider snapshot over its range, writes its two
// halves back into the shared array and emits a Correct snapshot over each,
// then runs a final display pass picking the running minimum from left to
// right across the combined (still-unmerged) range purely to narrate
// progress — the value actually returned comes from the proper two-pointer
// merge below, not from that display pass.
func RunMerge(sink *stepsink.Sink, numbers []int64) []int64 {
	out := make([]int64, len(numbers))
	copy(out, numbers)
	out = mergeRec(sink, out, 0, len(out))
	sendDone(sink, out)
	return out
}

func mergeRec(sink *stepsink.Sink, numbers []int64, start, end int) []int64 {
	length := end - start
	if length <= 1 {
		result := make([]int64, length)
		copy(result, numbers[start:end])
		return result
	}

	send(sink, numbers, rangeHighlight(wire.HighlightConsider, start, end))

	mid := start + length/2
	left := mergeRec(sink, numbers, start, mid)
	copy(numbers[start:start+len(left)], left)
	send(sink, numbers, rangeHighlight(wire.HighlightCorrect, start, mid))

	right := mergeRec(sink, numbers, mid, end)
	copy(numbers[mid:mid+len(right)], right)
	send(sink, numbers, rangeHighlight(wire.HighlightCorrect, mid, end))

	for index := start; index < end; index++ {
		minOffset := 0
		for k := 1; index+k < end; k++ {
			if numbers[index+k] < numbers[index+minOffset] {
				minOffset = k
			}
		}
		minIndex := index + minOffset
		numbers[index], numbers[minIndex] = numbers[minIndex], numbers[index]
		send(sink, numbers, rangeHighlight(wire.HighlightCorrect, start, index))
	}

	return mergeSortedHalves(left, right)
}

// mergeSortedHalves is the classic peekable linear merge of two already
// sorted slices.
func mergeSortedHalves(a, b []int64) []int64 {
	result := make([]int64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			result = append(result, a[i])
			i++
		} else {
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}
