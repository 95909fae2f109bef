package sortengine

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
)

// RunQuick sorts numbers ascending with quicksort, pivot fixed to the first
// element of each range. It partitions into strictly-less and
// greater-or-equal buckets, narrating every classification decision (a
// Consider snapshot over the whole range, Smaller/Larger on the classified
// prefix, Pivot on the pivot) before writing the partitioned buckets back
// and recursing.
func RunQuick(sink *stepsink.Sink, numbers []int64) []int64 {
	out := make([]int64, len(numbers))
	copy(out, numbers)
	quickRec(sink, out, 0, len(out))
	sendDone(sink, out)
	return out
}

func quickRec(sink *stepsink.Sink, numbers []int64, start, end int) {
	if end-start <= 1 {
		return
	}

	pivot := numbers[start]
	var lt, ge []int64

	for idx := start; idx < end; idx++ {
		number := numbers[idx]

		highlights := rangeHighlight(wire.HighlightConsider, start, end)
		for i := start + 1; i <= idx; i++ {
			kind := wire.HighlightLarger
			if numbers[i] < pivot {
				kind = wire.HighlightSmaller
			}
			highlights = append(highlights, wire.HighlightEntry{Index: i, Kind: kind})
		}
		highlights = append(highlights, wire.HighlightEntry{Index: start, Kind: wire.HighlightPivot})
		send(sink, numbers, highlights)

		if number < pivot {
			lt = append(lt, number)
		} else {
			ge = append(ge, number)
		}
	}

	for i, v := range lt {
		numbers[start+i] = v
	}
	for i, v := range ge {
		numbers[start+len(lt)+i] = v
	}

	var final []wire.HighlightEntry
	for i := start; i < end; i++ {
		rel := i - start
		kind := wire.HighlightLarger
		switch {
		case rel < len(lt):
			kind = wire.HighlightSmaller
		case rel == len(lt):
			kind = wire.HighlightPivot
		}
		final = append(final, wire.HighlightEntry{Index: i, Kind: kind})
	}
	final = append(final, wire.HighlightEntry{Index: start + len(lt), Kind: wire.HighlightPivot})
	send(sink, numbers, final)

	quickRec(sink, numbers, start, start+len(lt))
	quickRec(sink, numbers, start+len(lt)+1, end)

	send(sink, numbers, rangeHighlight(wire.HighlightCorrect, start, end))
}
