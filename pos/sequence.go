package pos

import "math"

type Sequence struct {
	Score    float64
	Outcomes []string
	Probs    []float64
}

// Expand returns a copy of seq extended by one outcome.
func (seq Sequence) Expand(out string, prob float64) Sequence {
	next := Sequence{
		Outcomes: make([]string, len(seq.Outcomes)+1),
		Probs:    make([]float64, len(seq.Probs)+1),
		Score:    seq.Score + math.Log(prob),
	}
	copy(next.Outcomes, seq.Outcomes)
	copy(next.Probs, seq.Probs)
	next.Outcomes[len(seq.Outcomes)] = out
	next.Probs[len(seq.Probs)] = prob
	return next
}

// sequenceHeap is a max-heap on score.
type sequenceHeap []Sequence

func (h sequenceHeap) Len() int            { return len(h) }
func (h sequenceHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h sequenceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sequenceHeap) Push(x interface{}) { *h = append(*h, x.(Sequence)) }
func (h *sequenceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
