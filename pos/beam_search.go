package pos

import (
	"container/heap"
	"sort"
)

const minSequenceScore = -100000

// BeamSearch keeps the size best partial tag sequences per position.
type BeamSearch struct {
	model     Model
	size      int
	context   ContextGenerator
	validator SequenceValidator
}

func NewBeamSearch(model Model, size int, context ContextGenerator, validator SequenceValidator) *BeamSearch {
	return &BeamSearch{model: model, size: size, context: context, validator: validator}
}

// Best returns the highest scoring sequence, or false when no valid
// sequence exists.
func (b *BeamSearch) Best(tokens []string) (Sequence, bool) {
	prev := &sequenceHeap{{}}
	heap.Init(prev)

	for i := range tokens {
		next := &sequenceHeap{}

		for sc := 0; prev.Len() > 0 && sc < b.size; sc++ {
			top := heap.Pop(prev).(Sequence)
			scores := b.model.Eval(b.context.GetContext(i, tokens, top.Outcomes))
			if len(scores) == 0 {
				continue
			}

			min := b.threshold(scores)
			expanded := b.expand(next, top, i, tokens, scores, min)
			if expanded == 0 {
				b.expand(next, top, i, tokens, scores, 0)
			}
		}

		prev = next
	}

	if prev.Len() == 0 {
		return Sequence{}, false
	}
	return heap.Pop(prev).(Sequence), true
}

func (b *BeamSearch) threshold(scores []float64) float64 {
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	idx := len(sorted) - b.size
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

func (b *BeamSearch) expand(next *sequenceHeap, top Sequence, i int, tokens []string, scores []float64, min float64) int {
	added := 0
	for p, score := range scores {
		if score < min {
			continue
		}

		out := b.model.Outcomes[p]
		if !b.validator.ValidSequence(i, tokens, out) {
			continue
		}

		ns := top.Expand(out, score)
		if ns.Score > minSequenceScore {
			heap.Push(next, ns)
			added++
		}
	}
	return added
}
