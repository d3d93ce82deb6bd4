package pos

import (
	"encoding/json"
	"math"
	"os"
)

type Context struct {
	Outcomes   []int     `json:"outcomes"`
	Parameters []float64 `json:"parameters"`
}

type EvalParameters struct {
	Params        []Context `json:"params"`
	NumOfOutcomes int       `json:"numOfOutcomes"`
}

// Model is a maximum-entropy tagging model exported as JSON.
type Model struct {
	Probs      []float64      `json:"probs"`
	Outcomes   []string       `json:"outcomes"`
	PMap       map[string]int `json:"pmap"`
	EvalParams EvalParameters `json:"evalParams"`
	// TagDictionary optionally restricts the tags allowed for a word.
	TagDictionary map[string][]string `json:"tagDictionary,omitempty"`
}

// Eval returns the normalized probability of every outcome given the
// active context predicates. Unknown predicates are ignored.
func (m Model) Eval(predicates []string) []float64 {
	sums := make([]float64, m.EvalParams.NumOfOutcomes)
	copy(sums, m.Probs)

	for _, pred := range predicates {
		ci, isOk := m.PMap[pred]
		if !isOk || ci >= len(m.EvalParams.Params) {
			continue
		}

		ctx := m.EvalParams.Params[ci]
		for ai, oid := range ctx.Outcomes {
			sums[oid] += ctx.Parameters[ai]
		}
	}

	normal := 0.0
	for oid := range sums {
		sums[oid] = math.Exp(sums[oid])
		normal += sums[oid]
	}
	for oid := range sums {
		sums[oid] /= normal
	}

	return sums
}

func LoadModelFromFile(modelFilePath string) (Model, error) {
	var m Model
	buf, err := os.ReadFile(modelFilePath)
	if err != nil {
		return m, err
	}

	err = json.Unmarshal(buf, &m)
	return m, err
}
