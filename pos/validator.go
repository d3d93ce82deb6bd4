package pos

type SequenceValidator interface {
	ValidSequence(i int, tokens []string, outcome string) bool
}

// dictionaryValidator accepts any tag for words missing from the dictionary.
type dictionaryValidator struct {
	tagDictionary map[string]map[string]bool
}

func (v dictionaryValidator) ValidSequence(i int, tokens []string, outcome string) bool {
	if v.tagDictionary == nil {
		return true
	}

	tags, found := v.tagDictionary[tokens[i]]
	if !found {
		return true
	}
	return tags[outcome]
}

func NewSequenceValidator(dict map[string][]string) SequenceValidator {
	if len(dict) == 0 {
		return dictionaryValidator{}
	}

	v := dictionaryValidator{tagDictionary: make(map[string]map[string]bool, len(dict))}
	for word, tags := range dict {
		set := make(map[string]bool, len(tags))
		for _, t := range tags {
			set[t] = true
		}
		v.tagDictionary[word] = set
	}
	return v
}
