package types

// Sentence is one sentence of the input with its tagged tokens.
type Sentence struct {
	Text   string
	Tokens []TaggedToken
}
