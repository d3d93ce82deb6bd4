package types

const (
	ActionProcess        = "process"
	ActionProcessWithNER = "process-ner"
	ActionExtract        = "extract"
	ActionStanford       = "stanford"
	ActionRemoveStops    = "remove-stops"
	ActionLemmatize      = "lemmatize"
	ActionSpeechTag      = "speech-tag"
)

type Response struct {
	Id         string            `json:"id"`
	Action     string            `json:"action"`
	Items      []string          `json:"items"`
	Text       string            `json:"text"`
	Tagged     []TaggedToken     `json:"tagged,omitempty"`
	Entities   []EntitySpan      `json:"entities,omitempty"`
	Labels     []LabeledToken    `json:"labels,omitempty"`
	Normalized []NormalizedToken `json:"normalized,omitempty"`
	Unresolved []string          `json:"unresolved,omitempty"`
}
