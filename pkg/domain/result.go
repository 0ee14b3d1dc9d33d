package domain

// Mode tags an engine result as either a question (the conversation
// continues) or a statement (the dialog terminated for this turn).
type Mode string

const (
	ModeQuestion  Mode = "question"
	ModeStatement Mode = "statement"
)

// DefaultSeparator joins a completed step's result text with its transition
// prompt when both are rendered in a single question.
const DefaultSeparator = "..."

// Result is the only outward-facing outcome of an Advance call.
type Result struct {
	Mode Mode   `json:"mode"`
	Text string `json:"text"`

	// Slot names the slot being prompted for, when the question asks for
	// one. Transition questions leave it empty.
	Slot string `json:"slot,omitempty"`

	// Step names the step whose handler produced the text, if any.
	Step string `json:"step,omitempty"`
}

// IsQuestion reports whether the result still expects user input.
func (r Result) IsQuestion() bool {
	return r.Mode == ModeQuestion
}
