package intent

import "context"

// Kind is a top-level dispatch intent.
type Kind string

const (
	// KindStructuredQuery asks about an attribute of the current painting.
	KindStructuredQuery Kind = "structured-query"
	// KindKnowledgeLookup is a free-form question for the knowledge base.
	KindKnowledgeLookup Kind = "knowledge-lookup"
)

// SubKind refines a structured query to one painting attribute.
type SubKind string

const (
	SubAuthor    SubKind = "author"
	SubDate      SubKind = "date"
	SubName      SubKind = "name"
	SubStyle     SubKind = "style"
	SubTechnique SubKind = "technique"
)

// Result is the recognizer's verdict for one utterance. Top carries the raw
// label so unrecognized intents can be echoed back verbatim.
type Result struct {
	Top    string
	Sub    SubKind
	Scores map[string]float64
}

// Recognizer classifies a pivot-language utterance into a top-level intent
// and, for structured queries, a sub-intent.
type Recognizer interface {
	Recognize(ctx context.Context, utterance string) (Result, error)
}
