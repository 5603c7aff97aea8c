package detection

import "fmt"

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DefaultReasoning is substituted when the model omits a usable reasoning
// string. The formatter skips reasoning that still equals it.
const DefaultReasoning = "No reasoning provided"

// Indicator is one concrete excerpt cited as evidence for the detection flag.
type Indicator struct {
	Type        string `json:"type"`
	Snippet     string `json:"snippet"`
	Explanation string `json:"explanation"`
}

// Result is the normalized, caller-facing outcome of one analysis. It is
// constructed once from the model's raw reply and never mutated afterwards.
type Result struct {
	AIFlag          bool        `json:"aiFlag"`
	Confidence      Confidence  `json:"confidence"`
	CategoriesFound []string    `json:"categoriesFound"`
	Indicators      []Indicator `json:"indicators"`
	Reasoning       string      `json:"reasoning"`
}

// MalformedReplyError is the only fatal normalization failure: the reply is
// not JSON, or the required flag field is absent or not a boolean. Callers
// catch it and substitute NewErrorResult rather than failing the request.
type MalformedReplyError struct {
	Reason string
	Err    error
}

func (e *MalformedReplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model reply: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed model reply: %s", e.Reason)
}

func (e *MalformedReplyError) Unwrap() error {
	return e.Err
}

// NewErrorResult builds a safe placeholder for "an error occurred" without
// fabricating a model answer.
func NewErrorResult(description string) *Result {
	return &Result{
		AIFlag:          false,
		Confidence:      ConfidenceLow,
		CategoriesFound: []string{},
		Indicators:      []Indicator{},
		Reasoning:       fmt.Sprintf("Analysis could not be completed: %s", description),
	}
}
