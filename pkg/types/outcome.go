package types

// Outcome is the tri-state result of a search.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not-found"
	OutcomeError    Outcome = "error"
)

// OutcomeOf returns OutcomeFound or OutcomeNotFound depending on found.
func OutcomeOf(found bool) Outcome {
	if found {
		return OutcomeFound
	}
	return OutcomeNotFound
}
