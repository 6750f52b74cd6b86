package types

// Snippet contains context around a match.
type Snippet struct {
	Before   string `json:"before,omitempty"` // text before the match
	Matching string `json:"matching"`         // the matched text as it appears in the file
	After    string `json:"after,omitempty"`  // text after the match
}
