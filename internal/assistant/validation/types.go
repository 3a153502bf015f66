package validation

// Verdict is the critic's scored assessment of a candidate answer. It is
// ephemeral: produced during the loop, discarded after it completes.
type Verdict struct {
	Score          int      `json:"score"` // 1-10
	IsSatisfactory bool     `json:"is_satisfactory"`
	Issues         []string `json:"issues"`
}

// Result is the loop's outcome. Content is always non-empty.
type Result struct {
	Content    string
	Rounds     int
	FinalScore int
	ForcedStop bool // true when the round bound or deadline forced acceptance
}
