package vocab

// Entry is one tracked word and its answer history.
type Entry struct {
	Label          string `json:"label"`
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
}

// NewEntry returns a never-attempted entry for label.
func NewEntry(label string) Entry {
	return Entry{Label: label}
}

// Attempts returns the total number of resolved answers.
func (e Entry) Attempts() int {
	return e.CorrectCount + e.IncorrectCount
}

// Accuracy returns CorrectCount / Attempts, or 0 for a never-attempted entry.
func (e Entry) Accuracy() float64 {
	total := e.Attempts()
	if total == 0 {
		return 0
	}
	return float64(e.CorrectCount) / float64(total)
}

// Retired reports whether the entry has reached maxAttempts and should no
// longer be quizzed. A non-positive maxAttempts never retires anything.
func (e Entry) Retired(maxAttempts int) bool {
	return maxAttempts > 0 && e.Attempts() >= maxAttempts
}
