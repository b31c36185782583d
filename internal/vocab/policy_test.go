package vocab

import "testing"

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompareMastery(t *testing.T) {
	tests := []struct {
		name string
		a, b Entry
		want int
	}{
		{"new before attempted", Entry{}, Entry{CorrectCount: 1}, -1},
		{"attempted after new", Entry{IncorrectCount: 4}, Entry{}, 1},
		{"new before failing word", Entry{}, Entry{IncorrectCount: 1}, -1},
		{"two new words tie", Entry{Label: "a"}, Entry{Label: "b"}, 0},
		{"lower accuracy first", Entry{CorrectCount: 1, IncorrectCount: 3}, Entry{CorrectCount: 3, IncorrectCount: 1}, -1},
		{"higher accuracy last", Entry{CorrectCount: 2}, Entry{CorrectCount: 1, IncorrectCount: 1}, 1},
		{"equal accuracy ties", Entry{CorrectCount: 1, IncorrectCount: 1}, Entry{CorrectCount: 3, IncorrectCount: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(CompareMastery(tt.a, tt.b)); got != tt.want {
				t.Errorf("CompareMastery = %d, want %d", got, tt.want)
			}
			if got := sign(CompareMastery(tt.b, tt.a)); got != -tt.want {
				t.Errorf("CompareMastery reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestAccuracy(t *testing.T) {
	if got := (Entry{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy of new entry = %v, want 0", got)
	}
	if got := (Entry{CorrectCount: 3, IncorrectCount: 1}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestRetired(t *testing.T) {
	e := Entry{CorrectCount: 5, IncorrectCount: 5}
	if !e.Retired(10) {
		t.Error("5/5 should be retired at 10")
	}
	if e.Retired(11) {
		t.Error("5/5 should not be retired at 11")
	}
	if e.Retired(0) {
		t.Error("maxAttempts 0 should disable retirement")
	}
}
