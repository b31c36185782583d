package vocab

import (
	"errors"
	"fmt"
	"testing"
)

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestInsertOrUpdateUnique(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		s.InsertOrUpdate(Entry{Label: fmt.Sprintf("w%d", i%7), CorrectCount: i})
	}

	if s.Len() != 7 {
		t.Fatalf("Len = %d, want 7", s.Len())
	}
	seen := make(map[string]bool)
	for _, e := range s.Entries() {
		if seen[e.Label] {
			t.Errorf("duplicate label %q", e.Label)
		}
		seen[e.Label] = true
	}
}

func TestInsertOrUpdateReplacesInPlace(t *testing.T) {
	s := New(NewEntry("apple"), NewEntry("pear"), NewEntry("plum"))
	s.InsertOrUpdate(Entry{Label: "pear", CorrectCount: 3, IncorrectCount: 1})

	got := labels(s.Entries())
	want := []string{"apple", "pear", "plum"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	e, _ := s.Get("pear")
	if e.CorrectCount != 3 || e.IncorrectCount != 1 {
		t.Errorf("pear = %+v, want 3/1", e)
	}
}

func TestInsertOrUpdateIgnoresEmptyLabel(t *testing.T) {
	s := New()
	s.InsertOrUpdate(Entry{CorrectCount: 2})
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestRegisterTwice(t *testing.T) {
	s := New()
	if _, added, err := s.Register("apple"); err != nil || !added {
		t.Fatalf("first Register: added=%v err=%v", added, err)
	}
	if _, added, err := s.Register("apple"); err != nil || added {
		t.Fatalf("second Register: added=%v err=%v", added, err)
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0] != (Entry{Label: "apple"}) {
		t.Errorf("entry = %+v, want apple 0/0", entries[0])
	}
}

func TestRegisterPreservesHistory(t *testing.T) {
	s := New(Entry{Label: "apple", CorrectCount: 4, IncorrectCount: 2})

	e, added, err := s.Register("apple")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if added {
		t.Error("added = true for existing word")
	}
	if e.CorrectCount != 4 || e.IncorrectCount != 2 {
		t.Errorf("returned entry = %+v, want 4/2", e)
	}
	stored, _ := s.Get("apple")
	if stored.CorrectCount != 4 || stored.IncorrectCount != 2 {
		t.Errorf("stored entry = %+v, want 4/2", stored)
	}
}

func TestRegisterTrimsAndRejectsBlank(t *testing.T) {
	s := New()
	e, _, err := s.Register("  look up  ")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if e.Label != "look up" {
		t.Errorf("Label = %q, want %q", e.Label, "look up")
	}

	if _, _, err := s.Register("   "); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("err = %v, want ErrEmptyLabel", err)
	}
}

func TestRemove(t *testing.T) {
	s := New(NewEntry("a"), NewEntry("b"), NewEntry("c"))

	if !s.Remove("b") {
		t.Fatal("Remove(b) = false, want true")
	}
	if _, ok := s.Get("b"); ok {
		t.Error("b still present after Remove")
	}
	// Index must follow the shifted entries.
	if e, ok := s.Get("c"); !ok || e.Label != "c" {
		t.Errorf("Get(c) = %+v, %v", e, ok)
	}
	s.InsertOrUpdate(Entry{Label: "c", CorrectCount: 1})
	if got := labels(s.Entries()); len(got) != 2 || got[1] != "c" {
		t.Errorf("entries = %v, want [a c]", got)
	}
}

func TestRemoveMissing(t *testing.T) {
	s := New(Entry{Label: "apple", CorrectCount: 1})
	before, _ := s.Encode()

	if s.Remove("ghost") {
		t.Error("Remove(ghost) = true, want false")
	}

	after, _ := s.Encode()
	if string(before) != string(after) {
		t.Errorf("store changed: %s -> %s", before, after)
	}
}

func TestRecord(t *testing.T) {
	s := New(NewEntry("apple"))

	s.Record("apple", true)
	e, ok := s.Record("apple", false)
	if !ok {
		t.Fatal("Record returned false for present label")
	}
	if e.CorrectCount != 1 || e.IncorrectCount != 1 {
		t.Errorf("entry = %+v, want 1/1", e)
	}
	if _, ok := s.Record("ghost", true); ok {
		t.Error("Record(ghost) = true, want false")
	}
}

func TestSelectFiltersRetired(t *testing.T) {
	s := New(
		Entry{Label: "done", CorrectCount: 5, IncorrectCount: 5},
		Entry{Label: "over", CorrectCount: 12},
		Entry{Label: "fresh"},
		Entry{Label: "close", CorrectCount: 9},
	)

	got := s.Select(10, CompareMastery, 10)
	for _, e := range got {
		if e.Attempts() >= 10 {
			t.Errorf("retired entry %q selected", e.Label)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %v, want fresh and close", labels(got))
	}
}

func TestSelectOrdering(t *testing.T) {
	s := New(
		Entry{Label: "strong", CorrectCount: 4, IncorrectCount: 1},
		Entry{Label: "weak", CorrectCount: 1, IncorrectCount: 3},
		Entry{Label: "new"},
		Entry{Label: "middle", CorrectCount: 1, IncorrectCount: 1},
	)

	got := labels(s.Select(10, CompareMastery, 10))
	want := []string{"new", "weak", "middle", "strong"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSelectTruncatesAndDoesNotMutate(t *testing.T) {
	s := New(
		Entry{Label: "a", CorrectCount: 3},
		Entry{Label: "b", IncorrectCount: 3},
		Entry{Label: "c"},
	)

	got := labels(s.Select(2, CompareMastery, 10))
	if len(got) != 2 || got[0] != "c" || got[1] != "b" {
		t.Errorf("Select(2) = %v, want [c b]", got)
	}
	if order := labels(s.Entries()); order[0] != "a" || order[2] != "c" {
		t.Errorf("store reordered: %v", order)
	}
}

func TestSelectEdgeCases(t *testing.T) {
	s := New(NewEntry("a"), NewEntry("b"))

	tests := []struct {
		name        string
		n           int
		cmp         func(a, b Entry) int
		maxAttempts int
		want        int
	}{
		{"zero n", 0, CompareMastery, 10, 0},
		{"negative n", -1, nil, 10, 0},
		{"nil comparator keeps order", 5, nil, 10, 2},
		{"no retirement", 5, CompareMastery, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Select(tt.n, tt.cmp, tt.maxAttempts)
			if got == nil {
				t.Fatal("Select returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	empty := New().Select(10, CompareMastery, 10)
	if len(empty) != 0 {
		t.Errorf("empty store selected %d entries", len(empty))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := New(
		Entry{Label: "apple", CorrectCount: 1},
		Entry{Label: "look up", IncorrectCount: 2},
		Entry{Label: "pear", CorrectCount: 3, IncorrectCount: 4},
	)

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := s.Entries()
	have := got.Entries()
	if len(have) != len(want) {
		t.Fatalf("got %d entries, want %d", len(have), len(want))
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, have[i], want[i])
		}
	}
}

func TestEncodeShape(t *testing.T) {
	data, err := New().Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty store = %s, want []", data)
	}

	data, _ = New(Entry{Label: "apple", CorrectCount: 1}).Encode()
	want := `[{"label":"apple","correctCount":1,"incorrectCount":0}]`
	if string(data) != want {
		t.Errorf("Encode = %s, want %s", data, want)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "  \n", "[]", "null"} {
		s, err := Decode([]byte(in))
		if err != nil {
			t.Errorf("Decode(%q): %v", in, err)
			continue
		}
		if s.Len() != 0 {
			t.Errorf("Decode(%q) has %d entries", in, s.Len())
		}
	}
}

func TestDecodeNormalizes(t *testing.T) {
	in := `[
		{"label":"apple","correctCount":1,"incorrectCount":0},
		{"label":"","correctCount":9,"incorrectCount":9},
		{"label":"pear","correctCount":-2,"incorrectCount":1},
		{"label":"apple","correctCount":5,"incorrectCount":5}
	]`
	s, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0] != (Entry{Label: "apple", CorrectCount: 5, IncorrectCount: 5}) {
		t.Errorf("apple = %+v, want last duplicate at first position", got[0])
	}
	if got[1].CorrectCount != 0 {
		t.Errorf("pear CorrectCount = %d, want clamped 0", got[1].CorrectCount)
	}
}

func TestDecodeRejectsLegacyShape(t *testing.T) {
	if _, err := Decode([]byte(`["apple","pear"]`)); err == nil {
		t.Error("expected error for plain-string schema")
	}
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	if _, ok := s.Get("apple"); ok {
		t.Error("empty store reported apple")
	}
	if s.Remove("apple") {
		t.Error("Remove on empty store reported removal")
	}

	if _, added, err := s.Register("apple"); err != nil || !added {
		t.Fatalf("Register = %v, %v", added, err)
	}
	s.InsertOrUpdate(Entry{Label: "pear", CorrectCount: 2})
	if _, ok := s.Record("apple", true); !ok {
		t.Error("Record apple failed")
	}

	if got := labels(s.Entries()); fmt.Sprint(got) != "[apple pear]" {
		t.Errorf("Entries = %v", got)
	}
}
