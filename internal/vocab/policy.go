package vocab

import "cmp"

// CompareMastery orders entries by ascending mastery so the weakest word
// sorts first.
//
// When either entry has never been attempted the one with fewer attempts
// wins, so a new word always outranks a practiced one and two new words tie.
// Otherwise the entry with the lower accuracy sorts first.
func CompareMastery(a, b Entry) int {
	at, bt := a.Attempts(), b.Attempts()
	if at == 0 || bt == 0 {
		return cmp.Compare(at, bt)
	}
	return cmp.Compare(a.Accuracy(), b.Accuracy())
}
