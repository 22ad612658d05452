package books

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the caseless form of s. A Caser carries state, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}

func compareFold(a, b string) int {
	return strings.Compare(fold(a), fold(b))
}

func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}
