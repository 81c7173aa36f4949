package sortable

import (
	"strings"

	"facette.io/natsort"
)

// String orders strings byte-wise, as the < operator does.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings so that embedded numbers compare by value:
// "node2" < "node10", and plain numbers such as "5" < "10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// maxNativeDigits is the longest digit run natsort can always parse as an int.
const maxNativeDigits = 18

// LessThan delegates to natsort unless either string holds a digit run too long for an
// int, in which case chunks are compared by naturalLess. When the chunks cannot tell the
// two apart (for example "05" and "5") byte order decides.
func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	a, b := string(s), string(other)

	if longestDigitRun(a) > maxNativeDigits || longestDigitRun(b) > maxNativeDigits {
		return naturalLess(a, b)
	}

	before := natsort.Compare(a, b)
	after := natsort.Compare(b, a)

	if before != after {
		return before
	}

	return a < b
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func longestDigitRun(s string) int {
	longest, run := 0, 0

	for i := range len(s) {
		if isDigit(s[i]) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	return longest
}

// chunks splits s into alternating runs of digits and non-digits.
func chunks(s string) []string {
	var out []string

	for start := 0; start < len(s); {
		end := start + 1
		for end < len(s) && isDigit(s[end]) == isDigit(s[start]) {
			end++
		}

		out = append(out, s[start:end])
		start = end
	}

	return out
}

// compareChunk compares two digit runs by numeric value of any length, and anything
// else byte-wise.
func compareChunk(a, b string) int {
	if !isDigit(a[0]) || !isDigit(b[0]) {
		return strings.Compare(a, b)
	}

	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

// naturalLess orders a and b chunk by chunk, with fewer chunks first on a common prefix
// and byte order as the final tie-break. It agrees with natsort wherever every digit run
// fits in an int.
func naturalLess(a, b string) bool {
	ca, cb := chunks(a), chunks(b)

	for i := range min(len(ca), len(cb)) {
		if c := compareChunk(ca[i], cb[i]); c != 0 {
			return c < 0
		}
	}

	if len(ca) != len(cb) {
		return len(ca) < len(cb)
	}

	return a < b
}
