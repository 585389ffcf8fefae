package puzzle

import "strconv"

type kind uint8

const (
	kindNone kind = iota
	kindInt
	kindText
)

// Answer is the result of one puzzle part.
// The zero value is a None without a reason.
type Answer struct {
	kind   kind
	num    int
	text   string
	reason string
}

// Int returns a numeric Answer.
func Int(n int) Answer { return Answer{kind: kindInt, num: n} }

// Text returns a textual Answer; it may span several lines.
func Text(s string) Answer { return Answer{kind: kindText, text: s} }

// None returns an Answer stating that no result exists.
func None(reason string) Answer { return Answer{kind: kindNone, reason: reason} }

// OK reports whether the Answer holds a value.
func (a Answer) OK() bool { return a.kind != kindNone }

// Value returns the numeric value and whether the Answer is numeric.
func (a Answer) Value() (int, bool) { return a.num, a.kind == kindInt }

// Reason returns why a None answer has no result.
func (a Answer) Reason() string { return a.reason }

// String renders the value, or "no result (reason)" for None.
func (a Answer) String() string {
	switch a.kind {
	case kindInt:
		return strconv.Itoa(a.num)
	case kindText:
		return a.text
	}
	if a.reason == "" {
		return "no result"
	}

	return "no result (" + a.reason + ")"
}
