// Package puzzle holds the vocabulary shared by every daily solution:
// the Answer a part produces, the Solver signature, the Day descriptor the
// runner works with, and a few input-splitting helpers.
//
// Answers
//
//	An Answer is a number, a text, or None. None stands for a logical
//	impossibility (no path, no marker) and carries a reason; it is a result,
//	not an error.
//
// Errors
//
//	Malformed input is reported by wrapping ErrMalformedInput with the
//	offending line, so callers can test errors.Is(err, ErrMalformedInput).
package puzzle
