package calcute

import "strconv"

// SyntaxError is an error indicating a token in a position where the
// expression grammar does not allow it. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the text of the offending token. It is empty at the end of
	// input.
	Token string
	// Want describes what the evaluator expected instead, e.g. "number".
	Want string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "expected "+err.Want+" at end of expression")
	}
	return errpos(err.Col, "expected "+err.Want+", got "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
