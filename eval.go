package calcute

import (
	"io"
	"strconv"
	"strings"
)

// Eval evaluates a machine-form expression, e.g. "2+3*4". Operators apply
// strictly left to right with no precedence, so "2+3*4" is 20. The expression
// may begin with a single "-" to negate its first number.
//
// Division by zero is not an error: the result is ±Inf, or NaN for 0/0.
func Eval(src io.RuneScanner) (float64, error) {
	l := lex(src)
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	neg := false
	if tok.kind == tokenOp && tok.text == "-" {
		neg = true
		if tok, err = l.next(); err != nil {
			return 0, err
		}
	}
	acc, err := operand(tok)
	if err != nil {
		return 0, err
	}
	if neg {
		acc = -acc
	}
	for {
		op, err := l.next()
		if err != nil {
			return 0, err
		}
		switch op.kind {
		case tokenEOF:
			return acc, nil
		case tokenOp: // do nothing
		default:
			return 0, &SyntaxError{Col: op.pos, Token: op.text, Want: "operator"}
		}
		tok, err := l.next()
		if err != nil {
			return 0, err
		}
		x, err := operand(tok)
		if err != nil {
			return 0, err
		}
		acc = apply(op.text, acc, x)
	}
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// operand converts a number token to its value.
func operand(tok lexToken) (float64, error) {
	if tok.kind != tokenNum {
		return 0, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "number"}
	}
	x, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		// ParseFloat only fails on range for lexed numbers, and then it
		// still gives ±Inf, which is what we want.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return x, nil
		}
		return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	return x, nil
}

func apply(op string, x, y float64) float64 {
	switch op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	case "/":
		return x / y
	default:
		panic("calcute: invalid operator " + strconv.Quote(op))
	}
}
