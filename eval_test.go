package calcute_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calcute"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"frac", "12.5", 12.5},
		{"lead-point", ".5+.5", 1},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"left-to-right", "2+3*4", 20},
		{"left-to-right-div", "10/2-3", 2},
		{"neg", "-3+2", -1},
		{"div-zero", "5/0", math.Inf(1)},
		{"div-zero-neg", "1-2/0", math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcute.EvalString(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalNaN(t *testing.T) {
	r, err := calcute.EvalString("0/0")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(r) {
		t.Errorf("want NaN, got %g", r)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
		lex  bool
	}{
		{"empty", "", 1, false},
		{"lead-op", "+1", 1, false},
		{"double-neg", "--1", 2, false},
		{"trailing-op", "1+", 3, false},
		{"double-op", "1++2", 3, false},
		{"double-point", "1..2", 4, true},
		{"letter", "1a", 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calcute.EvalString(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			var ierr calcute.InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("error %#v is not an InputError", err)
			}
			if ierr.Pos() != c.pos {
				t.Errorf("wrong position for %q: want %d, got %d (%v)", c.src, c.pos, ierr.Pos(), err)
			}
			var lerr *calcute.LexError
			if errors.As(err, &lerr) != c.lex {
				t.Errorf("%q: want lex error %t, got %#v", c.src, c.lex, err)
			}
		})
	}
}
