package resample

import (
	"fmt"
	"math"
	"strconv"
)

// parseNumber converts a single token to a finite float64. Tokens are checked
// against an explicit grammar (optional sign, digits, optional decimal point,
// optional exponent) before conversion, so inputs like "NaN", "Inf" or hex
// floats are rejected instead of silently accepted by strconv.
func parseNumber(tok string) (float64, error) {
	if !validNumber(tok) {
		return 0, fmt.Errorf("%q is not a number", tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is out of range", tok)
	}
	return v, nil
}

// validNumber reports whether tok matches
//
//	[+-]? ( digits [ "." digits? ] | "." digits ) ( [eE] [+-]? digits )?
func validNumber(tok string) bool {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	intDigits := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			fracDigits++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(tok) && isDigit(tok[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(tok)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
