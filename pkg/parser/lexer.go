// Package parser extracts numeric tokens from lines of an OLGA tab file.
package parser

import (
	"strconv"
	"strings"
)

// Floats returns every floating-point number embedded in line, in
// left-to-right order. A token is: optional sign, optional leading decimal
// point, digits with optional ",ddd" thousands groups, optional fraction,
// optional exponent. Tokens need no delimiter between them beyond what the
// grammar implies: a sign character ends the previous token and starts the
// next one, so "1.5-2e3" yields 1.5 and -2000. Returns nil when the line
// carries no number.
func Floats(line string) []float64 {
	var out []float64
	for i := 0; i < len(line); {
		start, end, ok := scanNumber(line, i)
		if !ok {
			i++
			continue
		}
		tok := line[start:end]
		if strings.ContainsRune(tok, ',') {
			tok = strings.ReplaceAll(tok, ",", "")
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err == nil {
			out = append(out, v)
		}
		i = end
	}
	return out
}

// Ints returns the integer tokens of line, truncating any fractional part.
func Ints(line string) []int {
	ff := Floats(line)
	if ff == nil {
		return nil
	}
	ii := make([]int, len(ff))
	for k, f := range ff {
		ii[k] = int(f)
	}
	return ii
}

// scanNumber tries to read one numeric token starting exactly at position i
// and reports its bounds. The caller advances by one byte on failure.
func scanNumber(s string, i int) (start, end int, ok bool) {
	start = i
	j := i

	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	hasDot := false
	if j < len(s) && s[j] == '.' {
		hasDot = true
		j++
	}
	// at least one digit is mandatory
	if j >= len(s) || !isDigit(s[j]) {
		return 0, 0, false
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}

	// thousands groups: a comma followed by exactly three digits
	for j+3 < len(s) && s[j] == ',' && isDigit(s[j+1]) && isDigit(s[j+2]) && isDigit(s[j+3]) {
		j += 4
	}

	// fraction; a second dot ends the token, so "1.2.3" is 1.2 then .3
	if !hasDot && j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}

	// exponent marker counts only when digits follow it
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			j = k
		}
	}

	return start, j, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
