package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Minus is the typographic minus sign used in all displayed expressions.
const Minus = "−"

// Round rounds x to the given number of decimal places, halves away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// IsWhole reports whether x has no fractional part.
func IsWhole(x float64) bool {
	return x == math.Trunc(x)
}

// Number formats x as an integer when it is whole, otherwise to one decimal
// place.
func Number(x float64) string {
	if IsWhole(x) {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}
	return strconv.FormatFloat(Round(x, 1), 'f', 1, 64)
}

// Plain formats x with the fewest digits that round-trip, e.g. 2.5 or 3.
func Plain(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Currency formats an amount in pounds, with pence only when the amount is
// not whole: £30, £12.50.
func Currency(amount float64) string {
	if IsWhole(amount) {
		return "£" + strconv.FormatFloat(amount, 'f', 0, 64)
	}
	return "£" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// Ratio joins the parts with colons: 2:3:5.
func Ratio(parts []int) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ":")
}

// Parts returns "part" or "parts" prefixed by n.
func Parts(n int) string {
	if n == 1 {
		return "1 part"
	}
	return strconv.Itoa(n) + " parts"
}

// Signed renders n with the typographic minus when negative.
func Signed(n int) string {
	if n < 0 {
		return Minus + strconv.Itoa(-n)
	}
	return strconv.Itoa(n)
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// Power renders v raised to p: "" for p == 0, "x" for 1, "x²" above.
func Power(v string, p int) string {
	switch {
	case p <= 0:
		return ""
	case p == 1:
		return v
	}
	var b strings.Builder
	b.WriteString(v)
	for _, r := range strconv.Itoa(p) {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}

// Term renders coeff·body with an implicit coefficient of 1 and a leading
// minus for negatives: Term(1, "x") = "x", Term(-1, "x") = "−x",
// Term(3, "") = "3".
func Term(coeff int, body string) string {
	if body == "" {
		return Signed(coeff)
	}
	switch coeff {
	case 1:
		return body
	case -1:
		return Minus + body
	}
	return Signed(coeff) + body
}

// Polynomial joins signed terms with " + " and " − " separators, dropping
// zero coefficients. Terms are given highest power first. An expression with
// no non-zero term renders as "0".
func Polynomial(terms []PolyTerm) string {
	var b strings.Builder
	for _, t := range terms {
		if t.Coeff == 0 {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(Term(t.Coeff, t.Body))
			continue
		}
		if t.Coeff < 0 {
			b.WriteString(" " + Minus + " ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(Term(abs(t.Coeff), t.Body))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// PolyTerm is one coefficient and its variable part for Polynomial.
type PolyTerm struct {
	Coeff int
	Body  string
}
