package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 31.4, Round(31.42592, 1))
	assert.Equal(t, 2.5, Round(2.45, 1))
	assert.Equal(t, -2.5, Round(-2.45, 1))
	assert.Equal(t, 3.14, Round(3.142592, 2))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "10", Number(10))
	assert.Equal(t, "31.4", Number(31.42592))
	assert.Equal(t, "2.5", Number(2.5))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "£30", Currency(30))
	assert.Equal(t, "£12.50", Currency(12.5))
	assert.Equal(t, "£7.25", Currency(7.25))
}

func TestParts(t *testing.T) {
	assert.Equal(t, "1 part", Parts(1))
	assert.Equal(t, "5 parts", Parts(5))
}

func TestPower(t *testing.T) {
	assert.Equal(t, "", Power("x", 0))
	assert.Equal(t, "x", Power("x", 1))
	assert.Equal(t, "x²", Power("x", 2))
	assert.Equal(t, "y³", Power("y", 3))
}

func TestTerm(t *testing.T) {
	assert.Equal(t, "x", Term(1, "x"))
	assert.Equal(t, "−x", Term(-1, "x"))
	assert.Equal(t, "3x²", Term(3, "x²"))
	assert.Equal(t, "−4", Term(-4, ""))
	assert.Equal(t, "1", Term(1, ""))
}

func TestPolynomial(t *testing.T) {
	tests := []struct {
		name  string
		terms []PolyTerm
		want  string
	}{
		{"simple", []PolyTerm{{3, "x"}, {12, ""}}, "3x + 12"},
		{"negative constant", []PolyTerm{{6, "x"}, {-15, ""}}, "6x − 15"},
		{"leading negative", []PolyTerm{{-2, "x²"}, {1, "x"}}, "−2x² + x"},
		{"unit negative", []PolyTerm{{4, "x"}, {-1, ""}}, "4x − 1"},
		{"zero dropped", []PolyTerm{{0, "x³"}, {5, "x"}, {0, ""}}, "5x"},
		{"all zero", []PolyTerm{{0, "x"}, {0, ""}}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Polynomial(tt.terms))
		})
	}
}
