package problemgen

import (
	"fmt"
	"strconv"
)

// counterGen yields questions keyed by a draw in [0, space).
type counterGen struct {
	space int
	calls int
}

func (g *counterGen) Generate(r Rand, in GenerateInput) Question {
	g.calls++
	n := r.IntN(g.space)
	return Question{
		Display:    fmt.Sprintf("Q%d", n),
		Answer:     strconv.Itoa(n),
		Working:    []WorkingStep{Final(strconv.Itoa(n), "")},
		Values:     map[string]any{"n": n},
		Difficulty: in.Level,
	}
}

func (g *counterGen) Fallback(in GenerateInput) Question {
	return Question{
		Display:    "Q0",
		Answer:     "0",
		Working:    []WorkingStep{Final("0", "")},
		Values:     map[string]any{"n": 0},
		Difficulty: Level1,
	}
}

func (g *counterGen) Key(q Question) string { return q.Display }

// brokenGen produces questions whose working disagrees with the answer.
type brokenGen struct{ counterGen }

func (g *brokenGen) Generate(r Rand, in GenerateInput) Question {
	q := g.counterGen.Generate(r, in)
	q.Answer = "wrong"
	return q
}
