package ratio

import "github.com/abhisek/mathtools/internal/problemgen"

// twoPartRetries bounds redraws of a sharing question to keep it two-part.
const twoPartRetries = 10

// Mixed picks sharing, known-amount or difference questions at random.
type Mixed struct {
	share      *Share
	known      *Known
	difference *Difference
}

// NewMixed returns the mixed sharing generator.
func NewMixed() *Mixed {
	return &Mixed{share: NewShare(), known: NewKnown(), difference: NewDifference()}
}

func (m *Mixed) Generate(r problemgen.Rand, in problemgen.GenerateInput) problemgen.Question {
	// Sub-generators pick their own question type.
	sub := problemgen.GenerateInput{Level: in.Level, Config: problemgen.GenerationConfig{Options: in.Config.Options}}

	var q problemgen.Question
	kind := problemgen.Pick(r, []string{"sharing", "known", "difference"})
	switch kind {
	case "sharing":
		q = m.share.Generate(r, sub)
		for i := 0; i < twoPartRetries && len(q.Values["ratioParts"].([]int)) > 2; i++ {
			q = m.share.Generate(r, sub)
		}
	case "known":
		q = m.known.Generate(r, sub)
	default:
		q = m.difference.Generate(r, sub)
	}
	q.Values["mixedType"] = kind
	return q
}

func (m *Mixed) Fallback(in problemgen.GenerateInput) problemgen.Question {
	return m.share.Fallback(in)
}

func (m *Mixed) Key(q problemgen.Question) string { return displayKey(q) }

func (m *Mixed) Validators() []problemgen.Validator {
	return []problemgen.Validator{&SharesValidator{}}
}
