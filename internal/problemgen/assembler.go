package problemgen

// Worksheet bounds. Callers clamp counts before assembling.
const (
	MinWorksheetCount = 1
	MaxWorksheetCount = 20
)

// UniqueAttempts bounds the search for an unseen key per worksheet slot.
const UniqueAttempts = 100

// KeySet records the uniqueness keys already used in a batch.
type KeySet map[string]struct{}

// Has reports whether key was recorded.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add records key.
func (s KeySet) Add(key string) { s[key] = struct{}{} }

// ClampCount limits n to the supported worksheet size.
func ClampCount(n int) int {
	return max(MinWorksheetCount, min(n, MaxWorksheetCount))
}

// GenerateUnique draws questions until one has a key not in used, giving up
// after UniqueAttempts and accepting the last draw. The returned question's
// key is added to used.
func GenerateUnique(g Generator, r Rand, in GenerateInput, used KeySet) Question {
	var q Question
	for attempt := 0; attempt < UniqueAttempts; attempt++ {
		q = g.Generate(r, in)
		if !used.Has(g.Key(q)) {
			break
		}
	}
	used.Add(g.Key(q))
	return q
}

// WorksheetRequest describes one batch of questions.
type WorksheetRequest struct {
	// Count is the number of questions per tier.
	Count int

	// Differentiated generates Count questions at each tier, tier-major,
	// instead of Count questions at Level.
	Differentiated bool

	Level  Difficulty
	Config GenerationConfig
}

// Levels returns the tiers the request covers, in output order.
func (req WorksheetRequest) Levels() []Difficulty {
	if req.Differentiated {
		return AllDifficulties()
	}
	return []Difficulty{req.Level}
}

// GenerateWorksheet assembles the requested questions, deduplicated across
// the whole batch, each stamped with the tier it was generated for.
func GenerateWorksheet(g Generator, r Rand, req WorksheetRequest) []Question {
	levels := req.Levels()
	used := make(KeySet)
	out := make([]Question, 0, len(levels)*req.Count)
	for _, level := range levels {
		in := GenerateInput{Level: level, Config: req.Config}
		for range req.Count {
			q := GenerateUnique(g, r, in, used)
			q.Difficulty = level
			out = append(out, q)
		}
	}
	return out
}
