// Package export turns generated questions into portable worksheet
// documents.
package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathtools/internal/problemgen"
)

// Document is an exported worksheet.
type Document struct {
	ID             string    `json:"id"`
	Tool           string    `json:"tool"`
	CreatedAt      time.Time `json:"createdAt"`
	Differentiated bool      `json:"differentiated"`
	Items          []Item    `json:"questions"`
}

// Item is one numbered question with its answer and working.
type Item struct {
	Number   int    `json:"number"`
	Level    string `json:"level"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Unit     string `json:"unit,omitempty"`
	Working  []Step `json:"working"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Step is an exported working step.
type Step struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Lines []string `json:"lines,omitempty"`
	Ratio []string `json:"ratio,omitempty"`
	Bars  []Bar    `json:"bars,omitempty"`
}

// Bar is an exported bar-model row.
type Bar struct {
	Label    string  `json:"label"`
	Boxes    int     `json:"boxes"`
	BoxValue float64 `json:"boxValue,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
}

// NewDocument builds a document for the questions in order, numbered from 1.
func NewDocument(tool string, questions []problemgen.Question, differentiated bool) Document {
	doc := Document{
		ID:             uuid.New().String(),
		Tool:           tool,
		CreatedAt:      time.Now().UTC(),
		Differentiated: differentiated,
		Items:          make([]Item, len(questions)),
	}
	for i, q := range questions {
		doc.Items[i] = NewItem(i+1, q)
	}
	return doc
}

// NewItem converts one question.
func NewItem(number int, q problemgen.Question) Item {
	item := Item{
		Number:   number,
		Level:    string(q.Difficulty),
		Question: q.Display,
		Answer:   q.Answer,
		Working:  make([]Step, 0, len(q.Working)),
		Fallback: q.Fallback,
	}
	if final, ok := q.FinalStep(); ok {
		item.Unit = final.Unit
	}
	for _, ws := range q.Working {
		if ws.Kind == problemgen.StepFinal {
			continue
		}
		s := Step{Kind: string(ws.Kind), Text: ws.Text, Lines: ws.Lines, Ratio: ws.Ratio}
		for _, b := range ws.Bars {
			s.Bars = append(s.Bars, Bar{Label: b.Label, Boxes: b.Boxes, BoxValue: b.BoxValue, Amount: b.Amount})
		}
		item.Working = append(item.Working, s)
	}
	return item
}
