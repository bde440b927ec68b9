package model

import "sort"

// Question is a single quiz entry reconstructed from the question bank
type Question struct {
	ID             int    `json:"id"`             // Sequential, 1-based, gap-free
	Course         string `json:"course"`         // 체험 or 탐구
	Month          int    `json:"month"`          // 1-12
	Topic          string `json:"topic"`          // Monthly topic for the course
	Difficulty     string `json:"difficulty"`     // 하, 중, 상, 최상
	QuestionNumber int    `json:"questionNumber"` // Number within its section, not unique
	QuestionText   string `json:"questionText"`   // Whitespace-collapsed question body
	Answer         string `json:"answer"`         // Raw answer text, may list several items
}

// Filter selects questions by their context. Zero values match everything.
type Filter struct {
	Course     string
	Month      int
	Difficulty string
	Topic      string
}

// Match reports whether q satisfies every non-empty field of f
func (f Filter) Match(q Question) bool {
	if f.Course != "" && q.Course != f.Course {
		return false
	}
	if f.Month != 0 && q.Month != f.Month {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	if f.Topic != "" && q.Topic != f.Topic {
		return false
	}
	return true
}

// Apply returns the matching questions ordered by month, then question number
func (f Filter) Apply(questions []Question) []Question {
	var out []Question
	for _, q := range questions {
		if f.Match(q) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].QuestionNumber < out[j].QuestionNumber
	})
	return out
}
