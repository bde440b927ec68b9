package ui

import (
	"strings"

	"github.com/goldenbell/qbank/internal/grading"
	"github.com/goldenbell/qbank/internal/model"
)

// Result is the outcome of answering or skipping one question
type Result struct {
	Correct       bool
	Skipped       bool
	CorrectAnswer string
	Points        int // Including any combo bonus
	Combo         int
}

// Summary totals a finished drill
type Summary struct {
	Total    int
	Answered int
	Correct  int
	Score    int
	MaxCombo int
}

// Session tracks progress through a list of questions
type Session struct {
	all       []model.Question
	questions []model.Question // Current round
	index     int
	attempts  map[int]int // Keyed by question ID
	answered  map[int]bool
	correct   map[int]bool
	score     int
	combo     int
	maxCombo  int
}

// NewSession starts a drill at the first question
func NewSession(questions []model.Question) *Session {
	return &Session{
		all:       questions,
		questions: questions,
		attempts:  make(map[int]int),
		answered:  make(map[int]bool),
		correct:   make(map[int]bool),
	}
}

// Current returns the question under the cursor
func (s *Session) Current() model.Question {
	return s.questions[s.index]
}

// Index returns the zero-based cursor position
func (s *Session) Index() int { return s.index }

// Len returns the number of questions in the drill
func (s *Session) Len() int { return len(s.questions) }

// HasNext reports whether a question follows the current one
func (s *Session) HasNext() bool { return s.index < len(s.questions)-1 }

// HasPrev reports whether a question precedes the current one
func (s *Session) HasPrev() bool { return s.index > 0 }

// Next moves to the following question
func (s *Session) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.index++
	return true
}

// Prev moves to the preceding question
func (s *Session) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.index--
	return true
}

// Submit grades answer for the current question. Blank answers are ignored
// and report false.
func (s *Session) Submit(answer string) (Result, bool) {
	if strings.TrimSpace(answer) == "" {
		return Result{}, false
	}
	q := s.Current()
	return s.record(q, grading.Grade(answer, q.Answer), false), true
}

// Skip gives up on the current question, revealing its answer
func (s *Session) Skip() Result {
	return s.record(s.Current(), false, true)
}

func (s *Session) record(q model.Question, correct, skipped bool) Result {
	first := s.attempts[q.ID] == 0
	s.attempts[q.ID]++
	s.answered[q.ID] = true

	res := Result{Correct: correct, Skipped: skipped, CorrectAnswer: q.Answer}
	if correct {
		s.correct[q.ID] = true
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
		res.Points = grading.Points(q.Difficulty, first) + grading.ComboBonus(s.combo)
	} else {
		s.combo = 0
	}
	res.Combo = s.combo
	s.score += res.Points
	return res
}

// Summary returns the totals so far
func (s *Session) Summary() Summary {
	return Summary{
		Total:    len(s.all),
		Answered: len(s.answered),
		Correct:  len(s.correct),
		Score:    s.score,
		MaxCombo: s.maxCombo,
	}
}

// Missed returns answered or skipped questions that were never graded correct
func (s *Session) Missed() []model.Question {
	var missed []model.Question
	for _, q := range s.all {
		if s.answered[q.ID] && !s.correct[q.ID] {
			missed = append(missed, q)
		}
	}
	return missed
}

// RetryMissed starts a new round over the missed questions, keeping score and
// attempt history. It reports false when nothing was missed.
func (s *Session) RetryMissed() bool {
	missed := s.Missed()
	if len(missed) == 0 {
		return false
	}
	s.questions = missed
	s.index = 0
	return true
}
