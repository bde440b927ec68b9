package parser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goldenbell/qbank/internal/model"
)

// DefaultLookback is how many characters before an answer tag are searched
// for its question number
const DefaultLookback = 3000

// Discard reasons
const (
	ReasonNoQuestionNumber = "no_question_number"
	ReasonNoSection        = "no_section"
	ReasonNoDifficulty     = "no_difficulty"
)

// Discard records an answer tag that did not produce a question
type Discard struct {
	AnswerOffset int
	Answer       string
	Reason       string
}

// Result holds everything produced by one parsing pass
type Result struct {
	Questions    []model.Question
	Discards     []Discard
	Sections     []SectionMarker
	Difficulties []DifficultyMarker
	Answers      []AnswerMarker
}

// Parser reconstructs questions from the extracted question bank text
type Parser struct {
	lookback int
}

// Option configures a Parser
type Option func(*Parser)

// WithLookback sets the lookback window in characters. Non-positive values are ignored.
func WithLookback(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.lookback = n
		}
	}
}

// NewParser creates a new parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{lookback: DefaultLookback}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookback returns the configured window size
func (p *Parser) Lookback() int {
	return p.lookback
}

// Parse scans text for markers and builds one question per resolvable answer tag
func (p *Parser) Parse(text string) *Result {
	res := &Result{
		Sections:     ScanSections(text),
		Difficulties: ScanDifficulties(text),
		Answers:      ScanAnswers(text),
	}

	for idx, ans := range res.Answers {
		q, reason := p.reconstruct(text, ans, res.Sections, res.Difficulties)
		if reason != "" {
			res.Discards = append(res.Discards, Discard{
				AnswerOffset: ans.Offset,
				Answer:       ans.Answer,
				Reason:       reason,
			})
			continue
		}
		q.ID = idx + 1
		res.Questions = append(res.Questions, q)
	}

	for i := range res.Questions {
		res.Questions[i].ID = i + 1
	}
	return res
}

func (p *Parser) reconstruct(text string, ans AnswerMarker, sections []SectionMarker, diffs []DifficultyMarker) (model.Question, string) {
	start := windowStart(text, ans.Offset, p.lookback)
	before := text[start:ans.Offset]

	nums := questionNumberRegex.FindAllStringSubmatchIndex(before, -1)
	if len(nums) == 0 {
		return model.Question{}, ReasonNoQuestionNumber
	}
	last := nums[len(nums)-1]
	num, err := parseNumber(before[last[2]:last[3]])
	if err != nil {
		return model.Question{}, ReasonNoQuestionNumber
	}

	section, ok := sectionAt(sections, ans.Offset)
	if !ok {
		return model.Question{}, ReasonNoSection
	}
	diff, ok := difficultyAt(diffs, ans.Offset)
	if !ok {
		return model.Question{}, ReasonNoDifficulty
	}

	return model.Question{
		Course:         section.Course,
		Month:          section.Month,
		Topic:          section.Topic,
		Difficulty:     diff.Difficulty,
		QuestionNumber: num,
		QuestionText:   normalizeText(before[last[1]:]),
		Answer:         ans.Answer,
	}, ""
}

// windowStart walks back up to n characters from end without splitting a rune
func windowStart(text string, end, n int) int {
	start := end
	for i := 0; i < n && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	return start
}

// sectionAt returns the last section marker at or before pos
func sectionAt(markers []SectionMarker, pos int) (SectionMarker, bool) {
	i := sort.Search(len(markers), func(i int) bool { return markers[i].Offset > pos })
	if i == 0 {
		return SectionMarker{}, false
	}
	return markers[i-1], true
}

// difficultyAt returns the last difficulty marker at or before pos
func difficultyAt(markers []DifficultyMarker, pos int) (DifficultyMarker, bool) {
	i := sort.Search(len(markers), func(i int) bool { return markers[i].Offset > pos })
	if i == 0 {
		return DifficultyMarker{}, false
	}
	return markers[i-1], true
}

// normalizeText collapses whitespace runs, line breaks included, into single spaces
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HeadingMismatch is a difficulty heading whose printed count disagrees with
// the expected table for the section it belongs to
type HeadingMismatch struct {
	Offset     int
	Course     string
	Month      int
	Difficulty string
	Printed    int
	Expected   int
}

// HeadingMismatches checks every difficulty heading against Expected.
// Headings that precede all sections are skipped.
func (r *Result) HeadingMismatches() []HeadingMismatch {
	var out []HeadingMismatch
	for _, d := range r.Difficulties {
		section, ok := sectionAt(r.Sections, d.Offset)
		if !ok {
			continue
		}
		expected := Expected[section.Course][d.Difficulty]
		if d.ExpectedCount != expected {
			out = append(out, HeadingMismatch{
				Offset:     d.Offset,
				Course:     section.Course,
				Month:      section.Month,
				Difficulty: d.Difficulty,
				Printed:    d.ExpectedCount,
				Expected:   expected,
			})
		}
	}
	return out
}
