package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// SectionMarker opens a course/month block at Offset
type SectionMarker struct {
	Offset int
	Course string
	Month  int
	Topic  string
}

// DifficultyMarker opens a difficulty tier at Offset
type DifficultyMarker struct {
	Offset        int
	Difficulty    string
	ExpectedCount int // Count printed in the heading, checked by HeadingMismatches
}

// AnswerMarker is a "↸ 정답:" tag and the answer text following it
type AnswerMarker struct {
	Offset int
	Answer string
}

// unicodeSpace matches everything Unicode treats as whitespace. PDF text
// often separates words with U+00A0 or U+3000, which RE2's \s does not match.
const unicodeSpace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// Patterns are written with \s and \d and widened to their Unicode classes
var widenClasses = strings.NewReplacer(`\s`, unicodeSpace, `\d`, `\p{Nd}`)

func mustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(widenClasses.Replace(pattern))
}

var (
	sectionPatterns = []struct {
		course string
		re     *regexp.Regexp
	}{
		{CourseExperience, mustCompile(`(\d{1,2})월\s+.+?\s+체험과정`)},
		{CourseExplore, mustCompile(`(\d{1,2})월\s+.+?\s+탐구과정`)},
	}
	difficultyRegex = mustCompile(`난이도\s*(하|중|상|최상)\s*[:：]\s*(\d+)\s*문제`)
	answerRegex     = mustCompile(`↸\s*정답\s*[:：]\s*(.+)`)
	// Evaluated on the lookback window, so ^ is the window start
	questionNumberRegex = mustCompile(`(?:^|\n)\s*(\d{1,2})\.\s+`)
)

// parseNumber converts a run of decimal digits from any script to an int.
// Every Unicode Nd range is a complete 0-9 sequence, so a digit's value is
// its distance from the start of its range modulo 10.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	n := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return 0, strconv.ErrSyntax
		}
		n = n*10 + d
	}
	return n, nil
}

func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	for _, rng := range unicode.Nd.R16 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && (r-lo)%rune(rng.Stride) == 0 {
			return int((r-lo)/rune(rng.Stride)) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && (r-lo)%rune(rng.Stride) == 0 {
			return int((r-lo)/rune(rng.Stride)) % 10, true
		}
	}
	return 0, false
}

// ScanSections finds every course section heading, ordered by offset.
// Months missing from the topic table get an empty topic.
func ScanSections(text string) []SectionMarker {
	var markers []SectionMarker
	for _, p := range sectionPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			month, err := parseNumber(text[loc[2]:loc[3]])
			if err != nil {
				continue
			}
			markers = append(markers, SectionMarker{
				Offset: loc[0],
				Course: p.course,
				Month:  month,
				Topic:  TopicFor(p.course, month),
			})
		}
	}
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Offset < markers[j].Offset
	})
	return markers
}

// ScanDifficulties finds every difficulty heading, ordered by offset
func ScanDifficulties(text string) []DifficultyMarker {
	var markers []DifficultyMarker
	for _, loc := range difficultyRegex.FindAllStringSubmatchIndex(text, -1) {
		count, err := parseNumber(text[loc[4]:loc[5]])
		if err != nil {
			continue
		}
		markers = append(markers, DifficultyMarker{
			Offset:        loc[0],
			Difficulty:    text[loc[2]:loc[3]],
			ExpectedCount: count,
		})
	}
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Offset < markers[j].Offset
	})
	return markers
}

// ScanAnswers finds every answer tag in document order
func ScanAnswers(text string) []AnswerMarker {
	var markers []AnswerMarker
	for _, loc := range answerRegex.FindAllStringSubmatchIndex(text, -1) {
		markers = append(markers, AnswerMarker{
			Offset: loc[0],
			Answer: strings.TrimSpace(text[loc[2]:loc[3]]),
		})
	}
	return markers
}
