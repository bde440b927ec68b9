package report

import (
	"fmt"

	"github.com/goldenbell/qbank/internal/model"
	"github.com/goldenbell/qbank/internal/parser"
)

// MonthReport compares one course month against the expected counts
type MonthReport struct {
	Month    int
	Topic    string
	Total    int
	Actual   map[string]int
	Expected map[string]int
	Issues   []string // "하:4/5" for each mismatching difficulty
}

// OK reports whether every difficulty matched its expected count
func (m MonthReport) OK() bool {
	return len(m.Issues) == 0
}

// CourseReport groups the twelve months of a course
type CourseReport struct {
	Course string
	Total  int
	Months []MonthReport
}

// Report is the diagnostic cross-tabulation of extracted questions
type Report struct {
	Extracted     int
	Courses       []CourseReport
	ByDifficulty  map[string]int
	TotalExpected int
	TotalActual   int
}

// Delta is expected minus actual over all course, month and difficulty cells
func (r *Report) Delta() int {
	return r.TotalExpected - r.TotalActual
}

// Mismatches counts months with at least one difficulty off target
func (r *Report) Mismatches() int {
	n := 0
	for _, c := range r.Courses {
		for _, m := range c.Months {
			if !m.OK() {
				n++
			}
		}
	}
	return n
}

// Validate tallies questions per course, month and difficulty against the
// expected tables. It never modifies questions.
func Validate(questions []model.Question) *Report {
	r := &Report{
		Extracted:    len(questions),
		ByDifficulty: make(map[string]int),
	}

	for _, q := range questions {
		r.ByDifficulty[q.Difficulty]++
	}

	for _, course := range parser.Courses {
		cr := CourseReport{Course: course}
		expected := parser.Expected[course]

		for _, q := range questions {
			if q.Course == course {
				cr.Total++
			}
		}

		for month := 1; month <= 12; month++ {
			mr := MonthReport{
				Month:    month,
				Topic:    parser.TopicFor(course, month),
				Actual:   make(map[string]int),
				Expected: expected,
			}
			for _, q := range questions {
				if q.Course == course && q.Month == month {
					mr.Total++
					mr.Actual[q.Difficulty]++
				}
			}
			for _, d := range parser.Difficulties {
				actual, exp := mr.Actual[d], expected[d]
				r.TotalExpected += exp
				r.TotalActual += actual
				if actual != exp {
					mr.Issues = append(mr.Issues, fmt.Sprintf("%s:%d/%d", d, actual, exp))
				}
			}
			cr.Months = append(cr.Months, mr)
		}

		r.Courses = append(r.Courses, cr)
	}

	return r
}
