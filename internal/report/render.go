package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goldenbell/qbank/internal/parser"
)

// Styles colors the console report
type Styles struct {
	Header lipgloss.Style
	OK     lipgloss.Style
	Diff   lipgloss.Style
	Dim    lipgloss.Style
}

// DefaultStyles returns unstyled output suitable for pipes and tests
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		OK:     lipgloss.NewStyle(),
		Diff:   lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
	}
}

// NewStyles builds styles from ANSI color codes
func NewStyles(header, ok, diff, dim string) Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(header)),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color(ok)),
		Diff:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(diff)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
	}
}

// Render writes the human-readable report to w
func Render(w io.Writer, r *Report, s Styles) error {
	var b strings.Builder

	b.WriteString(s.Header.Render("=== 검증 결과 ==="))
	b.WriteString("\n")
	fmt.Fprintf(&b, "총 추출 문제 수: %d\n", r.Extracted)

	for _, c := range r.Courses {
		b.WriteString("\n")
		b.WriteString(s.Header.Render(fmt.Sprintf("%s과정: %d문제", c.Course, c.Total)))
		b.WriteString("\n")
		for _, m := range c.Months {
			fmt.Fprintf(&b, "  %2d월 %s: %d문제 %s ", m.Month, m.Topic, m.Total, s.Dim.Render("("+breakdown(m.Actual)+")"))
			if m.OK() {
				b.WriteString(s.OK.Render("OK"))
			} else {
				b.WriteString(s.Diff.Render("DIFF: " + strings.Join(m.Issues, ", ")))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.Header.Render("난이도별 총계:"))
	b.WriteString("\n")
	for _, d := range parser.Difficulties {
		fmt.Fprintf(&b, "  %s: %d문제\n", d, r.ByDifficulty[d])
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("기대: %d / 실제: %d / 차이: %d", r.TotalExpected, r.TotalActual, r.Delta())
	if r.Delta() == 0 {
		b.WriteString(s.OK.Render(summary))
	} else {
		b.WriteString(s.Diff.Render(summary))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// breakdown formats counts as "하:5, 중:5", known difficulties first
func breakdown(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := parser.DifficultyRank(keys[i]), parser.DifficultyRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, counts[k])
	}
	return strings.Join(parts, ", ")
}
