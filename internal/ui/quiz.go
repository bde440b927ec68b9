package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goldenbell/qbank/internal/model"
)

// ErrNoQuestions is returned when a drill has nothing to ask
var ErrNoQuestions = errors.New("no questions match the filter")

const progressWidth = 30

// quizModel is the bubbletea model for an answer drill
type quizModel struct {
	session   *Session
	input     textinput.Model
	result    *Result
	width     int
	reviewing bool // Round over, offering to retry missed questions
	finished  bool
}

func newQuizModel(session *Session) quizModel {
	ti := textinput.New()
	ti.Placeholder = "정답을 입력하세요..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return quizModel{
		session: session,
		input:   ti,
	}
}

// Run starts an interactive drill over questions and returns its totals
func Run(questions []model.Question) (Summary, error) {
	if len(questions) == 0 {
		return Summary{}, ErrNoQuestions
	}

	session := NewSession(questions)
	if _, err := tea.NewProgram(newQuizModel(session), tea.WithAltScreen()).Run(); err != nil {
		return Summary{}, fmt.Errorf("run drill: %w", err)
	}
	return session.Summary(), nil
}

// Init implements tea.Model
func (m quizModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
	}

	if m.result != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *quizModel) handleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.reviewing {
		return m.handleReviewKey(msg), true
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.finished = true
		return tea.Quit, true
	case "enter":
		if m.result != nil {
			if !m.session.Next() {
				return m.endRound(), true
			}
			m.reset()
			return nil, true
		}
		if res, ok := m.session.Submit(m.input.Value()); ok {
			m.result = &res
		}
		return nil, true
	case "tab":
		if m.result == nil {
			res := m.session.Skip()
			m.result = &res
		}
		return nil, true
	case "ctrl+n":
		if m.session.Next() {
			m.reset()
		}
		return nil, true
	case "ctrl+p":
		if m.session.Prev() {
			m.reset()
		}
		return nil, true
	}
	return nil, false
}

// endRound quits, or offers a retry when questions were missed
func (m *quizModel) endRound() tea.Cmd {
	if len(m.session.Missed()) == 0 {
		m.finished = true
		return tea.Quit
	}
	m.reviewing = true
	m.result = nil
	return nil
}

func (m *quizModel) handleReviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if m.session.RetryMissed() {
			m.reviewing = false
			m.reset()
		}
		return nil
	case "enter", "esc", "ctrl+c", "q":
		m.finished = true
		return tea.Quit
	}
	return nil
}

// reset clears the answer state when the cursor moves
func (m *quizModel) reset() {
	m.result = nil
	m.input.Reset()
	m.input.Focus()
}

// View implements tea.Model
func (m quizModel) View() string {
	if m.finished {
		return ""
	}

	if m.reviewing {
		return m.renderReview()
	}

	q := m.session.Current()
	var b strings.Builder

	meta := fmt.Sprintf("%s과정 · %d월 · %s", q.Course, q.Month, q.Topic)
	counter := fmt.Sprintf("%d / %d", m.session.Index()+1, m.session.Len())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Badge(q.Difficulty).Render(q.Difficulty), " ",
		styles.Meta.Render(meta), "  ",
		styles.Meta.Render(counter)))
	b.WriteString("\n")
	b.WriteString(styles.Progress.Render(progressBar(m.session.Index()+1, m.session.Len(), progressWidth)))
	b.WriteString("\n\n")

	card := styles.Card
	if m.width > 4 {
		card = card.Width(m.width - 4)
	}
	b.WriteString(card.Render(fmt.Sprintf("%d. %s", q.QuestionNumber, q.QuestionText)))
	b.WriteString("\n\n")

	if m.result == nil {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.Help.Render("enter 정답 확인 · tab 모르겠어요 · ctrl+p/ctrl+n 이전/다음 · esc 종료"))
	} else {
		b.WriteString(renderResult(*m.result))
		b.WriteString("\n\n")
		next := "enter 다음 문제"
		if !m.session.HasNext() {
			next = "enter 완료"
		}
		b.WriteString(styles.Help.Render(next + " · esc 종료"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m quizModel) renderReview() string {
	var b strings.Builder
	b.WriteString(FormatSummary(m.session.Summary()))
	b.WriteString("\n\n")
	b.WriteString(styles.Wrong.Render(fmt.Sprintf("틀린 문제 %d개", len(m.session.Missed()))))
	b.WriteString("\n")
	for _, q := range m.session.Missed() {
		b.WriteString(styles.Meta.Render(fmt.Sprintf("  %s과정 %d월 %d. ", q.Course, q.Month, q.QuestionNumber)))
		b.WriteString(q.QuestionText)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("r 틀린 문제 다시 풀기 · enter 종료"))
	b.WriteString("\n")
	return b.String()
}

func renderResult(r Result) string {
	if r.Correct {
		line := styles.Correct.Render("정답!") + " " + styles.Points.Render(fmt.Sprintf("+%dpt", r.Points))
		if r.Combo > 1 {
			line += " " + styles.Points.Render(fmt.Sprintf("%d콤보!", r.Combo))
		}
		return line
	}
	return styles.Wrong.Render("아쉬워요!") + "\n정답: " + r.CorrectAnswer
}

func progressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatSummary renders drill totals for the terminal after the program exits
func FormatSummary(s Summary) string {
	return fmt.Sprintf("풀이 %d/%d · 정답 %d · 점수 %dpt · 최대 콤보 %d",
		s.Answered, s.Total, s.Correct, s.Score, s.MaxCombo)
}
