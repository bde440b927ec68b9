package ui

import (
	"testing"

	"github.com/goldenbell/qbank/internal/model"
)

func drillQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Course: "체험", Month: 1, Difficulty: "하", QuestionNumber: 1, QuestionText: "가장 밝은 별은?", Answer: "시리우스"},
		{ID: 2, Course: "체험", Month: 1, Difficulty: "최상", QuestionNumber: 2, QuestionText: "겨울철 대표 별자리는?", Answer: "오리온자리"},
		{ID: 3, Course: "탐구", Month: 2, Difficulty: "중", QuestionNumber: 1, QuestionText: "최초의 인공위성은?", Answer: "스푸트니크 1호"},
	}
}

func TestSessionSubmit(t *testing.T) {
	s := NewSession(drillQuestions())

	if _, ok := s.Submit("   "); ok {
		t.Error("expected blank answer to be ignored")
	}

	res, ok := s.Submit("시리우스")
	if !ok || !res.Correct {
		t.Fatalf("expected correct result, got %+v", res)
	}
	if res.Points != 20 {
		t.Errorf("expected first-attempt points 20, got %d", res.Points)
	}
	if res.Combo != 1 {
		t.Errorf("expected combo 1, got %d", res.Combo)
	}

	// Second try on the same question has no first-attempt bonus
	res, _ = s.Submit("시리우스")
	if res.Points != 10 {
		t.Errorf("expected repeat points 10, got %d", res.Points)
	}
	if res.Combo != 2 {
		t.Errorf("expected combo 2, got %d", res.Combo)
	}
}

func TestSessionWrongAndSkipResetCombo(t *testing.T) {
	s := NewSession(drillQuestions())
	s.Submit("시리우스")
	s.Next()

	res, _ := s.Submit("큰곰자리")
	if res.Correct || res.Points != 0 || res.Combo != 0 {
		t.Errorf("expected wrong answer with no points, got %+v", res)
	}
	if res.CorrectAnswer != "오리온자리" {
		t.Errorf("expected correct answer revealed, got %q", res.CorrectAnswer)
	}

	s.Next()
	res = s.Skip()
	if !res.Skipped || res.Correct || res.CorrectAnswer != "스푸트니크 1호" {
		t.Errorf("unexpected skip result %+v", res)
	}

	sum := s.Summary()
	expected := Summary{Total: 3, Answered: 3, Correct: 1, Score: 20, MaxCombo: 1}
	if sum != expected {
		t.Errorf("expected %+v, got %+v", expected, sum)
	}
}

func TestSessionComboBonus(t *testing.T) {
	qs := make([]model.Question, 5)
	for i := range qs {
		qs[i] = model.Question{ID: i + 1, Difficulty: "하", Answer: "가"}
	}
	s := NewSession(qs)

	var last Result
	for i := 0; i < 5; i++ {
		last, _ = s.Submit("가")
		s.Next()
	}
	if last.Combo != 5 {
		t.Fatalf("expected combo 5, got %d", last.Combo)
	}
	if last.Points != 20+50 {
		t.Errorf("expected bonus on fifth answer, got %d", last.Points)
	}
	if s.Summary().Score != 4*20+70 {
		t.Errorf("unexpected score %d", s.Summary().Score)
	}
}

func TestSessionNavigation(t *testing.T) {
	s := NewSession(drillQuestions())

	if s.HasPrev() || s.Prev() {
		t.Error("expected no previous question at start")
	}
	if !s.Next() || !s.Next() {
		t.Fatal("expected to advance twice")
	}
	if s.Next() {
		t.Error("expected no question after the last")
	}
	if s.Current().ID != 3 || s.Index() != 2 {
		t.Errorf("expected last question, got %+v", s.Current())
	}
	if !s.Prev() || s.Current().ID != 2 {
		t.Errorf("expected to move back to question 2")
	}
}

func TestSessionRetryMissed(t *testing.T) {
	s := NewSession(drillQuestions())

	if s.RetryMissed() {
		t.Fatal("expected no retry before anything was answered")
	}

	s.Submit("시리우스")
	s.Next()
	s.Submit("큰곰자리")
	s.Next()
	s.Skip()

	missed := s.Missed()
	if len(missed) != 2 || missed[0].ID != 2 || missed[1].ID != 3 {
		t.Fatalf("expected questions 2 and 3 missed, got %+v", missed)
	}
	if !s.RetryMissed() {
		t.Fatal("expected a retry round")
	}
	if s.Len() != 2 || s.Index() != 0 || s.Current().ID != 2 {
		t.Errorf("expected round to start at question 2, got %+v", s.Current())
	}

	// Not the first attempt any more, so no bonus
	res, _ := s.Submit("오리온자리")
	if !res.Correct || res.Points != 50 {
		t.Errorf("expected 50 points without bonus, got %+v", res)
	}

	if len(s.Missed()) != 1 {
		t.Errorf("expected only question 3 left, got %+v", s.Missed())
	}
	if got := s.Summary().Total; got != 3 {
		t.Errorf("expected total to count the whole drill, got %d", got)
	}
}
