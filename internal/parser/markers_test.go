package parser

import (
	"strings"
	"testing"
)

func TestScanSections(t *testing.T) {
	text := "머리말\n2월 우주를 향한 도전 탐구과정\n본문\n1월 겨울철 별자리 체험과정\n13월 없는 달 탐구과정\n"

	markers := ScanSections(text)
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}

	tests := []struct {
		course string
		month  int
		topic  string
		offset int
	}{
		{CourseExplore, 2, "우주탐사", strings.Index(text, "2월")},
		{CourseExperience, 1, "겨울철 별자리와 별의 색깔", strings.Index(text, "1월")},
		{CourseExplore, 13, "", strings.Index(text, "13월")},
	}
	for i, tt := range tests {
		m := markers[i]
		if m.Course != tt.course || m.Month != tt.month || m.Topic != tt.topic || m.Offset != tt.offset {
			t.Errorf("marker %d: expected %+v, got %+v", i, tt, m)
		}
	}
}

func TestScanSectionsRequiresCourseOnSameLine(t *testing.T) {
	// The topic part cannot span lines, so a stray month with no course suffix is ignored
	text := "3월\n체험과정"
	if markers := ScanSections(text); len(markers) != 0 {
		t.Errorf("expected no markers, got %+v", markers)
	}
}

func TestScanDifficulties(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		difficulty string
		count      int
	}{
		{"ascii colon", "난이도 하:5문제", "하", 5},
		{"fullwidth colon with spaces", "난이도 최상 ： 25 문제", "최상", 25},
		{"no space", "난이도중:10문제", "중", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markers := ScanDifficulties("앞\n" + tt.text)
			if len(markers) != 1 {
				t.Fatalf("expected 1 marker, got %d", len(markers))
			}
			if markers[0].Difficulty != tt.difficulty {
				t.Errorf("expected difficulty %q, got %q", tt.difficulty, markers[0].Difficulty)
			}
			if markers[0].ExpectedCount != tt.count {
				t.Errorf("expected count %d, got %d", tt.count, markers[0].ExpectedCount)
			}
			if markers[0].Offset != len("앞\n") {
				t.Errorf("expected offset %d, got %d", len("앞\n"), markers[0].Offset)
			}
		})
	}
}

func TestScanAnswers(t *testing.T) {
	text := "1. 질문\n↸ 정답: 시리우스  \n2. 질문\n↸정답：베텔기우스, 리겔\n"

	answers := ScanAnswers(text)
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].Answer != "시리우스" {
		t.Errorf("expected trimmed answer, got %q", answers[0].Answer)
	}
	if answers[1].Answer != "베텔기우스, 리겔" {
		t.Errorf("expected multi-part answer, got %q", answers[1].Answer)
	}
	if answers[0].Offset >= answers[1].Offset {
		t.Errorf("expected answers in document order, got offsets %d, %d", answers[0].Offset, answers[1].Offset)
	}
}
