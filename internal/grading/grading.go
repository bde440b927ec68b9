package grading

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	parensRe        = regexp.MustCompile(`[()（）]`)
	parentheticalRe = regexp.MustCompile(`\s*[(（].*?[)）]\s*`)
	answerSepRe     = regexp.MustCompile(`[,，]`)
	userSepRe       = regexp.MustCompile(`[,，\s]+`)
)

// constellationSuffix may be omitted or added by the user ("오리온" vs "오리온자리")
const constellationSuffix = "자리"

// Grade reports whether userAnswer is accepted for correctAnswer.
//
// Parenthetical notes in the correct answer are ignored. Comma-separated
// answers need every part present in the user's answer, in any order.
// Single answers are compared ignoring whitespace, brackets, periods and case.
func Grade(userAnswer, correctAnswer string) bool {
	clean := removeParenthetical(correctAnswer)

	if strings.ContainsAny(clean, ",，") {
		var correctParts []string
		for _, p := range answerSepRe.Split(clean, -1) {
			if n := normalize(p); n != "" {
				correctParts = append(correctParts, n)
			}
		}
		var userParts []string
		for _, p := range userSepRe.Split(userAnswer, -1) {
			if n := normalize(p); n != "" {
				userParts = append(userParts, n)
			}
		}

		for _, cp := range correctParts {
			found := false
			for _, up := range userParts {
				if strings.Contains(up, cp) || strings.Contains(cp, up) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	user := normalize(userAnswer)
	correct := normalize(clean)
	if user == correct {
		return true
	}
	if strings.HasSuffix(correct, constellationSuffix) && user+constellationSuffix == correct {
		return true
	}
	if strings.HasSuffix(user, constellationSuffix) && correct+constellationSuffix == user {
		return true
	}
	return false
}

// Points returns the score for a correct answer. A first attempt earns a bonus.
func Points(difficulty string, firstAttempt bool) int {
	base := map[string]int{
		"하":  10,
		"중":  20,
		"상":  30,
		"최상": 50,
	}
	points, ok := base[difficulty]
	if !ok {
		points = 10
	}
	if firstAttempt {
		points += 10
	}
	return points
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, "")
	s = parensRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ".", "")
	return strings.ToLower(s)
}

// removeParenthetical drops notes such as "답 (참고 : xxx)"
func removeParenthetical(s string) string {
	return strings.TrimSpace(parentheticalRe.ReplaceAllString(s, ""))
}

// ComboBonus returns the extra points awarded when a streak reaches a milestone
func ComboBonus(combo int) int {
	switch combo {
	case 5:
		return 50
	case 10:
		return 100
	case 20:
		return 200
	case 50:
		return 500
	default:
		return 0
	}
}
