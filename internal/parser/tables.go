package parser

// Course labels as they appear in the section headings
const (
	CourseExperience = "체험"
	CourseExplore    = "탐구"
)

// Courses lists the courses in report order
var Courses = []string{CourseExperience, CourseExplore}

// Difficulties lists the difficulty labels from easiest to hardest
var Difficulties = []string{"하", "중", "상", "최상"}

// Topics maps course -> month -> monthly topic
var Topics = map[string]map[int]string{
	CourseExperience: {
		1:  "겨울철 별자리와 별의 색깔",
		2:  "우주를 향한 도전",
		3:  "우주인의 생활",
		4:  "봄철 별자리와 별의 밝기",
		5:  "태양",
		6:  "태양계",
		7:  "여름철 별자리와 별의 크기",
		8:  "은하수",
		9:  "달 탐사",
		10: "가을철 별자리와 별의 거리",
		11: "사라진 공룡과 소행성",
		12: "우주 속의 지구",
	},
	CourseExplore: {
		1:  "별의 밝기와 거리",
		2:  "우주탐사",
		3:  "별의 색깔에 담긴 과학",
		4:  "별의 일생",
		5:  "달의 과학",
		6:  "행성",
		7:  "지구과학",
		8:  "혜성, 유성",
		9:  "소행성, 왜행성",
		10: "망원경",
		11: "성운, 성단, 은하",
		12: "은하 분류와 우주론",
	},
}

// Expected maps course -> difficulty -> questions per month.
// The same counts apply to all twelve months of a course.
var Expected = map[string]map[string]int{
	CourseExperience: {"하": 5, "중": 5, "상": 15, "최상": 10},
	CourseExplore:    {"하": 10, "중": 10, "상": 20, "최상": 25},
}

// TopicFor returns the topic for a course and month, or "" if unmapped
func TopicFor(course string, month int) string {
	return Topics[course][month]
}

// DifficultyRank returns the position of d in Difficulties, or len(Difficulties) if unknown
func DifficultyRank(d string) int {
	for i, label := range Difficulties {
		if label == d {
			return i
		}
	}
	return len(Difficulties)
}
