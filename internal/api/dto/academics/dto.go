package academics

import "time"

type CourseRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"` // 1-30
	Grade   string `json:"grade"`   // Буквенная оценка из шкалы, пусто - оценки еще нет
	Term    string `json:"term"`
}

type CourseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Credits   int       `json:"credits"`
	Grade     string    `json:"grade"`
	Term      string    `json:"term"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SummaryResponse struct {
	GPA          float64 `json:"gpa"`           // Средневзвешенный по кредитам
	TargetGPA    float64 `json:"target_gpa"`    // Из профиля либо дефолт шкалы
	TotalCredits int     `json:"total_credits"`
	CourseCount  int     `json:"course_count"`
	GradedCount  int     `json:"graded_count"`
}
