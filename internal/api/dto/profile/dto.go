package profile

import "time"

type ProfileRequest struct {
	DisplayName string  `json:"display_name"`
	School      string  `json:"school"`
	GradeLevel  int     `json:"grade_level"` // 1-12, 0 - не указан
	TargetGPA   float64 `json:"target_gpa"`  // 0-4, 0 - не указан
	Bio         string  `json:"bio"`
}

type ProfileResponse struct {
	DisplayName string    `json:"display_name"`
	School      string    `json:"school"`
	GradeLevel  int       `json:"grade_level"`
	TargetGPA   float64   `json:"target_gpa"`
	Bio         string    `json:"bio"`
	UpdatedAt   time.Time `json:"updated_at"`
}
