package canvas

import "time"

type ConnectRequest struct {
	Domain      string `json:"domain"`       // school.instructure.com
	AccessToken string `json:"access_token"` // Персональный токен из настроек Canvas
}

// AccountResponse - статус привязки. Токен наружу не отдается никогда
type AccountResponse struct {
	Connected   bool       `json:"connected"`
	Domain      string     `json:"domain,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

type CourseResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
}

type AssignmentResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	DueAt          *time.Time `json:"due_at"`
	PointsPossible float64    `json:"points_possible"`
	HTMLURL        string     `json:"html_url"`
}
