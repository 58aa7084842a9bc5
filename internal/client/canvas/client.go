package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"studyhub_backend/internal/metrics"
	"studyhub_backend/internal/model"
)

const (
	coursesPath     = "/api/v1/courses"
	assignmentsPath = "/api/v1/courses/%d/assignments"

	// Canvas отдает максимум 100 записей на страницу, нам хватает 50
	perPage = "50"
)

// Client - клиент Canvas LMS REST API.
// Домен и токен передаются на каждый вызов, т.к. у каждого пользователя своя привязка
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type courseDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
}

type assignmentDTO struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	DueAt          *time.Time `json:"due_at"`
	PointsPossible float64    `json:"points_possible"`
	HTMLURL        string     `json:"html_url"`
}

// ListCourses - возвращает активные курсы пользователя из Canvas
func (c *Client) ListCourses(ctx context.Context, domain string, accessToken string) ([]model.CanvasCourse, error) {
	metrics.CanvasFetches.WithLabelValues("courses").Inc()

	query := url.Values{}
	query.Set("enrollment_state", "active")
	query.Set("per_page", perPage)

	var dtos []courseDTO
	err := c.getJSON(ctx, domain, coursesPath, query, accessToken, &dtos)
	if err != nil {
		return nil, err
	}

	courses := make([]model.CanvasCourse, 0, len(dtos))
	for _, dto := range dtos {
		courses = append(courses, model.CanvasCourse{
			ID:         dto.ID,
			Name:       dto.Name,
			CourseCode: dto.CourseCode,
		})
	}

	return courses, nil
}

// ListAssignments - возвращает предстоящие задания курса из Canvas
func (c *Client) ListAssignments(ctx context.Context, domain string, accessToken string, courseID int64) ([]model.CanvasAssignment, error) {
	metrics.CanvasFetches.WithLabelValues("assignments").Inc()

	query := url.Values{}
	query.Set("bucket", "upcoming")
	query.Set("per_page", perPage)

	var dtos []assignmentDTO
	err := c.getJSON(ctx, domain, fmt.Sprintf(assignmentsPath, courseID), query, accessToken, &dtos)
	if err != nil {
		return nil, err
	}

	assignments := make([]model.CanvasAssignment, 0, len(dtos))
	for _, dto := range dtos {
		assignments = append(assignments, model.CanvasAssignment{
			ID:             dto.ID,
			Name:           dto.Name,
			DueAt:          dto.DueAt,
			PointsPossible: dto.PointsPossible,
			HTMLURL:        dto.HTMLURL,
		})
	}

	return assignments, nil
}

// getJSON - выполняет GET запрос к Canvas и декодирует ответ.
// 401/403 от Canvas означает отозванный токен - маппим в ErrUnauthenticated
func (c *Client) getJSON(ctx context.Context, domain string, path string, query url.Values, accessToken string, dst any) error {
	reqURL := url.URL{
		Scheme:   "https",
		Host:     domain,
		Path:     path,
		RawQuery: query.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("canvas request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return model.ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("canvas responded with status %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("canvas response decode failed: %w", err)
	}

	return nil
}
