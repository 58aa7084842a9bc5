package canvas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internal/model"
)

// newTestClient - клиент, смотрящий в httptest сервер вместо реального Canvas
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	client := &Client{httpClient: server.Client()}
	return client, strings.TrimPrefix(server.URL, "https://")
}

func TestListCourses(t *testing.T) {
	var gotReq *http.Request
	client, domain := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 101, "name": "Biology", "course_code": "BIO-101"},
			{"id": 102, "name": "Calculus", "course_code": "MATH-201"}
		]`))
	})

	courses, err := client.ListCourses(context.Background(), domain, "canvas-token")
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/api/v1/courses", gotReq.URL.Path)
	assert.Equal(t, "active", gotReq.URL.Query().Get("enrollment_state"))
	assert.Equal(t, "50", gotReq.URL.Query().Get("per_page"))
	assert.Equal(t, "Bearer canvas-token", gotReq.Header.Get("Authorization"))

	require.Len(t, courses, 2)
	assert.Equal(t, model.CanvasCourse{ID: 101, Name: "Biology", CourseCode: "BIO-101"}, courses[0])
	assert.Equal(t, model.CanvasCourse{ID: 102, Name: "Calculus", CourseCode: "MATH-201"}, courses[1])
}

func TestListAssignments(t *testing.T) {
	var gotReq *http.Request
	client, domain := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 7, "name": "Lab report", "due_at": "2026-09-01T12:00:00Z", "points_possible": 20, "html_url": "https://school.instructure.com/courses/101/assignments/7"},
			{"id": 8, "name": "Reading", "due_at": null, "points_possible": 0, "html_url": ""}
		]`))
	})

	assignments, err := client.ListAssignments(context.Background(), domain, "canvas-token", 101)
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/api/v1/courses/101/assignments", gotReq.URL.Path)
	assert.Equal(t, "upcoming", gotReq.URL.Query().Get("bucket"))

	require.Len(t, assignments, 2)
	require.NotNil(t, assignments[0].DueAt)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), assignments[0].DueAt.UTC())
	assert.Equal(t, 20.0, assignments[0].PointsPossible)

	// Задания без дедлайна приходят с null
	assert.Nil(t, assignments[1].DueAt)
}

func TestListCourses_RevokedToken(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, domain := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.ListCourses(context.Background(), domain, "revoked")

			require.ErrorIs(t, err, model.ErrUnauthenticated)
		})
	}
}

func TestListCourses_UpstreamError(t *testing.T) {
	client, domain := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListCourses(context.Background(), domain, "canvas-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "canvas responded with status 500")
}

func TestListCourses_MalformedResponse(t *testing.T) {
	client, domain := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	})

	_, err := client.ListCourses(context.Background(), domain, "canvas-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode failed")
}
