package academics

import (
	"math"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
)

// computeSummary - считает GPA по кредитно-взвешенной формуле:
// sum(points(grade) * credits) / sum(credits) по курсам с оценкой.
// Курсы без оценки входят только в общие счетчики
func computeSummary(courses []model.Course, scale config.GradeScaleConfig) *model.AcademicSummary {
	summary := &model.AcademicSummary{
		CourseCount: len(courses),
	}

	var weighted float64
	var gradedCredits int

	for _, course := range courses {
		summary.TotalCredits += course.Credits

		if course.Grade == "" {
			continue
		}
		points, ok := scale.Points(course.Grade)
		if !ok {
			continue
		}

		weighted += points * float64(course.Credits)
		gradedCredits += course.Credits
		summary.GradedCount++
	}

	if gradedCredits > 0 {
		// Округление до двух знаков
		summary.GPA = math.Round(weighted/float64(gradedCredits)*100) / 100
	}

	return summary
}
