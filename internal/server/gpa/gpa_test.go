package gpa

import (
	"testing"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestPercentageToGradePoints_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want float64
	}{
		{100, 4.0}, {97, 4.0}, {96.99, 4.0}, {93, 4.0}, {92.99, 3.7},
		{90, 3.7}, {89.99, 3.3}, {87, 3.3}, {83, 3.0}, {82.9, 2.7},
		{80, 2.7}, {77, 2.3}, {73, 2.0}, {70, 1.7}, {67, 1.3},
		{63, 1.0}, {60, 0.7}, {59.99, 0}, {0, 0}, {-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentageToGradePoints(tt.pct), "pct %v", tt.pct)
	}
}

func TestFilter_Match(t *testing.T) {
	fall25 := &models.Course{Semester: "Fall", Year: 2025}
	spring25 := &models.Course{Semester: "Spring", Year: 2025}
	fall24 := &models.Course{Semester: "Fall", Year: 2024}
	all := []*models.Course{fall25, spring25, fall24}

	assert.Equal(t, all, Filter{}.Apply(all))
	assert.Equal(t, all, Filter{Semester: "All"}.Apply(all))
	assert.Equal(t, []*models.Course{fall25, fall24}, Filter{Semester: "Fall"}.Apply(all))
	assert.Equal(t, []*models.Course{fall25, spring25}, Filter{Year: 2025}.Apply(all))
	assert.Equal(t, []*models.Course{fall24}, Filter{Semester: "Fall", Year: 2024}.Apply(all))
	assert.Empty(t, Filter{Semester: "Summer"}.Apply(all))

	assert.Equal(t, "All", Filter{}.SemesterLabel())
	assert.Equal(t, "Fall", Filter{Semester: "Fall"}.SemesterLabel())
}

func TestCreditWeighted(t *testing.T) {
	courses := []*models.Course{
		{CurrentGPA: f64(4.0), CreditHours: 3},
		{CurrentGPA: f64(3.0), CreditHours: 4},
		{CurrentGPA: nil, CreditHours: 3},
	}

	g, credits := CreditWeighted(courses)
	assert.InDelta(t, (12.0+12.0)/7.0, g, 1e-9)
	assert.Equal(t, 7.0, credits)
	assert.Equal(t, 3.43, Round2(g))

	g, credits = CreditWeighted([]*models.Course{{CreditHours: 3}})
	assert.Zero(t, g)
	assert.Zero(t, credits)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.43, Round2(3.428571))
	assert.Equal(t, 3.0, Round2(2.999))
	assert.Equal(t, 0.0, Round2(0))
}

func TestCourseGrade(t *testing.T) {
	assignments := []*models.Assignment{
		{ID: "mid", Weight: 30},
		{ID: "final", Weight: 40},
		{ID: "hw", Weight: 30},
	}
	grades := []*models.Grade{
		{AssignmentID: "mid", Percentage: 90},
		{AssignmentID: "hw", Percentage: 80},
	}

	pct, ok := CourseGrade(assignments, grades)
	assert.True(t, ok)
	// (90*0.3 + 80*0.3) / 0.6
	assert.InDelta(t, 85.0, pct, 1e-9)

	points, ok := CourseGPA(assignments, grades)
	assert.True(t, ok)
	assert.Equal(t, 3.0, points)

	_, ok = CourseGrade(assignments, nil)
	assert.False(t, ok)

	_, ok = CourseGPA([]*models.Assignment{{ID: "x", Weight: 0}}, []*models.Grade{{AssignmentID: "x", Percentage: 100}})
	assert.False(t, ok)
}
