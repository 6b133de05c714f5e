// Package gpa holds the pure grade arithmetic: percentage to 4.0-scale
// points, weighted course grades and credit-weighted averages.
package gpa

import (
	"math"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

// AllSemesters disables the semester dimension of a Filter.
const AllSemesters = "All"

type band struct {
	min    float64
	points float64
}

// bands are checked top down; the first threshold met wins.
var bands = []band{
	{97, 4.0},
	{93, 4.0},
	{90, 3.7},
	{87, 3.3},
	{83, 3.0},
	{80, 2.7},
	{77, 2.3},
	{73, 2.0},
	{70, 1.7},
	{67, 1.3},
	{63, 1.0},
	{60, 0.7},
}

// PercentageToGradePoints maps a course percentage onto the 4.0 scale.
func PercentageToGradePoints(p float64) float64 {
	for _, b := range bands {
		if p >= b.min {
			return b.points
		}
	}
	return 0
}

// Filter restricts courses by semester and year. An empty or "All" semester
// and a zero year match everything.
type Filter struct {
	Semester string `json:"semester,omitempty"`
	Year     int    `json:"year,omitempty"`
}

func (f Filter) Match(c *models.Course) bool {
	semesterMatch := f.Semester == "" || f.Semester == AllSemesters || c.Semester == f.Semester
	yearMatch := f.Year == 0 || c.Year == f.Year
	return semesterMatch && yearMatch
}

// Apply returns the courses matching f, in order.
func (f Filter) Apply(courses []*models.Course) []*models.Course {
	out := make([]*models.Course, 0, len(courses))
	for _, c := range courses {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// SemesterLabel is the semester echoed back for f.
func (f Filter) SemesterLabel() string {
	if f.Semester == "" {
		return AllSemesters
	}
	return f.Semester
}

// CreditWeighted returns Σ(currentGPA × credits) / Σ credits over the
// courses that carry a GPA, plus the credit total. Courses without a GPA are
// skipped; no credits yields 0.
func CreditWeighted(courses []*models.Course) (gpa float64, credits float64) {
	var points float64
	for _, c := range courses {
		if c.CurrentGPA == nil {
			continue
		}
		points += *c.CurrentGPA * c.CreditHours
		credits += c.CreditHours
	}
	if credits == 0 {
		return 0, 0
	}
	return points / credits, credits
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CourseGrade is the weighted percentage over graded assignments:
// Σ(percentage × weight/100) / (Σ weight / 100). ok is false when no graded
// assignment carries weight.
func CourseGrade(assignments []*models.Assignment, grades []*models.Grade) (pct float64, ok bool) {
	byAssignment := make(map[string]*models.Grade, len(grades))
	for _, g := range grades {
		byAssignment[g.AssignmentID] = g
	}

	var weighted, totalWeight float64
	for _, a := range assignments {
		g, found := byAssignment[a.ID]
		if !found {
			continue
		}
		weighted += g.Percentage * (a.Weight / 100)
		totalWeight += a.Weight
	}

	if totalWeight <= 0 {
		return 0, false
	}
	return weighted / (totalWeight / 100), true
}

// CourseGPA converts CourseGrade to grade points. ok is false when the
// course has no weighted grades yet.
func CourseGPA(assignments []*models.Assignment, grades []*models.Grade) (float64, bool) {
	pct, ok := CourseGrade(assignments, grades)
	if !ok {
		return 0, false
	}
	return PercentageToGradePoints(pct), true
}
