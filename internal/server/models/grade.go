package models

import "time"

// Grade is the score a user earned on an assignment. There is at most one
// per (AssignmentID, UserID); Percentage is derived from the points.
type Grade struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	UserID       string    `json:"userId"`
	PointsEarned float64   `json:"pointsEarned"`
	MaxPoints    float64   `json:"maxPoints"`
	Percentage   float64   `json:"percentage"`
	EnteredAt    time.Time `json:"enteredAt"`
}

// Percentage returns pointsEarned as a percentage of maxPoints.
func Percentage(pointsEarned, maxPoints float64) float64 {
	return pointsEarned / maxPoints * 100
}

// GradeView is a grade joined with its assignment and course. Either may be
// nil if it was removed after the grade was entered.
type GradeView struct {
	Grade
	Assignment *Assignment `json:"assignment"`
	Course     *Course     `json:"course"`
}

// SemesterGPA is the credit-weighted GPA over a user's filtered courses.
type SemesterGPA struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"totalCredits"`
	Semester     string  `json:"semester"`
	Year         int     `json:"year"`
}

// SchoolAverage is the mean GPA of students with credits at one school.
type SchoolAverage struct {
	AverageGPA    float64 `json:"averageGPA"`
	TotalStudents int     `json:"totalStudents"`
}

// SchoolStatistics summarises one school for administrators.
type SchoolStatistics struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalCourses int     `json:"totalCourses"`
	AverageGPA   float64 `json:"averageGPA"`
}
