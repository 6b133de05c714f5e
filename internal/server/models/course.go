package models

import "time"

// DefaultCreditHours is assigned to every newly created course.
const DefaultCreditHours = 3.0

// DefaultMaxPoints is used when an assignment has no (or zero) max points.
const DefaultMaxPoints = 100.0

// Course is one enrollment of a user, optionally backed by a syllabus file.
// SyllabusFileName is set whenever SyllabusFileID is.
type Course struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Name               string     `json:"courseName"`
	Code               string     `json:"courseCode"`
	Semester           string     `json:"semester"`
	Year               int        `json:"year"`
	CreditHours        float64    `json:"creditHours"`
	CurrentGPA         *float64   `json:"currentGPA,omitempty"`
	SyllabusFileID     *string    `json:"syllabiFileId,omitempty"`
	SyllabusFileName   *string    `json:"syllabiFileName,omitempty"`
	SyllabusProcessed  bool       `json:"syllabiIsProcessed"`
	SyllabusUploadedAt *time.Time `json:"syllabiUploadedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// HasSyllabus reports whether a file is attached to the course.
func (c *Course) HasSyllabus() bool {
	return c.SyllabusFileID != nil && *c.SyllabusFileID != ""
}

// CourseView is a course together with a download URL for its syllabus.
type CourseView struct {
	Course
	FileURL *string `json:"fileUrl"`
}

// Assignment is a graded component of a course. Weight is a percentage
// (0-100) of the course grade.
type Assignment struct {
	ID        string  `json:"id"`
	CourseID  string  `json:"courseId"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	DueDate   *string `json:"dueDate,omitempty"`
	Weight    float64 `json:"weight"`
	Category  *string `json:"category,omitempty"`
	MaxPoints float64 `json:"maxPoints"`
}

// SemesterYear is one (semester, year) pair a user has courses in.
type SemesterYear struct {
	Semester string `json:"semester"`
	Year     int    `json:"year"`
}
