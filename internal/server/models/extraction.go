package models

// Confidence holds the model's 0-1 certainty per extracted course field.
type Confidence struct {
	Name     float64 `json:"name"`
	Code     float64 `json:"code"`
	Semester float64 `json:"semester"`
	Year     float64 `json:"year"`
}

// ExtractedCourseInfo is the course metadata read from a syllabus. Fields the
// model could not determine are nil.
type ExtractedCourseInfo struct {
	Name       *string    `json:"name"`
	Code       *string    `json:"code"`
	Semester   *string    `json:"semester"`
	Year       *int       `json:"year"`
	Confidence Confidence `json:"confidence"`
}

// ExtractedAssignment is one assignment read from a syllabus.
type ExtractedAssignment struct {
	Name      string   `json:"name"`
	DueDate   *string  `json:"dueDate"`
	Weight    float64  `json:"weight"`
	Category  *string  `json:"category"`
	MaxPoints *float64 `json:"maxPoints"`
}

// Extraction is the parsed completion.
type Extraction struct {
	CourseInfo  *ExtractedCourseInfo  `json:"courseInfo"`
	Assignments []ExtractedAssignment `json:"assignments"`
}

// ExtractionResult is returned from syllabus extraction whether or not the
// data was persisted.
type ExtractionResult struct {
	CourseInfo  *ExtractedCourseInfo  `json:"courseInfo"`
	Assignments []ExtractedAssignment `json:"assignments"`
	Count       int                   `json:"count"`
}

// CourseInfoUpdate is a partial course update; nil fields are left as is.
type CourseInfoUpdate struct {
	Name        *string  `json:"courseName,omitempty"`
	Code        *string  `json:"courseCode,omitempty"`
	Semester    *string  `json:"semester,omitempty"`
	Year        *int     `json:"year,omitempty"`
	CreditHours *float64 `json:"creditHours,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u CourseInfoUpdate) Empty() bool {
	return u.Name == nil && u.Code == nil && u.Semester == nil && u.Year == nil && u.CreditHours == nil
}

// Apply copies the set fields onto c.
func (u CourseInfoUpdate) Apply(c *Course) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Code != nil {
		c.Code = *u.Code
	}
	if u.Semester != nil {
		c.Semester = *u.Semester
	}
	if u.Year != nil {
		c.Year = *u.Year
	}
	if u.CreditHours != nil {
		c.CreditHours = *u.CreditHours
	}
}

// CourseInfoUpdateFrom keeps each extracted field that is present, non-empty
// and whose confidence is strictly above threshold.
func CourseInfoUpdateFrom(info *ExtractedCourseInfo, threshold float64) CourseInfoUpdate {
	var u CourseInfoUpdate
	if info == nil {
		return u
	}
	if info.Name != nil && *info.Name != "" && info.Confidence.Name > threshold {
		u.Name = info.Name
	}
	if info.Code != nil && *info.Code != "" && info.Confidence.Code > threshold {
		u.Code = info.Code
	}
	if info.Semester != nil && *info.Semester != "" && info.Confidence.Semester > threshold {
		u.Semester = info.Semester
	}
	if info.Year != nil && *info.Year != 0 && info.Confidence.Year > threshold {
		u.Year = info.Year
	}
	return u
}

// ToAssignment maps an extracted assignment onto a stored one. Zero or
// missing max points become DefaultMaxPoints and empty strings become nil.
func (a ExtractedAssignment) ToAssignment(courseID, userID string) *Assignment {
	maxPoints := DefaultMaxPoints
	if a.MaxPoints != nil && *a.MaxPoints != 0 {
		maxPoints = *a.MaxPoints
	}
	return &Assignment{
		CourseID:  courseID,
		UserID:    userID,
		Name:      a.Name,
		DueDate:   nonEmpty(a.DueDate),
		Weight:    a.Weight,
		Category:  nonEmpty(a.Category),
		MaxPoints: maxPoints,
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
