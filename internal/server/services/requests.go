package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/go-playground/validator/v10"
)

type CreateSyllabusRequest struct {
	CourseName string `json:"courseName" validate:"required"`
	CourseCode string `json:"courseCode"`
	Semester   string `json:"semester" validate:"required"`
	Year       int    `json:"year" validate:"gte=1900,lte=2200"`
	FileID     string `json:"fileId" validate:"required"`
	FileName   string `json:"fileName" validate:"required"`
}

type CourseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

type FileRequest struct {
	FileID string `json:"fileId" validate:"required"`
}

type UpdateSyllabusInfoRequest struct {
	CourseID    string   `json:"courseId" validate:"required"`
	CourseName  *string  `json:"courseName,omitempty" validate:"omitempty,min=1"`
	CourseCode  *string  `json:"courseCode,omitempty"`
	Semester    *string  `json:"semester,omitempty" validate:"omitempty,min=1"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	CreditHours *float64 `json:"creditHours,omitempty" validate:"omitempty,gt=0"`
}

func (r UpdateSyllabusInfoRequest) update() models.CourseInfoUpdate {
	return models.CourseInfoUpdate{
		Name:        r.CourseName,
		Code:        r.CourseCode,
		Semester:    r.Semester,
		Year:        r.Year,
		CreditHours: r.CreditHours,
	}
}

type CreateAssignmentRequest struct {
	CourseID  string   `json:"courseId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	DueDate   *string  `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Weight    float64  `json:"weight" validate:"gte=0,lte=100"`
	Category  *string  `json:"category,omitempty"`
	MaxPoints *float64 `json:"maxPoints,omitempty" validate:"omitempty,gt=0"`
}

type ExtractAssignmentsRequest struct {
	CourseID    string `json:"courseId" validate:"required"`
	AutoProcess bool   `json:"autoProcess"`
}

type AddGradeRequest struct {
	AssignmentID string  `json:"assignmentId" validate:"required"`
	PointsEarned float64 `json:"pointsEarned" validate:"gte=0"`
	MaxPoints    float64 `json:"maxPoints" validate:"gt=0"`
}

type UpdateProfileRequest struct {
	School *string `json:"school,omitempty" validate:"omitempty,max=200"`
}

type ApproveUserRequest struct {
	UserID string `json:"userId" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// isots accepts only the fixed-width provider timestamp layout.
	if err := v.RegisterValidation("isots", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(common.ISOTimestampLayout, fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// validateRequest reports the first failing field of req as a
// ValidationFailure.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return common.NewError(common.ErrValidation, "Invalid %s: failed '%s' check", fe.Field(), fe.Tag())
	}
	return common.NewError(common.ErrValidation, "Invalid request: %s", err.Error())
}
