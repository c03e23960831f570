// file: internals/features/commerce/courses/dto/course_dto.go
package dto

import (
	"strings"

	m "institutku_backend/internals/features/commerce/courses/model"
)

type CreateCourseRequest struct {
	CourseTitle       string `json:"course_title"       validate:"required,min=3,max=150"`
	CourseDescription string `json:"course_description" validate:"omitempty,max=2000"`

	CoursePrice        int64 `json:"course_price"         validate:"required,gt=0"`
	CourseDurationDays *int  `json:"course_duration_days" validate:"omitempty,gt=0"`
}

func (r *CreateCourseRequest) ToModel() m.CourseModel {
	return m.CourseModel{
		CourseTitle:        strings.TrimSpace(r.CourseTitle),
		CourseDescription:  strings.TrimSpace(r.CourseDescription),
		CoursePrice:        r.CoursePrice,
		CourseDurationDays: r.CourseDurationDays,
		CourseIsActive:     true,
	}
}

type UpdateCourseRequest struct {
	CourseTitle        *string `json:"course_title"         validate:"omitempty,min=3,max=150"`
	CourseDescription  *string `json:"course_description"   validate:"omitempty,max=2000"`
	CoursePrice        *int64  `json:"course_price"         validate:"omitempty,gt=0"`
	CourseDurationDays *int    `json:"course_duration_days" validate:"omitempty,gt=0"`
	CourseIsActive     *bool   `json:"course_is_active"     validate:"omitempty"`
}

func (r *UpdateCourseRequest) ApplyTo(updates map[string]any) {
	if r.CourseTitle != nil {
		updates["course_title"] = strings.TrimSpace(*r.CourseTitle)
	}
	if r.CourseDescription != nil {
		updates["course_description"] = strings.TrimSpace(*r.CourseDescription)
	}
	if r.CoursePrice != nil {
		updates["course_price"] = *r.CoursePrice
	}
	if r.CourseDurationDays != nil {
		updates["course_duration_days"] = *r.CourseDurationDays
	}
	if r.CourseIsActive != nil {
		updates["course_is_active"] = *r.CourseIsActive
	}
}
