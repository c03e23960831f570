// file: internals/features/institute/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	m "institutku_backend/internals/features/institute/teachers/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

type CreateTeacherRequest struct {
	TeacherName  string  `json:"teacher_name"  validate:"required,min=3,max=100"`
	TeacherEmail string  `json:"teacher_email" validate:"required,email,max=120"`
	TeacherPhone *string `json:"teacher_phone" validate:"omitempty,min=8,max=20"`
}

func (r *CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		TeacherName:     strings.TrimSpace(r.TeacherName),
		TeacherEmail:    strings.ToLower(strings.TrimSpace(r.TeacherEmail)),
		TeacherPhone:    trimPtr(r.TeacherPhone),
		TeacherIsActive: true,
	}
}

type UpdateTeacherRequest struct {
	TeacherName     *string `json:"teacher_name"      validate:"omitempty,min=3,max=100"`
	TeacherEmail    *string `json:"teacher_email"     validate:"omitempty,email,max=120"`
	TeacherPhone    *string `json:"teacher_phone"     validate:"omitempty,min=8,max=20"`
	TeacherIsActive *bool   `json:"teacher_is_active" validate:"omitempty"`
}

func (r *UpdateTeacherRequest) ApplyTo(updates map[string]any) {
	if r.TeacherName != nil {
		updates["teacher_name"] = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherEmail != nil {
		updates["teacher_email"] = strings.ToLower(strings.TrimSpace(*r.TeacherEmail))
	}
	if r.TeacherPhone != nil {
		updates["teacher_phone"] = trimPtr(r.TeacherPhone)
	}
	if r.TeacherIsActive != nil {
		updates["teacher_is_active"] = *r.TeacherIsActive
	}
}
