// file: internals/features/institute/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	m "institutku_backend/internals/features/institute/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName     string `json:"subject_name"     validate:"required,min=3,max=100"`
	SubjectInitials string `json:"subject_initials" validate:"required,min=2,max=5,uppercase,alpha"`

	SubjectType        string `json:"subject_type"        validate:"omitempty,oneof=THEORY LAB SEMINAR OPTIONAL"`
	SubjectDescription string `json:"subject_description" validate:"omitempty,max=1000"`
}

func (r *CreateSubjectRequest) ToModel() m.SubjectModel {
	st := m.SubjectTypeEnum(r.SubjectType)
	if st == "" {
		st = m.SubjectTypeTheory
	}
	return m.SubjectModel{
		SubjectName:        strings.TrimSpace(r.SubjectName),
		SubjectInitials:    strings.ToUpper(strings.TrimSpace(r.SubjectInitials)),
		SubjectType:        st,
		SubjectDescription: strings.TrimSpace(r.SubjectDescription),
		SubjectIsActive:    true,
	}
}

type UpdateSubjectRequest struct {
	SubjectName        *string `json:"subject_name"        validate:"omitempty,min=3,max=100"`
	SubjectType        *string `json:"subject_type"        validate:"omitempty,oneof=THEORY LAB SEMINAR OPTIONAL"`
	SubjectDescription *string `json:"subject_description" validate:"omitempty,max=1000"`
	SubjectIsActive    *bool   `json:"subject_is_active"   validate:"omitempty"`
}

// Kode & inisial immutable setelah create; keduanya sengaja tidak ada di sini.
func (r *UpdateSubjectRequest) ApplyTo(updates map[string]any) {
	if r.SubjectName != nil {
		updates["subject_name"] = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectType != nil {
		updates["subject_type"] = *r.SubjectType
	}
	if r.SubjectDescription != nil {
		updates["subject_description"] = strings.TrimSpace(*r.SubjectDescription)
	}
	if r.SubjectIsActive != nil {
		updates["subject_is_active"] = *r.SubjectIsActive
	}
}
