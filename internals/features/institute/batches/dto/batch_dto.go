// file: internals/features/institute/batches/dto/batch_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "institutku_backend/internals/features/institute/batches/model"
)

type CreateBatchRequest struct {
	BatchName     string     `json:"batch_name"      validate:"required,min=2,max=100"`
	BatchBranchID *uuid.UUID `json:"batch_branch_id" validate:"omitempty"`
}

func (r *CreateBatchRequest) ToModel() m.BatchModel {
	return m.BatchModel{
		BatchName:     strings.TrimSpace(r.BatchName),
		BatchBranchID: r.BatchBranchID,
		BatchIsActive: true,
	}
}

type UpdateBatchRequest struct {
	BatchName     *string    `json:"batch_name"      validate:"omitempty,min=2,max=100"`
	BatchBranchID *uuid.UUID `json:"batch_branch_id" validate:"omitempty"`
	BatchIsActive *bool      `json:"batch_is_active" validate:"omitempty"`
}

func (r *UpdateBatchRequest) ApplyTo(updates map[string]any) {
	if r.BatchName != nil {
		updates["batch_name"] = strings.TrimSpace(*r.BatchName)
	}
	if r.BatchBranchID != nil {
		updates["batch_branch_id"] = *r.BatchBranchID
	}
	if r.BatchIsActive != nil {
		updates["batch_is_active"] = *r.BatchIsActive
	}
}
