// file: internals/features/institute/branches/dto/branch_dto.go
package dto

import (
	"strings"

	m "institutku_backend/internals/features/institute/branches/model"
)

type CreateBranchRequest struct {
	BranchName     string `json:"branch_name"      validate:"required,min=3,max=100"`
	BranchAreaCode string `json:"branch_area_code" validate:"required,len=3,uppercase,alpha"`
	BranchAddress  string `json:"branch_address"   validate:"omitempty,max=500"`
}

func (r *CreateBranchRequest) ToModel() m.BranchModel {
	return m.BranchModel{
		BranchName:     strings.TrimSpace(r.BranchName),
		BranchAreaCode: strings.ToUpper(strings.TrimSpace(r.BranchAreaCode)),
		BranchAddress:  strings.TrimSpace(r.BranchAddress),
		BranchIsActive: true,
	}
}

type UpdateBranchRequest struct {
	BranchName     *string `json:"branch_name"      validate:"omitempty,min=3,max=100"`
	BranchAddress  *string `json:"branch_address"   validate:"omitempty,max=500"`
	BranchIsActive *bool   `json:"branch_is_active" validate:"omitempty"`
}

// ApplyTo memetakan field non-nil ke map update kolom.
func (r *UpdateBranchRequest) ApplyTo(updates map[string]any) {
	if r.BranchName != nil {
		updates["branch_name"] = strings.TrimSpace(*r.BranchName)
	}
	if r.BranchAddress != nil {
		updates["branch_address"] = strings.TrimSpace(*r.BranchAddress)
	}
	if r.BranchIsActive != nil {
		updates["branch_is_active"] = *r.BranchIsActive
	}
}
