// file: internals/features/routines/model/routine_slot_members_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Join table keanggotaan. Composite PK = set-union gratis lewat
// INSERT ... ON CONFLICT DO NOTHING; kedua arah referensi hidup di baris yang sama
// sehingga invariant "both sides updated atomically" terpenuhi by construction.

type RoutineSlotTeacherModel struct {
	RoutineSlotTeacherRoutineID uuid.UUID `gorm:"column:routine_slot_teacher_routine_id;type:uuid;primaryKey" json:"routine_slot_teacher_routine_id"`
	RoutineSlotTeacherTeacherID uuid.UUID `gorm:"column:routine_slot_teacher_teacher_id;type:uuid;primaryKey;index" json:"routine_slot_teacher_teacher_id"`
	RoutineSlotTeacherCreatedAt time.Time `gorm:"column:routine_slot_teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"routine_slot_teacher_created_at"`
}

func (RoutineSlotTeacherModel) TableName() string { return "routine_slot_teachers" }

type RoutineSlotBatchModel struct {
	RoutineSlotBatchRoutineID uuid.UUID `gorm:"column:routine_slot_batch_routine_id;type:uuid;primaryKey" json:"routine_slot_batch_routine_id"`
	RoutineSlotBatchBatchID   uuid.UUID `gorm:"column:routine_slot_batch_batch_id;type:uuid;primaryKey;index" json:"routine_slot_batch_batch_id"`
	RoutineSlotBatchCreatedAt time.Time `gorm:"column:routine_slot_batch_created_at;type:timestamptz;not null;autoCreateTime" json:"routine_slot_batch_created_at"`
}

func (RoutineSlotBatchModel) TableName() string { return "routine_slot_batches" }

type RoutineSlotBranchModel struct {
	RoutineSlotBranchRoutineID uuid.UUID `gorm:"column:routine_slot_branch_routine_id;type:uuid;primaryKey" json:"routine_slot_branch_routine_id"`
	RoutineSlotBranchBranchID  uuid.UUID `gorm:"column:routine_slot_branch_branch_id;type:uuid;primaryKey;index" json:"routine_slot_branch_branch_id"`
	RoutineSlotBranchCreatedAt time.Time `gorm:"column:routine_slot_branch_created_at;type:timestamptz;not null;autoCreateTime" json:"routine_slot_branch_created_at"`
}

func (RoutineSlotBranchModel) TableName() string { return "routine_slot_branches" }
