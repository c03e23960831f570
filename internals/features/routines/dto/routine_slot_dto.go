// file: internals/features/routines/dto/routine_slot_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "institutku_backend/internals/features/routines/model"
)

/* =========================================================
   0) helpers
   ========================================================= */

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

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateRoutineRequest struct {
	Branches []uuid.UUID `json:"branches" validate:"required,min=1"`
	Batches  []uuid.UUID `json:"batches"  validate:"required,min=1"`
	Teachers []uuid.UUID `json:"teachers" validate:"required,min=1"`

	Subject uuid.UUID `json:"subject" validate:"required"`

	// len=5 menolak jam tanpa zero-padding ("9:00"); urutan leksikal
	// string "HH:MM" hanya kronologis kalau selalu 5 karakter.
	Day       string `json:"day"        validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	StartTime string `json:"start_time" validate:"required,len=5,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,len=5,datetime=15:04"`

	SpecificDate *time.Time `json:"specific_date" validate:"omitempty"`

	ClassType   string  `json:"class_type"   validate:"required,oneof=LECTURE LAB ONLINE"`
	RoomNumber  *string `json:"room_number"  validate:"omitempty,max=20"`
	MeetingLink *string `json:"meeting_link" validate:"omitempty,url,max=255"`
	Topic       *string `json:"topic"        validate:"omitempty,max=255"`
}

// CheckTimeRange: "HH:MM" zero-padded, jadi perbandingan leksikal = kronologis.
// Dipanggil controller setelah validasi struct.
func (r *CreateRoutineRequest) CheckTimeRange() error {
	if r.EndTime <= r.StartTime {
		return errors.New("end_time must be after start_time")
	}
	return nil
}

func (r *CreateRoutineRequest) ToModel(createdBy uuid.UUID) m.RoutineSlotModel {
	return m.RoutineSlotModel{
		RoutineSlotSubjectID:    r.Subject,
		RoutineSlotDay:          m.DayEnum(r.Day),
		RoutineSlotStartTime:    r.StartTime,
		RoutineSlotEndTime:      r.EndTime,
		RoutineSlotSpecificDate: r.SpecificDate,
		RoutineSlotClassType:    m.ClassTypeEnum(r.ClassType),
		RoutineSlotRoomNumber:   trimPtr(r.RoomNumber),
		RoutineSlotMeetingLink:  trimPtr(r.MeetingLink),
		RoutineSlotTopic:        trimPtr(r.Topic),
		RoutineSlotCreatedBy:    createdBy,
	}
}

type AssignTeachersRequest struct {
	Teachers []uuid.UUID `json:"teachers" validate:"required,min=1"`
}

type AssignBatchesRequest struct {
	Batches []uuid.UUID `json:"batches" validate:"required,min=1"`
}

type ListRoutineQuery struct {
	Day       *string    `query:"day"        validate:"omitempty,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	SubjectID *uuid.UUID `query:"subject_id" validate:"omitempty"`
	TeacherID *uuid.UUID `query:"teacher_id" validate:"omitempty"`
	BatchID   *uuid.UUID `query:"batch_id"   validate:"omitempty"`
	BranchID  *uuid.UUID `query:"branch_id"  validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type RoutineSlotResponse struct {
	RoutineSlotID uuid.UUID `json:"routine_slot_id"`

	Subject  uuid.UUID   `json:"subject"`
	Branches []uuid.UUID `json:"branches"`
	Batches  []uuid.UUID `json:"batches"`
	Teachers []uuid.UUID `json:"teachers"`

	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	SpecificDate *time.Time `json:"specific_date,omitempty"`

	ClassType   string  `json:"class_type"`
	RoomNumber  *string `json:"room_number,omitempty"`
	MeetingLink *string `json:"meeting_link,omitempty"`
	Topic       *string `json:"topic,omitempty"`

	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(slot m.RoutineSlotModel, branches, batches, teachers []uuid.UUID) RoutineSlotResponse {
	if branches == nil {
		branches = []uuid.UUID{}
	}
	if batches == nil {
		batches = []uuid.UUID{}
	}
	if teachers == nil {
		teachers = []uuid.UUID{}
	}
	return RoutineSlotResponse{
		RoutineSlotID: slot.RoutineSlotID,
		Subject:       slot.RoutineSlotSubjectID,
		Branches:      branches,
		Batches:       batches,
		Teachers:      teachers,
		Day:           string(slot.RoutineSlotDay),
		StartTime:     slot.RoutineSlotStartTime,
		EndTime:       slot.RoutineSlotEndTime,
		SpecificDate:  slot.RoutineSlotSpecificDate,
		ClassType:     string(slot.RoutineSlotClassType),
		RoomNumber:    slot.RoutineSlotRoomNumber,
		MeetingLink:   slot.RoutineSlotMeetingLink,
		Topic:         slot.RoutineSlotTopic,
		CreatedBy:     slot.RoutineSlotCreatedBy,
		CreatedAt:     slot.RoutineSlotCreatedAt,
	}
}
