// file: internals/features/routines/dto/routine_slot_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "institutku_backend/internals/features/routines/model"
)

func validCreateRequest() CreateRoutineRequest {
	return CreateRoutineRequest{
		Branches:  []uuid.UUID{uuid.New()},
		Batches:   []uuid.UUID{uuid.New()},
		Teachers:  []uuid.UUID{uuid.New()},
		Subject:   uuid.New(),
		Day:       "MONDAY",
		StartTime: "09:00",
		EndTime:   "10:30",
		ClassType: "LECTURE",
	}
}

func TestCreateRoutineRequestValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		mutate  func(r *CreateRoutineRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateRoutineRequest) {}, false},
		{"empty teachers", func(r *CreateRoutineRequest) { r.Teachers = nil }, true},
		{"empty batches", func(r *CreateRoutineRequest) { r.Batches = []uuid.UUID{} }, true},
		{"missing subject", func(r *CreateRoutineRequest) { r.Subject = uuid.Nil }, true},
		{"bad day", func(r *CreateRoutineRequest) { r.Day = "FUNDAY" }, true},
		{"lowercase day", func(r *CreateRoutineRequest) { r.Day = "monday" }, true},
		{"bad start format", func(r *CreateRoutineRequest) { r.StartTime = "9:00" }, true},
		{"bad end format", func(r *CreateRoutineRequest) { r.EndTime = "9:30" }, true},
		{"start with seconds", func(r *CreateRoutineRequest) { r.StartTime = "09:00:00" }, true},
		{"start out of range", func(r *CreateRoutineRequest) { r.StartTime = "25:00" }, true},
		{"minute out of range", func(r *CreateRoutineRequest) { r.StartTime = "09:60" }, true},
		{"midnight boundary ok", func(r *CreateRoutineRequest) { r.StartTime = "00:00"; r.EndTime = "23:59" }, false},
		{"bad class type", func(r *CreateRoutineRequest) { r.ClassType = "WORKSHOP" }, true},
		{"bad meeting link", func(r *CreateRoutineRequest) { s := "not-a-url"; r.MeetingLink = &s }, true},
		{"valid meeting link", func(r *CreateRoutineRequest) { s := "https://meet.example.com/x"; r.MeetingLink = &s }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := v.Struct(&req)
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestCheckTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid range", "09:00", "10:30", false},
		{"end before start", "14:00", "13:00", true},
		{"end equals start", "14:00", "14:00", true},
		{"full day", "00:00", "23:59", false},
		{"zero padding keeps order", "08:05", "08:50", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.StartTime, req.EndTime = tt.start, tt.end
			err := req.CheckTimeRange()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %s-%s", tt.start, tt.end)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateRoutineRequestToModel(t *testing.T) {
	req := validCreateRequest()
	room := "  B-204 "
	empty := "   "
	req.RoomNumber = &room
	req.Topic = &empty

	createdBy := uuid.New()
	slot := req.ToModel(createdBy)

	if slot.RoutineSlotCreatedBy != createdBy {
		t.Fatalf("created_by = %s, want %s", slot.RoutineSlotCreatedBy, createdBy)
	}
	if slot.RoutineSlotDay != m.DayMonday {
		t.Fatalf("day = %s, want MONDAY", slot.RoutineSlotDay)
	}
	if slot.RoutineSlotRoomNumber == nil || *slot.RoutineSlotRoomNumber != "B-204" {
		t.Fatalf("room number not trimmed: %v", slot.RoutineSlotRoomNumber)
	}
	if slot.RoutineSlotTopic != nil {
		t.Fatalf("blank topic should become nil, got %q", *slot.RoutineSlotTopic)
	}
}

func TestFromModelNormalizesNilSlices(t *testing.T) {
	slot := m.RoutineSlotModel{
		RoutineSlotID:        uuid.New(),
		RoutineSlotSubjectID: uuid.New(),
		RoutineSlotDay:       m.DayFriday,
	}
	resp := FromModel(slot, nil, nil, nil)

	if resp.Branches == nil || resp.Batches == nil || resp.Teachers == nil {
		t.Fatalf("member slices must be non-nil: %+v", resp)
	}
	if len(resp.Branches)+len(resp.Batches)+len(resp.Teachers) != 0 {
		t.Fatalf("expected empty member slices, got %+v", resp)
	}
}
