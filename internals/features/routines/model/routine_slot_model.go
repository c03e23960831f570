// file: internals/features/routines/model/routine_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayEnum string

const (
	DaySunday    DayEnum = "SUNDAY"
	DayMonday    DayEnum = "MONDAY"
	DayTuesday   DayEnum = "TUESDAY"
	DayWednesday DayEnum = "WEDNESDAY"
	DayThursday  DayEnum = "THURSDAY"
	DayFriday    DayEnum = "FRIDAY"
	DaySaturday  DayEnum = "SATURDAY"
)

type ClassTypeEnum string

const (
	ClassTypeLecture ClassTypeEnum = "LECTURE"
	ClassTypeLab     ClassTypeEnum = "LAB"
	ClassTypeOnline  ClassTypeEnum = "ONLINE"
)

// RoutineSlotModel adalah record pemilik fakta penjadwalan.
// Keanggotaan branch/batch/teacher disimpan di join table
// (satu baris = forward reference sekaligus back reference).
type RoutineSlotModel struct {
	RoutineSlotID uuid.UUID `gorm:"column:routine_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"routine_slot_id"`

	RoutineSlotSubjectID uuid.UUID `gorm:"column:routine_slot_subject_id;type:uuid;not null;index" json:"routine_slot_subject_id"`

	RoutineSlotDay DayEnum `gorm:"column:routine_slot_day;type:varchar(10);not null" json:"routine_slot_day"`
	// "HH:MM" zero-padded; perbandingan leksikal = kronologis
	RoutineSlotStartTime string `gorm:"column:routine_slot_start_time;type:varchar(5);not null" json:"routine_slot_start_time"`
	RoutineSlotEndTime   string `gorm:"column:routine_slot_end_time;type:varchar(5);not null" json:"routine_slot_end_time"`

	// sesi sekali jalan (non-recurring), opsional
	RoutineSlotSpecificDate *time.Time `gorm:"column:routine_slot_specific_date;type:date" json:"routine_slot_specific_date,omitempty"`

	RoutineSlotClassType   ClassTypeEnum `gorm:"column:routine_slot_class_type;type:varchar(10);not null" json:"routine_slot_class_type"`
	RoutineSlotRoomNumber  *string       `gorm:"column:routine_slot_room_number;type:varchar(20)" json:"routine_slot_room_number,omitempty"`
	RoutineSlotMeetingLink *string       `gorm:"column:routine_slot_meeting_link;type:varchar(255)" json:"routine_slot_meeting_link,omitempty"`
	RoutineSlotTopic       *string       `gorm:"column:routine_slot_topic;type:varchar(255)" json:"routine_slot_topic,omitempty"`

	RoutineSlotCreatedBy uuid.UUID `gorm:"column:routine_slot_created_by;type:uuid;not null" json:"routine_slot_created_by"`

	RoutineSlotCreatedAt time.Time      `gorm:"column:routine_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"routine_slot_created_at"`
	RoutineSlotUpdatedAt time.Time      `gorm:"column:routine_slot_updated_at;type:timestamptz;not null;autoUpdateTime" json:"routine_slot_updated_at"`
	RoutineSlotDeletedAt gorm.DeletedAt `gorm:"column:routine_slot_deleted_at;index" json:"-"`
}

func (RoutineSlotModel) TableName() string { return "routine_slots" }

var AllDays = []DayEnum{
	DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday,
}
