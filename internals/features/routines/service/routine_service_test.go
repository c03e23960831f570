// file: internals/features/routines/service/routine_service_test.go
package service

import (
	"context"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	batchModel "institutku_backend/internals/features/institute/batches/model"
	branchModel "institutku_backend/internals/features/institute/branches/model"
	subjectModel "institutku_backend/internals/features/institute/subjects/model"
	teacherModel "institutku_backend/internals/features/institute/teachers/model"
	d "institutku_backend/internals/features/routines/dto"
	m "institutku_backend/internals/features/routines/model"
)

func TestDedupe(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name string
		in   []uuid.UUID
		want int
	}{
		{"empty", nil, 0},
		{"no duplicates", []uuid.UUID{a, b}, 2},
		{"all duplicates", []uuid.UUID{a, a, a}, 1},
		{"mixed", []uuid.UUID{a, b, a, b, a}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.in)
			if len(got) != tt.want {
				t.Fatalf("Dedupe(%v) len = %d, want %d", tt.in, len(got), tt.want)
			}
		})
	}

	// urutan kemunculan pertama dipertahankan
	got := Dedupe([]uuid.UUID{b, a, b})
	if got[0] != b || got[1] != a {
		t.Fatalf("Dedupe order not preserved: %v", got)
	}
}

func TestUnion(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	got := Union([]uuid.UUID{a, b}, []uuid.UUID{b, c})
	if len(got) != 3 {
		t.Fatalf("Union len = %d, want 3", len(got))
	}
	base := []uuid.UUID{a}
	_ = Union(base, []uuid.UUID{b})
	if len(base) != 1 {
		t.Fatalf("Union must not mutate base, got %v", base)
	}
}

func TestConflictKeyDeterministic(t *testing.T) {
	subject := uuid.New()
	k1 := ConflictKey(m.DayMonday, "09:00", "10:30", subject)
	k2 := ConflictKey(m.DayMonday, "09:00", "10:30", subject)
	if k1 != k2 {
		t.Fatalf("same inputs must give same key: %q vs %q", k1, k2)
	}
	k3 := ConflictKey(m.DayTuesday, "09:00", "10:30", subject)
	if k1 == k3 {
		t.Fatalf("different day must give different key")
	}
}

/* =========================
   Integration (butuh Postgres)
========================= */

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run DB-backed tests")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(
		&branchModel.BranchModel{},
		&batchModel.BatchModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&m.RoutineSlotModel{},
		&m.RoutineSlotBranchModel{},
		&m.RoutineSlotBatchModel{},
		&m.RoutineSlotTeacherModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedWorld(t *testing.T, db *gorm.DB) (branch branchModel.BranchModel, batch batchModel.BatchModel, subject subjectModel.SubjectModel, teacher teacherModel.TeacherModel) {
	t.Helper()
	branch = branchModel.BranchModel{BranchName: "Pusat", BranchCode: "KRJ-2026-TST-" + uuid.New().String()[:2], BranchAreaCode: "TST"}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	batch = batchModel.BatchModel{BatchName: "Angkatan 1", BatchBranchID: &branch.BranchID}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	subject = subjectModel.SubjectModel{
		SubjectName: "Aljabar", SubjectInitials: "ALJ",
		SubjectCode: "KRJ-2026-ALJ-" + uuid.New().String()[:3], SubjectType: subjectModel.SubjectTypeTheory,
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	teacher = teacherModel.TeacherModel{TeacherName: "Budi", TeacherEmail: uuid.New().String() + "@test.local"}
	if err := db.Create(&teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return
}

func createReq(branch, batch, subject, teacher uuid.UUID, start, end string) *d.CreateRoutineRequest {
	return &d.CreateRoutineRequest{
		Branches:  []uuid.UUID{branch},
		Batches:   []uuid.UUID{batch},
		Teachers:  []uuid.UUID{teacher},
		Subject:   subject,
		Day:       "MONDAY",
		StartTime: start,
		EndTime:   end,
		ClassType: "LECTURE",
	}
}

func TestCreateRoutineIntegration(t *testing.T) {
	db := testDB(t)
	svc := New(db)
	ctx := context.Background()
	admin := uuid.New()

	branch, batch, subject, teacher := seedWorld(t, db)

	resp, err := svc.CreateRoutine(ctx, createReq(branch.BranchID, batch.BatchID, subject.SubjectID, teacher.TeacherID, "08:00", "09:30"), admin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.CreatedBy != admin {
		t.Fatalf("created_by = %s, want %s", resp.CreatedBy, admin)
	}
	if len(resp.Teachers) != 1 || resp.Teachers[0] != teacher.TeacherID {
		t.Fatalf("teachers = %v", resp.Teachers)
	}

	// slot identik yang berbagi batch dan teacher → 409
	_, err = svc.CreateRoutine(ctx, createReq(branch.BranchID, batch.BatchID, subject.SubjectID, teacher.TeacherID, "08:00", "09:30"), admin)
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}

	// subject tidak ada → 404, dan tidak ada slot baru tertinggal
	var before int64
	db.Model(&m.RoutineSlotModel{}).Count(&before)
	_, err = svc.CreateRoutine(ctx, createReq(branch.BranchID, batch.BatchID, uuid.New(), teacher.TeacherID, "10:00", "11:00"), admin)
	fe, ok = err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	var after int64
	db.Model(&m.RoutineSlotModel{}).Count(&after)
	if before != after {
		t.Fatalf("rollback failed: slots %d -> %d", before, after)
	}

	// teacher fiktif → 400
	_, err = svc.CreateRoutine(ctx, createReq(branch.BranchID, batch.BatchID, subject.SubjectID, uuid.New(), "11:00", "12:00"), admin)
	fe, ok = err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAssignTeachersIntegration(t *testing.T) {
	db := testDB(t)
	svc := New(db)
	ctx := context.Background()

	branch, batch, subject, teacher := seedWorld(t, db)
	resp, err := svc.CreateRoutine(ctx, createReq(branch.BranchID, batch.BatchID, subject.SubjectID, teacher.TeacherID, "13:00", "14:30"), uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second := teacherModel.TeacherModel{TeacherName: "Sari", TeacherEmail: uuid.New().String() + "@test.local"}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second teacher: %v", err)
	}

	added, err := svc.AssignTeachers(ctx, resp.RoutineSlotID, []uuid.UUID{second.TeacherID})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}

	// idempotent: assign yang sama lagi → added 0
	added, err = svc.AssignTeachers(ctx, resp.RoutineSlotID, []uuid.UUID{second.TeacherID})
	if err != nil {
		t.Fatalf("re-assign: %v", err)
	}
	if added != 0 {
		t.Fatalf("re-assign added = %d, want 0", added)
	}

	// routine tidak ada → 404
	_, err = svc.AssignTeachers(ctx, uuid.New(), []uuid.UUID{second.TeacherID})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
