// file: internals/features/routines/service/routine_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "institutku_backend/internals/features/routines/dto"
	m "institutku_backend/internals/features/routines/model"
)

// RoutineService memegang alur inti: pembuatan slot jadwal + assignment
// teacher/batch, semuanya transaksional. Invariant yang dijaga:
//   - setiap referensi (subject, branch, batch, teacher) harus ada;
//   - tidak ada dua slot hidup dengan (day, start, end, subject) sama yang
//     berbagi >=1 batch DAN >=1 teacher;
//   - forward + back reference konsisten (join table, satu baris dua arah).
type RoutineService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *RoutineService {
	return &RoutineService{DB: db}
}

/* =========================
   Helpers
   ========================= */

// Dedupe mempertahankan urutan kemunculan pertama.
func Dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Union menggabungkan base dengan extra tanpa duplikat.
func Union(base, extra []uuid.UUID) []uuid.UUID {
	return Dedupe(append(append([]uuid.UUID{}, base...), extra...))
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// ConflictKey: kunci serialisasi untuk advisory lock (day|start|end|subject).
func ConflictKey(day m.DayEnum, startTime, endTime string, subjectID uuid.UUID) string {
	return fmt.Sprintf("routine:%s|%s|%s|%s", day, startTime, endTime, subjectID)
}

// lockConflictKey menserialisasi penulis pada kunci konflik yang sama di dalam
// transaksi berjalan, menutup celah check-then-act antar request konkuren.
func (s *RoutineService) lockConflictKey(tx *gorm.DB, key string) error {
	return tx.Exec(`SELECT pg_advisory_xact_lock(hashtextextended(?, 0))`, key).Error
}

// countAlive menghitung baris hidup yang id-nya ada di ids.
func countAlive(tx *gorm.DB, table, idColumn, deletedColumn string, ids []uuid.UUID) (int64, error) {
	var n int64
	err := tx.Raw(
		fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = ANY(?::uuid[]) AND %s IS NULL`,
			table, idColumn, deletedColumn),
		pq.Array(idStrings(ids)),
	).Scan(&n).Error
	return n, err
}

// verifyReferences: existence check count-match untuk branches/batches/teachers.
// Mismatch → 400 yang menyebut set mana yang cacat.
func verifyReferences(tx *gorm.DB, branches, batches, teachers []uuid.UUID) error {
	if len(branches) > 0 {
		n, err := countAlive(tx, "branches", "branch_id", "branch_deleted_at", branches)
		if err != nil {
			return err
		}
		if n != int64(len(branches)) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid branch IDs provided")
		}
	}
	if len(batches) > 0 {
		n, err := countAlive(tx, "batches", "batch_id", "batch_deleted_at", batches)
		if err != nil {
			return err
		}
		if n != int64(len(batches)) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid batch IDs provided")
		}
	}
	if len(teachers) > 0 {
		n, err := countAlive(tx, "teachers", "teacher_id", "teacher_deleted_at", teachers)
		if err != nil {
			return err
		}
		if n != int64(len(teachers)) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher IDs provided")
		}
	}
	return nil
}

// hasConflict: ada slot hidup lain dengan (day, start, end, subject) identik
// yang berbagi minimal satu batch DAN minimal satu teacher dengan kandidat.
func hasConflict(tx *gorm.DB, exclude uuid.UUID, day m.DayEnum, startTime, endTime string, subjectID uuid.UUID, batches, teachers []uuid.UUID) (bool, error) {
	if len(batches) == 0 || len(teachers) == 0 {
		return false, nil
	}
	var n int64
	err := tx.Raw(`
		SELECT count(*)
		FROM routine_slots rs
		WHERE rs.routine_slot_day = ?
		  AND rs.routine_slot_start_time = ?
		  AND rs.routine_slot_end_time = ?
		  AND rs.routine_slot_subject_id = ?
		  AND rs.routine_slot_id <> ?
		  AND rs.routine_slot_deleted_at IS NULL
		  AND EXISTS (
			SELECT 1 FROM routine_slot_batches b
			WHERE b.routine_slot_batch_routine_id = rs.routine_slot_id
			  AND b.routine_slot_batch_batch_id = ANY(?::uuid[])
		  )
		  AND EXISTS (
			SELECT 1 FROM routine_slot_teachers t
			WHERE t.routine_slot_teacher_routine_id = rs.routine_slot_id
			  AND t.routine_slot_teacher_teacher_id = ANY(?::uuid[])
		  )
	`, day, startTime, endTime, subjectID, exclude,
		pq.Array(idStrings(batches)), pq.Array(idStrings(teachers)),
	).Scan(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

/* =========================
   Member lookups
   ========================= */

func (s *RoutineService) memberIDs(tx *gorm.DB, routineID uuid.UUID) (branches, batches, teachers []uuid.UUID, err error) {
	if err = tx.Model(&m.RoutineSlotBranchModel{}).
		Where("routine_slot_branch_routine_id = ?", routineID).
		Order("routine_slot_branch_created_at").
		Pluck("routine_slot_branch_branch_id", &branches).Error; err != nil {
		return
	}
	if err = tx.Model(&m.RoutineSlotBatchModel{}).
		Where("routine_slot_batch_routine_id = ?", routineID).
		Order("routine_slot_batch_created_at").
		Pluck("routine_slot_batch_batch_id", &batches).Error; err != nil {
		return
	}
	err = tx.Model(&m.RoutineSlotTeacherModel{}).
		Where("routine_slot_teacher_routine_id = ?", routineID).
		Order("routine_slot_teacher_created_at").
		Pluck("routine_slot_teacher_teacher_id", &teachers).Error
	return
}

// MemberIDs versi publik (di luar transaksi) untuk kebutuhan listing/detail.
func (s *RoutineService) MemberIDs(ctx context.Context, routineID uuid.UUID) ([]uuid.UUID, []uuid.UUID, []uuid.UUID, error) {
	return s.memberIDs(s.DB.WithContext(ctx), routineID)
}

/* =========================
   Create
   ========================= */

// CreateRoutine menjalankan kelima langkah pembuatan slot dalam satu transaksi:
// subject exists → count-match referensi → advisory lock + conflict check →
// insert slot (creator dari sesi) → set-union join rows. Gagal di mana pun =
// rollback total.
func (s *RoutineService) CreateRoutine(ctx context.Context, req *d.CreateRoutineRequest, createdBy uuid.UUID) (d.RoutineSlotResponse, error) {
	var resp d.RoutineSlotResponse

	branches := Dedupe(req.Branches)
	batches := Dedupe(req.Batches)
	teachers := Dedupe(req.Teachers)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) subject harus ada
		var exists bool
		if er := tx.Raw(
			`SELECT EXISTS (SELECT 1 FROM subjects WHERE subject_id = ? AND subject_deleted_at IS NULL)`,
			req.Subject,
		).Scan(&exists).Error; er != nil {
			return er
		}
		if !exists {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}

		// 2) referensi branch/batch/teacher (murah dan paling sering salah → duluan)
		if er := verifyReferences(tx, branches, batches, teachers); er != nil {
			return er
		}

		// 3) serialisasi penulis pada kunci konflik, lalu cek bentrok
		key := ConflictKey(m.DayEnum(req.Day), req.StartTime, req.EndTime, req.Subject)
		if er := s.lockConflictKey(tx, key); er != nil {
			return er
		}
		conflict, er := hasConflict(tx, uuid.Nil, m.DayEnum(req.Day), req.StartTime, req.EndTime, req.Subject, batches, teachers)
		if er != nil {
			return er
		}
		if conflict {
			return fiber.NewError(fiber.StatusConflict,
				"Routine slot already exists for given time, batch, and teacher")
		}

		// 4) slot, creator dari identitas sesi
		slot := req.ToModel(createdBy)
		if er := tx.Create(&slot).Error; er != nil {
			log.Printf("[Routine.Create] DB.Create(slot) error: %v", er)
			return er
		}

		// 5) keanggotaan (set-union, idempotent)
		if er := s.insertMembers(tx, slot.RoutineSlotID, branches, batches, teachers); er != nil {
			return er
		}

		resp = d.FromModel(slot, branches, batches, teachers)
		return nil
	})
	return resp, err
}

func (s *RoutineService) insertMembers(tx *gorm.DB, routineID uuid.UUID, branches, batches, teachers []uuid.UUID) error {
	if len(branches) > 0 {
		rows := make([]m.RoutineSlotBranchModel, len(branches))
		for i, id := range branches {
			rows[i] = m.RoutineSlotBranchModel{RoutineSlotBranchRoutineID: routineID, RoutineSlotBranchBranchID: id}
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(batches) > 0 {
		rows := make([]m.RoutineSlotBatchModel, len(batches))
		for i, id := range batches {
			rows[i] = m.RoutineSlotBatchModel{RoutineSlotBatchRoutineID: routineID, RoutineSlotBatchBatchID: id}
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(teachers) > 0 {
		rows := make([]m.RoutineSlotTeacherModel, len(teachers))
		for i, id := range teachers {
			rows[i] = m.RoutineSlotTeacherModel{RoutineSlotTeacherRoutineID: routineID, RoutineSlotTeacherTeacherID: id}
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

/* =========================
   Assignments
   ========================= */

// AssignTeachers menambahkan teacher ke slot (set-union) dan mengembalikan
// jumlah yang benar-benar baru. Conflict check diulang terhadap set gabungan:
// assignment tidak boleh diam-diam melanggar invariant waktu pembuatan.
func (s *RoutineService) AssignTeachers(ctx context.Context, routineID uuid.UUID, teacherIDs []uuid.UUID) (int64, error) {
	teachers := Dedupe(teacherIDs)
	var added int64

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot m.RoutineSlotModel
		if er := tx.First(&slot, "routine_slot_id = ?", routineID).Error; er != nil {
			if er == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Routine not found")
			}
			return er
		}

		n, er := countAlive(tx, "teachers", "teacher_id", "teacher_deleted_at", teachers)
		if er != nil {
			return er
		}
		if n != int64(len(teachers)) {
			return fiber.NewError(fiber.StatusBadRequest, "One or more teacher IDs are invalid")
		}

		curBranches, curBatches, curTeachers, er := s.memberIDs(tx, slot.RoutineSlotID)
		_ = curBranches
		if er != nil {
			return er
		}

		key := ConflictKey(slot.RoutineSlotDay, slot.RoutineSlotStartTime, slot.RoutineSlotEndTime, slot.RoutineSlotSubjectID)
		if er := s.lockConflictKey(tx, key); er != nil {
			return er
		}
		conflict, er := hasConflict(tx, slot.RoutineSlotID,
			slot.RoutineSlotDay, slot.RoutineSlotStartTime, slot.RoutineSlotEndTime, slot.RoutineSlotSubjectID,
			curBatches, Union(curTeachers, teachers))
		if er != nil {
			return er
		}
		if conflict {
			return fiber.NewError(fiber.StatusConflict,
				"Teacher assignment collides with an existing routine slot")
		}

		rows := make([]m.RoutineSlotTeacherModel, len(teachers))
		for i, id := range teachers {
			rows[i] = m.RoutineSlotTeacherModel{RoutineSlotTeacherRoutineID: slot.RoutineSlotID, RoutineSlotTeacherTeacherID: id}
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected
		return nil
	})
	return added, err
}

// AssignBatches: simetris dengan AssignTeachers untuk batch.
func (s *RoutineService) AssignBatches(ctx context.Context, routineID uuid.UUID, batchIDs []uuid.UUID) (int64, error) {
	batches := Dedupe(batchIDs)
	var added int64

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot m.RoutineSlotModel
		if er := tx.First(&slot, "routine_slot_id = ?", routineID).Error; er != nil {
			if er == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Routine not found")
			}
			return er
		}

		n, er := countAlive(tx, "batches", "batch_id", "batch_deleted_at", batches)
		if er != nil {
			return er
		}
		if n != int64(len(batches)) {
			return fiber.NewError(fiber.StatusBadRequest, "One or more batch IDs are invalid")
		}

		_, curBatches, curTeachers, er := s.memberIDs(tx, slot.RoutineSlotID)
		if er != nil {
			return er
		}

		key := ConflictKey(slot.RoutineSlotDay, slot.RoutineSlotStartTime, slot.RoutineSlotEndTime, slot.RoutineSlotSubjectID)
		if er := s.lockConflictKey(tx, key); er != nil {
			return er
		}
		conflict, er := hasConflict(tx, slot.RoutineSlotID,
			slot.RoutineSlotDay, slot.RoutineSlotStartTime, slot.RoutineSlotEndTime, slot.RoutineSlotSubjectID,
			Union(curBatches, batches), curTeachers)
		if er != nil {
			return er
		}
		if conflict {
			return fiber.NewError(fiber.StatusConflict,
				"Batch assignment collides with an existing routine slot")
		}

		rows := make([]m.RoutineSlotBatchModel, len(batches))
		for i, id := range batches {
			rows[i] = m.RoutineSlotBatchModel{RoutineSlotBatchRoutineID: slot.RoutineSlotID, RoutineSlotBatchBatchID: id}
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected
		return nil
	})
	return added, err
}

/* =========================
   Queries
   ========================= */

// List slot hidup dengan filter opsional; pagination di controller.
func (s *RoutineService) List(ctx context.Context, q *d.ListRoutineQuery, offset, limit int) ([]m.RoutineSlotModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&m.RoutineSlotModel{})

	if q.Day != nil {
		db = db.Where("routine_slot_day = ?", *q.Day)
	}
	if q.SubjectID != nil {
		db = db.Where("routine_slot_subject_id = ?", *q.SubjectID)
	}
	if q.TeacherID != nil {
		db = db.Where(`routine_slot_id IN (
			SELECT routine_slot_teacher_routine_id FROM routine_slot_teachers
			WHERE routine_slot_teacher_teacher_id = ?)`, *q.TeacherID)
	}
	if q.BatchID != nil {
		db = db.Where(`routine_slot_id IN (
			SELECT routine_slot_batch_routine_id FROM routine_slot_batches
			WHERE routine_slot_batch_batch_id = ?)`, *q.BatchID)
	}
	if q.BranchID != nil {
		db = db.Where(`routine_slot_id IN (
			SELECT routine_slot_branch_routine_id FROM routine_slot_branches
			WHERE routine_slot_branch_branch_id = ?)`, *q.BranchID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slots []m.RoutineSlotModel
	err := db.
		Order("routine_slot_day, routine_slot_start_time").
		Offset(offset).Limit(limit).
		Find(&slots).Error
	return slots, total, err
}

// Get satu slot hidup.
func (s *RoutineService) Get(ctx context.Context, routineID uuid.UUID) (m.RoutineSlotModel, error) {
	var slot m.RoutineSlotModel
	err := s.DB.WithContext(ctx).First(&slot, "routine_slot_id = ?", routineID).Error
	if err == gorm.ErrRecordNotFound {
		return slot, fiber.NewError(fiber.StatusNotFound, "Routine not found")
	}
	return slot, err
}
