// file: internals/features/routines/controller/routine_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "institutku_backend/internals/features/routines/dto"
	"institutku_backend/internals/features/routines/service"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type RoutineController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.RoutineService
}

func NewRoutineController(db *gorm.DB) *RoutineController {
	return &RoutineController{
		DB:       db,
		Validate: helper.Validator(),
		Service:  service.New(db),
	}
}

// POST /api/v1/routines
func (ctl *RoutineController) CreateRoutine(c *fiber.Ctx) error {
	var req d.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckTimeRange(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	adminID, err := helperAuth.GetAdminID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	resp, err := ctl.Service.CreateRoutine(c.Context(), &req, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Routine created successfully", resp)
}

// POST /api/v1/routines/:routineId/teachers
func (ctl *RoutineController) AssignTeachers(c *fiber.Ctx) error {
	routineID, err := uuid.Parse(c.Params("routineId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid routine ID format")
	}

	var req d.AssignTeachersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	added, err := ctl.Service.AssignTeachers(c.Context(), routineID, req.Teachers)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teachers assigned successfully", fiber.Map{
		"routine_id":     routineID,
		"added_teachers": added,
	})
}

// POST /api/v1/routines/:routineId/batches
func (ctl *RoutineController) AssignBatches(c *fiber.Ctx) error {
	routineID, err := uuid.Parse(c.Params("routineId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid routine ID format")
	}

	var req d.AssignBatchesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	added, err := ctl.Service.AssignBatches(c.Context(), routineID, req.Batches)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Batches assigned successfully", fiber.Map{
		"routine_id":    routineID,
		"added_batches": added,
	})
}

// GET /api/v1/routines
func (ctl *RoutineController) ListRoutines(c *fiber.Ctx) error {
	var q d.ListRoutineQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := ctl.Validate.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}

	// tanpa filter eksplisit, scope ke cabang konteks (X-Branch-Id)
	if q.BranchID == nil && q.BatchID == nil {
		if branchID, ok := helperAuth.GetBranchID(c); ok {
			q.BranchID = &branchID
		}
	}

	p := helper.ResolvePaging(c, 20, 100)
	slots, total, err := ctl.Service.List(c.Context(), &q, p.Offset, p.Limit)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.RoutineSlotResponse, 0, len(slots))
	for _, slot := range slots {
		branches, batches, teachers, er := ctl.Service.MemberIDs(c.Context(), slot.RoutineSlotID)
		if er != nil {
			return helper.WritePGError(c, er)
		}
		items = append(items, d.FromModel(slot, branches, batches, teachers))
	}

	return helper.JsonList(c, "Routines fetched successfully", items,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/routines/:routineId
func (ctl *RoutineController) GetRoutine(c *fiber.Ctx) error {
	routineID, err := uuid.Parse(c.Params("routineId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid routine ID format")
	}

	slot, err := ctl.Service.Get(c.Context(), routineID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	branches, batches, teachers, err := ctl.Service.MemberIDs(c.Context(), slot.RoutineSlotID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Routine fetched successfully", d.FromModel(slot, branches, batches, teachers))
}

// DELETE /api/v1/routines/:routineId (soft delete)
func (ctl *RoutineController) DeleteRoutine(c *fiber.Ctx) error {
	routineID, err := uuid.Parse(c.Params("routineId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid routine ID format")
	}

	slot, err := ctl.Service.Get(c.Context(), routineID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&slot).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Routine deleted successfully", fiber.Map{"routine_id": routineID})
}
