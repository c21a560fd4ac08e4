package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accessService "kursusku_backend/internals/features/courses/access/service"
	"kursusku_backend/internals/features/courses/progress/service"
	helper "kursusku_backend/internals/helpers"
)

var validateProgress = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

type setProgressRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// =============================
// ✅ Set progress chapter (complete / un-complete)
// PUT /courses/:courseId/chapters/:chapterId/progress
// Hanya untuk chapter yang berhak dilihat si learner.
// =============================
func (ctrl *ProgressController) SetChapterProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}
	chapterID, err := uuid.Parse(c.Params("chapterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var body setProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgress.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// guard entitlement: progress hanya boleh di chapter yang viewable
	access, err := accessService.ResolveChapterAccess(
		ctrl.DB.WithContext(c.Context()),
		userID, helper.IsTeacherOrAbove(c),
		courseID, chapterID, false,
	)
	if err != nil {
		if errors.Is(err, accessService.ErrChapterNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa akses")
	}
	if !access.Viewable {
		return helper.JsonError(c, fiber.StatusForbidden, "Chapter terkunci")
	}

	progress, percent, err := service.SetChapterProgress(
		ctrl.DB.WithContext(c.Context()), userID, chapterID, body.IsCompleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
	}

	return helper.JsonUpdated(c, "Progress disimpan", fiber.Map{
		"progress":         progress,
		"course_progress":  percent,
		"course_completed": percent >= 100,
	})
}

// =============================
// 📊 Progress course milik sendiri
// GET /courses/:courseId/progress
// =============================
func (ctrl *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	percent, err := service.ComputeCourseProgress(ctrl.DB.WithContext(c.Context()), userID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progress")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"course_id":       courseID,
		"course_progress": percent,
	})
}
