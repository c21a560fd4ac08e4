package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/access/service"
	helper "kursusku_backend/internals/helpers"
)

type AccessController struct {
	DB *gorm.DB
}

func NewAccessController(db *gorm.DB) *AccessController {
	return &AccessController{DB: db}
}

// =============================
// 🔍 Cek akses chapter
// GET /courses/:courseId/chapters/:chapterId/access?preview=true
// Hasil negatif = konten terkunci (200), bukan error.
// =============================
func (ctrl *AccessController) CheckChapterAccess(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}
	chapterID, err := uuid.Parse(c.Params("chapterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	isPreview := c.QueryBool("preview", false)

	// anonim diizinkan (uuid.Nil); untuk preview identitas memang tidak dicek
	userID := uuid.Nil
	if v, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			userID = id
		}
	}

	result, err := service.ResolveChapterAccess(
		ctrl.DB.WithContext(c.Context()),
		userID,
		helper.IsTeacherOrAbove(c),
		courseID, chapterID,
		isPreview,
	)
	if err != nil {
		if errors.Is(err, service.ErrChapterNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa akses")
	}

	return helper.JsonOK(c, "ok", result)
}
