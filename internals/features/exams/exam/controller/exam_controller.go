package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/exam/dto"
	"kursusku_backend/internals/features/exams/exam/model"
	"kursusku_backend/internals/features/exams/exam/service"
	helper "kursusku_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

var validate = validator.New()

// ➕ POST /api/a/exams
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	exam := model.ExamModel{
		ExamTitle:           req.ExamTitle,
		ExamDescription:     req.ExamDescription,
		ExamDurationMinutes: req.ExamDurationMinutes,
	}
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		exam.ExamCreatedBy = &userID
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&exam).Error; err != nil {
		log.Printf("[ExamController.CreateExam] gagal create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat exam")
	}

	return helper.JsonCreated(c, "Exam berhasil dibuat", dto.ToExamResponse(exam))
}

// 📄 GET /api/a/exams/:id
func (ctrl *ExamController) GetExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	var exam model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil exam")
	}

	return helper.JsonOK(c, "ok", dto.ToExamResponse(exam))
}

// ✏️ PUT /api/a/exams/:id
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exam model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil exam")
	}

	updates := map[string]interface{}{}
	if req.ExamTitle != nil {
		updates["exam_title"] = *req.ExamTitle
	}
	if req.ExamDescription != nil {
		updates["exam_description"] = *req.ExamDescription
	}
	if req.ExamDurationMinutes != nil {
		updates["exam_duration_minutes"] = *req.ExamDurationMinutes
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToExamResponse(exam))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&exam).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah exam")
	}

	return helper.JsonUpdated(c, "Exam berhasil diubah", dto.ToExamResponse(exam))
}

// ✅ POST /api/a/exams/:id/publish
func (ctrl *ExamController) PublishExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	exam, err := service.PublishExam(ctrl.DB.WithContext(c.Context()), examID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExamNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		case errors.Is(err, service.ErrNoQuestions):
			return helper.JsonError(c, fiber.StatusConflict, "Exam belum punya soal, tambahkan soal dulu")
		default:
			log.Printf("[ExamController.PublishExam] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal publish exam")
		}
	}

	return helper.JsonOK(c, "Exam berhasil dipublish", dto.ToExamResponse(*exam))
}

// ❌ POST /api/a/exams/:id/unpublish
func (ctrl *ExamController) UnpublishExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	exam, err := service.UnpublishExam(ctrl.DB.WithContext(c.Context()), examID)
	if err != nil {
		if errors.Is(err, service.ErrExamNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal unpublish exam")
	}

	return helper.JsonOK(c, "Exam berhasil ditarik", dto.ToExamResponse(*exam))
}

// 🗑 DELETE /api/a/exams/:id — soft delete; chapter yang masih menunjuk
// ke sini akan dilaporkan reassign_required saat dibaca
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ?", examID).Delete(&model.ExamModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus exam")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Exam berhasil dihapus", fiber.Map{"exam_id": examID})
}
