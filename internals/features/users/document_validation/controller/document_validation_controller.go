package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/document_validation/dto"
	"kursusku_backend/internals/features/users/document_validation/model"
	"kursusku_backend/internals/features/users/document_validation/service"
	helper "kursusku_backend/internals/helpers"
)

var validateDocValidation = validator.New()

type DocumentValidationController struct {
	DB *gorm.DB
}

func NewDocumentValidationController(db *gorm.DB) *DocumentValidationController {
	return &DocumentValidationController{DB: db}
}

// =============================
// 🔍 Status milik sendiri (auto-create NO_SUBMITTED saat pertama kali)
// =============================
func (ctrl *DocumentValidationController) GetMyValidation(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rec, err := service.GetOrInit(ctrl.DB.WithContext(c.Context()), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil status validasi")
	}
	return helper.JsonOK(c, "ok", dto.ToDocumentValidationDTO(*rec))
}

// =============================
// 📤 Submit dokumen (→ PENDING)
// =============================
func (ctrl *DocumentValidationController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitValidationRequest
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDocValidation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := service.Submit(ctrl.DB.WithContext(c.Context()), userID, body.Note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal submit dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen diajukan", dto.ToDocumentValidationDTO(*rec))
}

// =============================
// ✅ Approve (reviewer teacher/admin; PENDING saja)
// =============================
func (ctrl *DocumentValidationController) Approve(c *fiber.Ctx) error {
	return ctrl.review(c, true)
}

// =============================
// ❌ Reject (reviewer teacher/admin; PENDING saja)
// =============================
func (ctrl *DocumentValidationController) Reject(c *fiber.Ctx) error {
	return ctrl.review(c, false)
}

func (ctrl *DocumentValidationController) review(c *fiber.Ctx, approve bool) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// reviewer wajib punya kapabilitas teacher/admin
	if !helper.IsTeacherOrAbove(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya teacher atau admin yang boleh mereview dokumen")
	}

	var body dto.ReviewValidationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDocValidation.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	targetID, err := uuid.Parse(body.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	msg := "Dokumen disetujui"
	var rec *model.DocumentValidationModel
	if approve {
		rec, err = service.Approve(ctrl.DB.WithContext(c.Context()), targetID, reviewerID, body.Note)
	} else {
		msg = "Dokumen ditolak"
		rec, err = service.Reject(ctrl.DB.WithContext(c.Context()), targetID, reviewerID, body.Note)
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return helper.JsonError(c, fiber.StatusConflict, "Dokumen tidak dalam status PENDING")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereview dokumen")
	}
	return helper.JsonUpdated(c, msg, dto.ToDocumentValidationDTO(*rec))
}
