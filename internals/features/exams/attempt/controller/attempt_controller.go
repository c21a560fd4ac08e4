package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/attempt/dto"
	"kursusku_backend/internals/features/exams/attempt/model"
	"kursusku_backend/internals/features/exams/attempt/service"
	helper "kursusku_backend/internals/helpers"
)

type AttemptController struct {
	DB *gorm.DB
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db}
}

var validate = validator.New()

// ➕ POST /api/u/exams/:examId/attempts — mulai (atau lanjutkan) attempt
func (ctrl *AttemptController) StartAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	attempt, err := service.StartAttempt(ctrl.DB.WithContext(c.Context()), userID, examID)
	if err != nil {
		if errors.Is(err, service.ErrExamNotAvailable) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak tersedia")
		}
		log.Printf("[AttemptController.StartAttempt] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai attempt")
	}

	return helper.JsonCreated(c, "Attempt siap dikerjakan", dto.ToAttemptResponse(*attempt))
}

// ✅ POST /api/u/attempts/:attemptId/submit — kumpulkan jawaban, tutup attempt
func (ctrl *AttemptController) SubmitAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Attempt ID tidak valid")
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	answers := make([]service.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		questionID, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
		}
		selected := make([]uuid.UUID, 0, len(a.SelectedOptions))
		for _, raw := range a.SelectedOptions {
			optID, err := uuid.Parse(raw)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Option ID tidak valid")
			}
			selected = append(selected, optID)
		}
		answers = append(answers, service.AnswerInput{
			QuestionID:      questionID,
			SelectedOptions: selected,
			Text:            a.Text,
		})
	}

	attempt, err := service.SubmitAttempt(ctrl.DB.WithContext(c.Context()), userID, attemptID, answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
		case errors.Is(err, service.ErrAlreadySubmitted):
			return helper.JsonError(c, fiber.StatusConflict, "Attempt sudah disubmit")
		case errors.Is(err, service.ErrForeignQuestion), errors.Is(err, service.ErrDuplicateAnswer):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[AttemptController.SubmitAttempt] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal submit attempt")
		}
	}

	return helper.JsonOK(c, "Attempt berhasil disubmit", dto.ToAttemptResponse(*attempt))
}

// ✏️ PATCH /api/a/attempts/:attemptId/score — pengajar menilai; boleh menimpa nilai lama
func (ctrl *AttemptController) ScoreAttempt(c *fiber.Ctx) error {
	if !helper.IsTeacherOrAbove(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pengajar yang boleh menilai")
	}

	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Attempt ID tidak valid")
	}

	var req dto.ScoreAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	attempt, err := service.ScoreAttempt(ctrl.DB.WithContext(c.Context()), attemptID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreOutOfRange):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Skor harus di rentang 0 sampai 100")
		case errors.Is(err, service.ErrAttemptNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
		case errors.Is(err, service.ErrNotSubmitted):
			return helper.JsonError(c, fiber.StatusConflict, "Attempt belum disubmit, belum bisa dinilai")
		default:
			log.Printf("[AttemptController.ScoreAttempt] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menilai attempt")
		}
	}

	return helper.JsonUpdated(c, "Attempt berhasil dinilai", dto.ToAttemptResponse(*attempt))
}

// 📄 GET /api/u/attempts — riwayat attempt milik user login
func (ctrl *AttemptController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempts []model.ExamAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attempt_user_id = ?", userID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat attempt")
	}

	out := make([]dto.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		out = append(out, dto.ToAttemptResponse(attempt))
	}
	return helper.JsonOK(c, "Riwayat attempt berhasil diambil", out)
}

// 📄 GET /api/a/exams/:examId/attempts — semua attempt exam (tampilan pengajar)
func (ctrl *AttemptController) GetExamAttempts(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	var attempts []model.ExamAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attempt_exam_id = ?", examID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil attempt")
	}

	out := make([]dto.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		out = append(out, dto.ToAttemptResponse(attempt))
	}
	return helper.JsonOK(c, "Daftar attempt berhasil diambil", out)
}
