package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "kursusku_backend/internals/features/exams/exam/model"
	"kursusku_backend/internals/features/exams/question/dto"
	"kursusku_backend/internals/features/exams/question/model"
	"kursusku_backend/internals/features/exams/question/service"
	helper "kursusku_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

var validate = validator.New()

func (ctrl *QuestionController) examExists(c *fiber.Ctx, examID uuid.UUID) (bool, error) {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&examModel.ExamModel{}).
		Where("exam_id = ?", examID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ➕ POST /api/a/exams/:examId/questions — soal baru selalu masuk di urutan paling akhir
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	ok, err := ctrl.examExists(c, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa exam")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
	}

	var question model.QuestionModel
	var options []model.QuestionOptionModel

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		questions, err := loadQuestions(tx, examID)
		if err != nil {
			return err
		}
		lastOrder := 0
		if len(questions) > 0 {
			lastOrder = service.EffectiveOrder(questions[len(questions)-1])
		}

		question = buildQuestion(examID, req, service.NextOrders(lastOrder, 1)[0])
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		options, err = createOptions(tx, question.QuestionID, req.Options)
		return err
	})
	if err != nil {
		log.Printf("[QuestionController.CreateQuestion] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}

	return helper.JsonCreated(c, "Soal berhasil dibuat", dto.ToQuestionResponse(question, options, true))
}

// ➕ POST /api/a/exams/:examId/questions/bulk — impor banyak soal sekaligus,
// urutan mengikuti urutan payload, disambung setelah soal terakhir
func (ctrl *QuestionController) BulkCreateQuestions(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	var req dto.BulkCreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	ok, err := ctrl.examExists(c, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa exam")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
	}

	var out []dto.QuestionResponse

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		questions, err := loadQuestions(tx, examID)
		if err != nil {
			return err
		}
		lastOrder := 0
		if len(questions) > 0 {
			lastOrder = service.EffectiveOrder(questions[len(questions)-1])
		}

		orders := service.NextOrders(lastOrder, len(req.Questions))
		for i, item := range req.Questions {
			question := buildQuestion(examID, item, orders[i])
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			options, err := createOptions(tx, question.QuestionID, item.Options)
			if err != nil {
				return err
			}
			out = append(out, dto.ToQuestionResponse(question, options, true))
		}
		return nil
	})
	if err != nil {
		log.Printf("[QuestionController.BulkCreateQuestions] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal impor soal")
	}

	return helper.JsonCreated(c, "Soal berhasil diimpor", out)
}

// 📄 GET /api/a/exams/:examId/questions — tampilan pengajar, kunci jawaban terlihat
func (ctrl *QuestionController) GetExamQuestions(c *fiber.Ctx) error {
	return ctrl.listQuestions(c, true)
}

// 📄 GET /api/u/exams/:examId/questions — tampilan peserta: hanya soal
// visible, kunci jawaban disembunyikan
func (ctrl *QuestionController) GetExamQuestionsForParticipant(c *fiber.Ctx) error {
	return ctrl.listQuestions(c, false)
}

func (ctrl *QuestionController) listQuestions(c *fiber.Ctx, staffView bool) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	examQuery := ctrl.DB.WithContext(c.Context()).
		Model(&examModel.ExamModel{}).
		Where("exam_id = ?", examID)
	if !staffView {
		examQuery = examQuery.Where("exam_is_published = ?", true)
	}
	var count int64
	if err := examQuery.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa exam")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
	}

	questions, err := loadQuestions(ctrl.DB.WithContext(c.Context()), examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		if !staffView && !question.QuestionIsVisible {
			continue
		}
		options, err := loadOptions(ctrl.DB.WithContext(c.Context()), question.QuestionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pilihan jawaban")
		}
		out = append(out, dto.ToQuestionResponse(question, options, staffView))
	}

	return helper.JsonOK(c, "Daftar soal berhasil diambil", out)
}

// ✏️ PATCH /api/a/exams/:examId/questions/:questionId/reorder
func (ctrl *QuestionController) ReorderQuestion(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	var req dto.ReorderQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	questions, err := service.Reorder(ctrl.DB.WithContext(c.Context()), examID, questionID, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan di exam ini")
		case errors.Is(err, service.ErrAtBoundary):
			return helper.JsonError(c, fiber.StatusConflict, "Soal sudah di ujung, tidak bisa digeser lagi")
		case errors.Is(err, service.ErrBadDirection):
			return helper.JsonError(c, fiber.StatusBadRequest, "Arah geser harus 'up' atau 'down'")
		default:
			log.Printf("[QuestionController.ReorderQuestion] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menggeser soal")
		}
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		out = append(out, dto.ToQuestionResponse(question, nil, true))
	}
	return helper.JsonUpdated(c, "Urutan soal berhasil diubah", out)
}

// 🗑 DELETE /api/a/exams/:examId/questions/:questionId — soft delete
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("question_id = ? AND question_exam_id = ?", questionID, examID).
		Delete(&model.QuestionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"question_id": questionID})
}

func loadQuestions(db *gorm.DB, examID uuid.UUID) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	if err := db.Where("question_exam_id = ?", examID).Find(&questions).Error; err != nil {
		return nil, err
	}
	service.SortByEffectiveOrder(questions)
	return questions, nil
}

func loadOptions(db *gorm.DB, questionID uuid.UUID) ([]model.QuestionOptionModel, error) {
	var options []model.QuestionOptionModel
	if err := db.Where("option_question_id = ?", questionID).
		Order("option_order ASC, option_created_at ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func buildQuestion(examID uuid.UUID, req dto.CreateQuestionRequest, order int) model.QuestionModel {
	qType := req.QuestionType
	if qType == "" {
		qType = model.QuestionTypeSingleChoice
	}
	points := req.QuestionPoints
	if points == 0 {
		points = 1
	}
	return model.QuestionModel{
		QuestionExamID: examID,
		QuestionText:   req.QuestionText,
		QuestionType:   qType,
		QuestionPoints: points,
		QuestionOrder:  order,
	}
}

func createOptions(tx *gorm.DB, questionID uuid.UUID, reqs []dto.CreateOptionRequest) ([]model.QuestionOptionModel, error) {
	options := make([]model.QuestionOptionModel, 0, len(reqs))
	for i, opt := range reqs {
		option := model.QuestionOptionModel{
			OptionQuestionID: questionID,
			OptionText:       opt.OptionText,
			OptionIsCorrect:  opt.OptionIsCorrect,
			OptionOrder:      i + 1,
		}
		if err := tx.Create(&option).Error; err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}
