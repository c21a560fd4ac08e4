package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/chapter/dto"
	"kursusku_backend/internals/features/courses/chapter/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	examModel "kursusku_backend/internals/features/exams/exam/model"
	helper "kursusku_backend/internals/helpers"
)

var validateChapter = validator.New()

type ChapterController struct {
	DB *gorm.DB
}

func NewChapterController(db *gorm.DB) *ChapterController {
	return &ChapterController{DB: db}
}

// =============================
// ➕ Create Chapter (position = max+1 per course)
// =============================
func (ctrl *ChapterController) CreateChapter(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.CreateChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChapter.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var examID *uuid.UUID
	if body.ChapterExamID != nil {
		id, err := uuid.Parse(*body.ChapterExamID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
		}
		examID = &id
	}

	var chapter model.ChapterModel

	// TX: validasi course + hitung posisi + insert, satu unit
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&courseModel.CourseModel{}).
			Where("course_id = ? AND course_deleted_at IS NULL", courseID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}

		// posisi baru selalu setelah semua chapter yang ada
		var lastPos int
		if err := tx.Model(&model.ChapterModel{}).
			Where("chapter_course_id = ? AND chapter_deleted_at IS NULL", courseID).
			Select("COALESCE(MAX(chapter_position), 0)").
			Scan(&lastPos).Error; err != nil {
			return err
		}

		chapter = model.ChapterModel{
			ChapterCourseID: courseID,
			ChapterTitle:    body.ChapterTitle,
			ChapterPosition: lastPos + 1,
			ChapterIsFree:   body.ChapterIsFree,
			ChapterExamID:   examID,
			ChapterData:     body.ChapterData,
		}
		return tx.Create(&chapter).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[Chapter.Create] error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat chapter")
	}

	return helper.JsonCreated(c, "Chapter dibuat", dto.ToChapterDTO(chapter))
}

// =============================
// 📄 List Chapters sebuah course (urut posisi)
// =============================
func (ctrl *ChapterController) GetCourseChapters(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("chapter_course_id = ? AND chapter_deleted_at IS NULL", courseID)
	if !helper.IsTeacherOrAbove(c) {
		q = q.Where("chapter_is_published = TRUE")
	}

	var chapters []model.ChapterModel
	if err := q.Order("chapter_position ASC").Find(&chapters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil chapter")
	}

	items := make([]dto.ChapterDTO, 0, len(chapters))
	for _, m := range chapters {
		items = append(items, dto.ToChapterDTO(m))
	}
	return helper.JsonOK(c, "ok", items)
}

// =============================
// ✏️ Update Chapter (partial)
// =============================
func (ctrl *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(c.Params("chapterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var body dto.UpdateChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChapter.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.ChapterTitle != nil {
		updates["chapter_title"] = *body.ChapterTitle
	}
	if body.ChapterIsFree != nil {
		updates["chapter_is_free"] = *body.ChapterIsFree
	}
	if body.ChapterIsPublished != nil {
		updates["chapter_is_published"] = *body.ChapterIsPublished
	}
	if body.ChapterExamID != nil {
		id, err := uuid.Parse(*body.ChapterExamID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
		}
		updates["chapter_exam_id"] = id
	}
	if body.ChapterData != nil {
		updates["chapter_data"] = body.ChapterData
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ChapterModel{}).
		Where("chapter_id = ? AND chapter_deleted_at IS NULL", chapterID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update chapter")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("chapter_id = ?", chapterID).First(&chapter).Error; err != nil {
		return helper.JsonUpdated(c, "Chapter diupdate", fiber.Map{"updated": true})
	}
	return helper.JsonUpdated(c, "Chapter diupdate", dto.ToChapterDTO(chapter))
}

// =============================
// 🗑 Soft delete Chapter
// =============================
func (ctrl *ChapterController) DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(c.Params("chapterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ChapterModel{}).
		Where("chapter_id = ? AND chapter_deleted_at IS NULL", chapterID).
		Update("chapter_deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus chapter")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Chapter dihapus", fiber.Map{"chapter_id": chapterID})
}

// =============================
// 🔍 Exam sebuah chapter.
// FK ON DELETE SET NULL menjamin id tidak gantung; kalau link sudah hilang
// (exam dihapus), kembalikan hasil "reassign required" yang eksplisit, bukan null.
// =============================
func (ctrl *ChapterController) GetChapterExam(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(c.Params("chapterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("chapter_id = ? AND chapter_deleted_at IS NULL", chapterID).
		First(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
	}

	if chapter.ChapterExamID == nil {
		return helper.JsonOK(c, "Chapter tidak punya exam", fiber.Map{
			"has_exam": false,
		})
	}

	var exam examModel.ExamModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("exam_id = ? AND exam_deleted_at IS NULL", *chapter.ChapterExamID).
		First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// exam sudah dihapus (soft delete): link perlu dipasang ulang
			return helper.JsonOK(c, "Exam chapter sudah dihapus, perlu dipasang ulang", fiber.Map{
				"has_exam":          false,
				"reassign_required": true,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil exam")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"has_exam": true,
		"exam":     exam,
	})
}
