package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/course/dto"
	"kursusku_backend/internals/features/courses/course/model"
	examModel "kursusku_backend/internals/features/exams/exam/model"
	helper "kursusku_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// ➕ Create Course
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:            "courses",
		SlugColumn:       "course_slug",
		SoftDeleteColumn: "course_deleted_at",
		DefaultBase:      "course",
	}, body.CourseTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	course := model.CourseModel{
		CourseTitle:       body.CourseTitle,
		CourseSlug:        slug,
		CourseDescription: body.CourseDescription,
		CoursePrice:       body.CoursePrice,
		CourseCreatedBy:   userID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&course).Error; err != nil {
		log.Printf("[Course.Create] error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course dibuat", dto.ToCourseDTO(course))
}

// =============================
// 📄 List Courses (published, untuk katalog)
// =============================
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_deleted_at IS NULL")

	// non-staff hanya melihat yang published
	if !helper.IsTeacherOrAbove(c) {
		q = q.Where("course_is_published = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	items := make([]dto.CourseDTO, 0, len(courses))
	for _, m := range courses {
		items = append(items, dto.ToCourseDTO(m))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =============================
// 🔍 Get Course by slug/id
// =============================
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("id"))

	q := ctrl.DB.WithContext(c.Context()).Where("course_deleted_at IS NULL")
	if id, err := uuid.Parse(key); err == nil {
		q = q.Where("course_id = ?", id)
	} else {
		q = q.Where("course_slug = ?", key)
	}

	var course model.CourseModel
	if err := q.First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	if !course.CourseIsPublished && !helper.IsTeacherOrAbove(c) {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", dto.ToCourseDTO(course))
}

// =============================
// ✏️ Update Course (partial)
// =============================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.CourseTitle != nil {
		updates["course_title"] = *body.CourseTitle
	}
	if body.CourseDescription != nil {
		updates["course_description"] = *body.CourseDescription
	}
	if body.CoursePrice != nil {
		updates["course_price"] = *body.CoursePrice
	}
	if body.CourseIsPublished != nil {
		updates["course_is_published"] = *body.CourseIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("course_id = ?", id).First(&course).Error; err != nil {
		return helper.JsonUpdated(c, "Course diupdate", fiber.Map{"updated": true})
	}
	return helper.JsonUpdated(c, "Course diupdate", dto.ToCourseDTO(course))
}

// =============================
// 🗑 Soft delete Course
// =============================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", id).
		Update("course_deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{"course_id": id})
}

// =============================
// 🔗 Attach Exam ke Course (join entity bertipe)
// =============================
func (ctrl *CourseController) AttachExam(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.AttachExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	examID, _ := uuid.Parse(body.ExamID)

	// pastikan kedua sisi ada
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Count(&count).Error; err != nil || count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&examModel.ExamModel{}).
		Where("exam_id = ? AND exam_deleted_at IS NULL", examID).
		Count(&count).Error; err != nil || count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam tidak ditemukan")
	}

	link := model.CourseExamModel{
		CourseExamCourseID: courseID,
		CourseExamExamID:   examID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			// sudah terpasang → idempotent, kembalikan yang ada
			var existing model.CourseExamModel
			if e2 := ctrl.DB.WithContext(c.Context()).
				Where("course_exam_course_id = ? AND course_exam_exam_id = ?", courseID, examID).
				First(&existing).Error; e2 == nil {
				return helper.JsonOK(c, "Exam sudah terpasang", existing)
			}
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memasang exam")
	}
	return helper.JsonCreated(c, "Exam dipasang ke course", link)
}

// =============================
// ✂️ Detach Exam dari Course
// =============================
func (ctrl *CourseController) DetachExam(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("course_exam_course_id = ? AND course_exam_exam_id = ?", courseID, examID).
		Delete(&model.CourseExamModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas exam")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Relasi course-exam tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Exam dilepas dari course", fiber.Map{
		"course_id": courseID,
		"exam_id":   examID,
	})
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
