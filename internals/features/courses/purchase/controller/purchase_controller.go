package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "kursusku_backend/internals/features/courses/course/model"
	"kursusku_backend/internals/features/courses/purchase/model"
	helper "kursusku_backend/internals/helpers"
)

type PurchaseController struct {
	DB *gorm.DB
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

// =============================
// 🛒 Create Purchase
// Dua request balapan membuat purchase yang sama diselesaikan oleh unique
// constraint; yang kalah diperlakukan sebagai sukses-dengan-baris-yang-ada,
// tidak pernah jadi hard failure ke caller.
// =============================
func (ctrl *PurchaseController) CreatePurchase(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("course_id = ? AND course_is_published = TRUE AND course_deleted_at IS NULL", courseID).
		First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	purchase := model.PurchaseModel{
		PurchaseUserID:   userID,
		PurchaseCourseID: courseID,
		PurchasePrice:    course.CoursePrice,
	}

	// idempotent insert: butuh unique idx (user_id, course_id)
	res := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&purchase)
	if res.Error != nil && !isUniqueViolation(res.Error) {
		log.Printf("[Purchase.Create] error: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat purchase")
	}

	if res.Error != nil || res.RowsAffected == 0 {
		// kalah balapan / sudah pernah beli → baca baris pemenang
		var existing model.PurchaseModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("purchase_user_id = ? AND purchase_course_id = ?", userID, courseID).
			First(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca purchase")
		}
		return helper.JsonOK(c, "Course sudah dibeli", existing)
	}

	return helper.JsonCreated(c, "Purchase berhasil", purchase)
}

// =============================
// 📄 List purchase milik sendiri
// =============================
func (ctrl *PurchaseController) GetMyPurchases(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var purchases []model.PurchaseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("purchase_user_id = ?", userID).
		Order("purchase_created_at DESC").
		Find(&purchases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil purchase")
	}

	return helper.JsonOK(c, "ok", purchases)
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
