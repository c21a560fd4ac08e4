package controller

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kursusku_backend/internals/features/courses/purchase/model"
)

func openPurchaseDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka test db: %v", err)
	}
	for _, ddl := range []string{
		`CREATE TABLE courses (
			course_id TEXT PRIMARY KEY,
			course_title TEXT,
			course_slug TEXT,
			course_description TEXT,
			course_price NUMERIC,
			course_is_published NUMERIC DEFAULT 0,
			course_created_by TEXT,
			course_created_at DATETIME,
			course_updated_at DATETIME,
			course_deleted_at DATETIME
		)`,
		`CREATE TABLE purchases (
			purchase_id TEXT,
			purchase_user_id TEXT NOT NULL,
			purchase_course_id TEXT NOT NULL,
			purchase_price NUMERIC,
			purchase_created_at DATETIME,
			UNIQUE (purchase_user_id, purchase_course_id)
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}

func newPurchaseApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := NewPurchaseController(db)
	app.Post("/api/u/courses/:courseId/purchase", ctrl.CreatePurchase)
	return app
}

// Membeli course yang sama dua kali tidak boleh gagal dan tidak boleh
// menggandakan baris: request kedua diserap sebagai sukses-dengan-baris-lama.
func TestCreatePurchaseTwiceIsAbsorbedAsSuccess(t *testing.T) {
	db := openPurchaseDB(t)
	userID, courseID := uuid.New(), uuid.New()
	if err := db.Exec(
		`INSERT INTO courses (course_id, course_title, course_slug, course_is_published, course_created_by)
		 VALUES (?, 'Belajar Go', 'belajar-go', 1, ?)`,
		courseID.String(), uuid.New().String(),
	).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	app := newPurchaseApp(db, userID)
	path := "/api/u/courses/" + courseID.String() + "/purchase"

	resp, err := app.Test(httptest.NewRequest("POST", path, nil))
	if err != nil {
		t.Fatalf("pembelian pertama: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("pembelian pertama harus 201, dapat %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("POST", path, nil))
	if err != nil {
		t.Fatalf("pembelian kedua: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("pembelian kedua harus 200 (sudah dibeli), dapat %d", resp.StatusCode)
	}

	var count int64
	if err := db.Model(&model.PurchaseModel{}).
		Where("purchase_user_id = ? AND purchase_course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		t.Fatalf("hitung baris: %v", err)
	}
	if count != 1 {
		t.Fatalf("harus tepat satu purchase per pasangan, dapat %d", count)
	}
}

func TestCreatePurchaseUnpublishedCourseRejected(t *testing.T) {
	db := openPurchaseDB(t)
	userID, courseID := uuid.New(), uuid.New()
	if err := db.Exec(
		`INSERT INTO courses (course_id, course_title, course_slug, course_is_published, course_created_by)
		 VALUES (?, 'Draft', 'draft', 0, ?)`,
		courseID.String(), uuid.New().String(),
	).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	app := newPurchaseApp(db, userID)
	resp, err := app.Test(httptest.NewRequest("POST", "/api/u/courses/"+courseID.String()+"/purchase", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("course belum publish harus 404, dapat %d", resp.StatusCode)
	}
}
