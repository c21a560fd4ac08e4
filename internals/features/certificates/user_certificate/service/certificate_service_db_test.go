package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kursusku_backend/internals/features/certificates/user_certificate/model"
)

func openCertDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka test db: %v", err)
	}
	for _, ddl := range []string{
		`CREATE TABLE users (id TEXT PRIMARY KEY)`,
		`CREATE TABLE courses (course_id TEXT PRIMARY KEY, course_deleted_at DATETIME)`,
		`CREATE TABLE user_certificates (
			user_cert_id TEXT,
			user_cert_user_id TEXT NOT NULL,
			user_cert_course_id TEXT NOT NULL,
			user_cert_code TEXT NOT NULL UNIQUE,
			user_cert_issued_at DATETIME NOT NULL,
			user_cert_created_at DATETIME,
			UNIQUE (user_cert_user_id, user_cert_course_id)
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}

func seedUserAndCourse(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()
	userID, courseID := uuid.New(), uuid.New()
	if err := db.Exec(`INSERT INTO users (id) VALUES (?)`, userID.String()).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Exec(`INSERT INTO courses (course_id) VALUES (?)`, courseID.String()).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return userID, courseID
}

// Satu pasangan (user, course) hanya boleh punya satu sertifikat: penerbitan
// kedua mengembalikan baris lama, bukan membuat baris baru.
func TestIssueCertificateIdempotentPerPair(t *testing.T) {
	db := openCertDB(t)
	userID, courseID := seedUserAndCourse(t, db)

	first, err := IssueCertificate(db, userID, courseID)
	if err != nil {
		t.Fatalf("penerbitan pertama: %v", err)
	}
	if first.UserCertCode == "" {
		t.Fatalf("kode sertifikat kosong")
	}

	second, err := IssueCertificate(db, userID, courseID)
	if err != nil {
		t.Fatalf("penerbitan kedua: %v", err)
	}
	if second.UserCertCode != first.UserCertCode {
		t.Fatalf("penerbitan kedua harus mengembalikan sertifikat lama: %q vs %q",
			second.UserCertCode, first.UserCertCode)
	}

	var count int64
	if err := db.Model(&model.UserCertificateModel{}).
		Where("user_cert_user_id = ? AND user_cert_course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		t.Fatalf("hitung baris: %v", err)
	}
	if count != 1 {
		t.Fatalf("harus tepat satu sertifikat per pasangan, dapat %d", count)
	}
}

func TestIssueCertificateDistinctCoursesGetDistinctRows(t *testing.T) {
	db := openCertDB(t)
	userID, courseA := seedUserAndCourse(t, db)
	courseB := uuid.New()
	if err := db.Exec(`INSERT INTO courses (course_id) VALUES (?)`, courseB.String()).Error; err != nil {
		t.Fatalf("seed course kedua: %v", err)
	}

	a, err := IssueCertificate(db, userID, courseA)
	if err != nil {
		t.Fatalf("course A: %v", err)
	}
	b, err := IssueCertificate(db, userID, courseB)
	if err != nil {
		t.Fatalf("course B: %v", err)
	}
	if a.UserCertCode == b.UserCertCode {
		t.Fatalf("course berbeda tidak boleh berbagi kode")
	}
}

func TestIssueCertificateRejectsUnknownUser(t *testing.T) {
	db := openCertDB(t)
	_, courseID := seedUserAndCourse(t, db)

	if _, err := IssueCertificate(db, uuid.New(), courseID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user asing harus ErrUserNotFound, dapat %v", err)
	}
}

func TestIssueCertificateRejectsDeletedCourse(t *testing.T) {
	db := openCertDB(t)
	userID, courseID := seedUserAndCourse(t, db)
	if err := db.Exec(`UPDATE courses SET course_deleted_at = CURRENT_TIMESTAMP WHERE course_id = ?`,
		courseID.String()).Error; err != nil {
		t.Fatalf("soft delete course: %v", err)
	}

	if _, err := IssueCertificate(db, userID, courseID); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("course terhapus harus ErrCourseNotFound, dapat %v", err)
	}
}
