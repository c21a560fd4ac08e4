package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/certificates/user_certificate/model"
)

var (
	ErrUserNotFound   = errors.New("user tidak ditemukan")
	ErrCourseNotFound = errors.New("course tidak ditemukan")
)

// BuildCertificateCode menyusun kode sertifikat: CERT-<course8>-<user8>-<unixnano36>.
// Segmen course & user deterministik, segmen waktu menjaga keunikan global.
func BuildCertificateCode(courseID, userID uuid.UUID, issuedAt time.Time) string {
	courseSeg := strings.ReplaceAll(courseID.String(), "-", "")[:8]
	userSeg := strings.ReplaceAll(userID.String(), "-", "")[:8]
	timeSeg := strings.ToUpper(fmt.Sprintf("%x", issuedAt.UnixNano()))
	return fmt.Sprintf("CERT-%s-%s-%s", strings.ToUpper(courseSeg), strings.ToUpper(userSeg), timeSeg)
}

// IssueCertificate menerbitkan sertifikat untuk (user, course). Idempoten:
// kalau sudah ada, kembalikan yang lama. Konflik unique saat balapan
// diserap dengan membaca ulang baris pemenang.
func IssueCertificate(db *gorm.DB, userID, courseID uuid.UUID) (*model.UserCertificateModel, error) {
	// Sudah pernah terbit? Langsung pakai yang ada.
	var existing model.UserCertificateModel
	err := db.Where("user_cert_user_id = ? AND user_cert_course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Validasi kedua sisi masih ada
	var count int64
	if err := db.Table("users").Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}
	if err := db.Table("courses").
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCourseNotFound
	}

	now := time.Now()
	cert := model.UserCertificateModel{
		UserCertUserID:   userID,
		UserCertCourseID: courseID,
		UserCertCode:     BuildCertificateCode(courseID, userID, now),
		UserCertIssuedAt: now,
	}

	if err := db.Create(&cert).Error; err != nil {
		if isUniqueViolation(err) {
			// Balapan: request lain sudah menerbitkan duluan, ambil baris pemenang
			var winner model.UserCertificateModel
			if err2 := db.Where("user_cert_user_id = ? AND user_cert_course_id = ?", userID, courseID).
				First(&winner).Error; err2 == nil {
				return &winner, nil
			}
			return nil, err
		}
		return nil, err
	}

	log.Printf("[CertificateService.IssueCertificate] sertifikat %s terbit untuk user %s", cert.UserCertCode, userID)
	return &cert, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
