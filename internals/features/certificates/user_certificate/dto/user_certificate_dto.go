package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/certificates/user_certificate/model"
)

type UserCertificateDTO struct {
	UserCertID       uuid.UUID `json:"user_cert_id"`
	UserCertUserID   uuid.UUID `json:"user_cert_user_id"`
	UserCertCourseID uuid.UUID `json:"user_cert_course_id"`
	UserCertCode     string    `json:"user_cert_code"`
	UserCertIssuedAt time.Time `json:"user_cert_issued_at"`
}

func ToUserCertificateDTO(m model.UserCertificateModel) UserCertificateDTO {
	return UserCertificateDTO{
		UserCertID:       m.UserCertID,
		UserCertUserID:   m.UserCertUserID,
		UserCertCourseID: m.UserCertCourseID,
		UserCertCode:     m.UserCertCode,
		UserCertIssuedAt: m.UserCertIssuedAt,
	}
}
