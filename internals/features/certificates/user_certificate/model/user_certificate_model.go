package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCertificateModel: maksimal satu sertifikat per (user, course), selamanya.
// Unique constraint pasangan inilah otoritas anti-duplikat, bukan check-then-create.
type UserCertificateModel struct {
	UserCertID       uuid.UUID `gorm:"column:user_cert_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_cert_id"`
	UserCertUserID   uuid.UUID `gorm:"column:user_cert_user_id;type:uuid;not null;uniqueIndex:uq_user_cert_pair" json:"user_cert_user_id"`
	UserCertCourseID uuid.UUID `gorm:"column:user_cert_course_id;type:uuid;not null;uniqueIndex:uq_user_cert_pair" json:"user_cert_course_id"`

	// Kode unik global; cukup unique-in-practice, tidak perlu unguessable
	UserCertCode string `gorm:"column:user_cert_code;type:varchar(64);unique;not null" json:"user_cert_code"`

	UserCertIssuedAt  time.Time `gorm:"column:user_cert_issued_at;not null" json:"user_cert_issued_at"`
	UserCertCreatedAt time.Time `gorm:"column:user_cert_created_at;autoCreateTime" json:"user_cert_created_at"`
}

func (UserCertificateModel) TableName() string {
	return "user_certificates"
}
