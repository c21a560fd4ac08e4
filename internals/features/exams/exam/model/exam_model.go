package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID          uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`
	ExamTitle       string    `gorm:"column:exam_title;type:varchar(255);not null" json:"exam_title"`
	ExamDescription *string   `gorm:"column:exam_description;type:text" json:"exam_description,omitempty"`

	// Durasi dalam menit. Sifatnya anjuran untuk klien, server tidak memutus attempt.
	ExamDurationMinutes *int `gorm:"column:exam_duration_minutes" json:"exam_duration_minutes,omitempty"`

	ExamIsPublished bool `gorm:"column:exam_is_published;default:false" json:"exam_is_published"`

	ExamCreatedBy *uuid.UUID `gorm:"column:exam_created_by;type:uuid" json:"exam_created_by,omitempty"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string {
	return "exams"
}
