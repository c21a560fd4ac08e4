package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
)

type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionExamID uuid.UUID `gorm:"column:question_exam_id;type:uuid;not null;index" json:"question_exam_id"`

	QuestionText   string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType   string `gorm:"column:question_type;type:varchar(32);not null;default:'single_choice'" json:"question_type"`
	QuestionPoints int    `gorm:"column:question_points;default:1" json:"question_points"`

	// Sumber urutan utama. Data lama yang cuma menyimpan urutan di
	// question_data["order"] tetap terbaca lewat EffectiveOrder.
	QuestionOrder int `gorm:"column:question_order;default:0" json:"question_order"`

	QuestionData datatypes.JSONMap `gorm:"column:question_data;type:jsonb" json:"question_data,omitempty"`

	QuestionIsVisible bool `gorm:"column:question_is_visible;default:true" json:"question_is_visible"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
