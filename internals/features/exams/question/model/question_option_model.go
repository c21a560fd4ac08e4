package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionOptionModel struct {
	OptionID         uuid.UUID `gorm:"column:option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"option_id"`
	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`

	OptionText      string `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionIsCorrect bool   `gorm:"column:option_is_correct;default:false" json:"option_is_correct"`
	OptionOrder     int    `gorm:"column:option_order;default:0" json:"option_order"`

	OptionCreatedAt time.Time `gorm:"column:option_created_at;autoCreateTime" json:"option_created_at"`
}

func (QuestionOptionModel) TableName() string {
	return "question_options"
}
