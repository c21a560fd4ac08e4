package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kursusku_backend/internals/features/exams/question/model"
	"kursusku_backend/internals/features/exams/question/service"
)

type CreateOptionRequest struct {
	OptionText      string `json:"option_text" validate:"required"`
	OptionIsCorrect bool   `json:"option_is_correct"`
}

type CreateQuestionRequest struct {
	QuestionText   string                `json:"question_text" validate:"required"`
	QuestionType   string                `json:"question_type" validate:"omitempty,oneof=single_choice multiple_choice text"`
	QuestionPoints int                   `json:"question_points" validate:"omitempty,gte=0"`
	Options        []CreateOptionRequest `json:"options" validate:"omitempty,dive"`
}

type BulkCreateQuestionRequest struct {
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

type ReorderQuestionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type QuestionOptionResponse struct {
	OptionID        uuid.UUID `json:"option_id"`
	OptionText      string    `json:"option_text"`
	OptionIsCorrect *bool     `json:"option_is_correct,omitempty"`
	OptionOrder     int       `json:"option_order"`
}

type QuestionResponse struct {
	QuestionID     uuid.UUID                `json:"question_id"`
	QuestionExamID uuid.UUID                `json:"question_exam_id"`
	QuestionText   string                   `json:"question_text"`
	QuestionType   string                   `json:"question_type"`
	QuestionPoints int                      `json:"question_points"`
	QuestionOrder  int                      `json:"question_order"`
	QuestionData   datatypes.JSONMap        `json:"question_data,omitempty"`
	Options        []QuestionOptionResponse `json:"options,omitempty"`
}

// ToQuestionResponse: revealAnswers=false menyembunyikan kunci jawaban
// (tampilan peserta), true menampilkannya (tampilan pengajar).
func ToQuestionResponse(q model.QuestionModel, options []model.QuestionOptionModel, revealAnswers bool) QuestionResponse {
	resp := QuestionResponse{
		QuestionID:     q.QuestionID,
		QuestionExamID: q.QuestionExamID,
		QuestionText:   q.QuestionText,
		QuestionType:   q.QuestionType,
		QuestionPoints: q.QuestionPoints,
		QuestionOrder:  service.EffectiveOrder(q),
		QuestionData:   q.QuestionData,
	}
	for _, opt := range options {
		o := QuestionOptionResponse{
			OptionID:    opt.OptionID,
			OptionText:  opt.OptionText,
			OptionOrder: opt.OptionOrder,
		}
		if revealAnswers {
			isCorrect := opt.OptionIsCorrect
			o.OptionIsCorrect = &isCorrect
		}
		resp.Options = append(resp.Options, o)
	}
	return resp
}
