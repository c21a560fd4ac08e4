package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/exams/exam/model"
)

type CreateExamRequest struct {
	ExamTitle           string  `json:"exam_title" validate:"required,min=3,max=255"`
	ExamDescription     *string `json:"exam_description" validate:"omitempty"`
	ExamDurationMinutes *int    `json:"exam_duration_minutes" validate:"omitempty,gt=0"`
}

type UpdateExamRequest struct {
	ExamTitle           *string `json:"exam_title" validate:"omitempty,min=3,max=255"`
	ExamDescription     *string `json:"exam_description" validate:"omitempty"`
	ExamDurationMinutes *int    `json:"exam_duration_minutes" validate:"omitempty,gt=0"`
}

type ExamResponse struct {
	ExamID              uuid.UUID `json:"exam_id"`
	ExamTitle           string    `json:"exam_title"`
	ExamDescription     *string   `json:"exam_description,omitempty"`
	ExamDurationMinutes *int      `json:"exam_duration_minutes,omitempty"`
	ExamIsPublished     bool      `json:"exam_is_published"`
	ExamCreatedAt       time.Time `json:"exam_created_at"`
	ExamUpdatedAt       time.Time `json:"exam_updated_at"`
}

func ToExamResponse(m model.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:              m.ExamID,
		ExamTitle:           m.ExamTitle,
		ExamDescription:     m.ExamDescription,
		ExamDurationMinutes: m.ExamDurationMinutes,
		ExamIsPublished:     m.ExamIsPublished,
		ExamCreatedAt:       m.ExamCreatedAt,
		ExamUpdatedAt:       m.ExamUpdatedAt,
	}
}
