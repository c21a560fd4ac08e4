package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/exams/attempt/model"
)

type SubmitAnswerRequest struct {
	QuestionID      string   `json:"question_id" validate:"required,uuid"`
	SelectedOptions []string `json:"selected_options" validate:"omitempty,dive,uuid"`
	Text            *string  `json:"text" validate:"omitempty"`
}

type SubmitAttemptRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" validate:"omitempty,dive"`
}

type ScoreAttemptRequest struct {
	Score float64 `json:"score"`
}

type AttemptResponse struct {
	AttemptID          uuid.UUID  `json:"attempt_id"`
	AttemptExamID      uuid.UUID  `json:"attempt_exam_id"`
	AttemptStatus      string     `json:"attempt_status"`
	AttemptScore       *float64   `json:"attempt_score,omitempty"`
	AttemptStartedAt   time.Time  `json:"attempt_started_at"`
	AttemptSubmittedAt *time.Time `json:"attempt_submitted_at,omitempty"`
	AttemptScoredAt    *time.Time `json:"attempt_scored_at,omitempty"`
}

func ToAttemptResponse(m model.ExamAttemptModel) AttemptResponse {
	return AttemptResponse{
		AttemptID:          m.AttemptID,
		AttemptExamID:      m.AttemptExamID,
		AttemptStatus:      m.AttemptStatus,
		AttemptScore:       m.AttemptScore,
		AttemptStartedAt:   m.AttemptStartedAt,
		AttemptSubmittedAt: m.AttemptSubmittedAt,
		AttemptScoredAt:    m.AttemptScoredAt,
	}
}
