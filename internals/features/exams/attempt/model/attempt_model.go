package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
)

type ExamAttemptModel struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attempt_id"`
	AttemptUserID uuid.UUID `gorm:"column:attempt_user_id;type:uuid;not null;index" json:"attempt_user_id"`
	AttemptExamID uuid.UUID `gorm:"column:attempt_exam_id;type:uuid;not null;index" json:"attempt_exam_id"`

	AttemptStatus string `gorm:"column:attempt_status;type:varchar(20);not null;default:'in_progress'" json:"attempt_status"`

	// Terisi saat pengajar menilai; selalu di rentang [0,100]
	AttemptScore *float64 `gorm:"column:attempt_score" json:"attempt_score,omitempty"`

	AttemptStartedAt   time.Time  `gorm:"column:attempt_started_at;not null" json:"attempt_started_at"`
	AttemptSubmittedAt *time.Time `gorm:"column:attempt_submitted_at" json:"attempt_submitted_at,omitempty"`
	AttemptScoredAt    *time.Time `gorm:"column:attempt_scored_at" json:"attempt_scored_at,omitempty"`

	AttemptCreatedAt time.Time `gorm:"column:attempt_created_at;autoCreateTime" json:"attempt_created_at"`
	AttemptUpdatedAt time.Time `gorm:"column:attempt_updated_at;autoUpdateTime" json:"attempt_updated_at"`
}

func (ExamAttemptModel) TableName() string {
	return "exam_attempts"
}

type AttemptAnswerModel struct {
	AnswerID         uuid.UUID `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_id"`
	AnswerAttemptID  uuid.UUID `gorm:"column:answer_attempt_id;type:uuid;not null;uniqueIndex:uq_answer_per_question" json:"answer_attempt_id"`
	AnswerQuestionID uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;uniqueIndex:uq_answer_per_question" json:"answer_question_id"`

	AnswerSelectedOptions pq.StringArray `gorm:"column:answer_selected_options;type:uuid[]" json:"answer_selected_options,omitempty"`
	AnswerText            *string        `gorm:"column:answer_text;type:text" json:"answer_text,omitempty"`

	// NULL sampai dinilai manual; penilaian otomatis di luar cakupan
	AnswerIsCorrect *bool `gorm:"column:answer_is_correct" json:"answer_is_correct,omitempty"`

	AnswerCreatedAt time.Time `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`
}

func (AttemptAnswerModel) TableName() string {
	return "attempt_answers"
}
