package dto

import (
	"time"

	"gorm.io/datatypes"

	"kursusku_backend/internals/features/courses/chapter/model"
)

// ============================
// Request DTO
// ============================

type CreateChapterRequest struct {
	ChapterTitle  string            `json:"chapter_title" validate:"required,min=3,max=255"`
	ChapterIsFree bool              `json:"chapter_is_free"`
	ChapterExamID *string           `json:"chapter_exam_id,omitempty" validate:"omitempty,uuid"`
	ChapterData   datatypes.JSONMap `json:"chapter_data,omitempty"`
}

type UpdateChapterRequest struct {
	ChapterTitle       *string           `json:"chapter_title,omitempty" validate:"omitempty,min=3,max=255"`
	ChapterIsFree      *bool             `json:"chapter_is_free,omitempty"`
	ChapterIsPublished *bool             `json:"chapter_is_published,omitempty"`
	ChapterExamID      *string           `json:"chapter_exam_id,omitempty" validate:"omitempty,uuid"`
	ChapterData        datatypes.JSONMap `json:"chapter_data,omitempty"`
}

// ============================
// Response DTO
// ============================

type ChapterDTO struct {
	ChapterID          string            `json:"chapter_id"`
	ChapterCourseID    string            `json:"chapter_course_id"`
	ChapterTitle       string            `json:"chapter_title"`
	ChapterPosition    int               `json:"chapter_position"`
	ChapterIsFree      bool              `json:"chapter_is_free"`
	ChapterIsPublished bool              `json:"chapter_is_published"`
	ChapterExamID      *string           `json:"chapter_exam_id,omitempty"`
	ChapterData        datatypes.JSONMap `json:"chapter_data,omitempty"`
	ChapterCreatedAt   time.Time         `json:"chapter_created_at"`
}

func ToChapterDTO(m model.ChapterModel) ChapterDTO {
	var examID *string
	if m.ChapterExamID != nil {
		s := m.ChapterExamID.String()
		examID = &s
	}
	return ChapterDTO{
		ChapterID:          m.ChapterID.String(),
		ChapterCourseID:    m.ChapterCourseID.String(),
		ChapterTitle:       m.ChapterTitle,
		ChapterPosition:    m.ChapterPosition,
		ChapterIsFree:      m.ChapterIsFree,
		ChapterIsPublished: m.ChapterIsPublished,
		ChapterExamID:      examID,
		ChapterData:        m.ChapterData,
		ChapterCreatedAt:   m.ChapterCreatedAt,
	}
}
