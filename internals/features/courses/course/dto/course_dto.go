package dto

import (
	"time"

	"kursusku_backend/internals/features/courses/course/model"
)

// ============================
// Request DTO
// ============================

type CreateCourseRequest struct {
	CourseTitle       string   `json:"course_title" validate:"required,min=3,max=255"`
	CourseDescription *string  `json:"course_description,omitempty"`
	CoursePrice       *float64 `json:"course_price,omitempty" validate:"omitempty,gte=0"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string  `json:"course_title,omitempty" validate:"omitempty,min=3,max=255"`
	CourseDescription *string  `json:"course_description,omitempty"`
	CoursePrice       *float64 `json:"course_price,omitempty" validate:"omitempty,gte=0"`
	CourseIsPublished *bool    `json:"course_is_published,omitempty"`
}

type AttachExamRequest struct {
	ExamID string `json:"exam_id" validate:"required,uuid"`
}

// ============================
// Response DTO
// ============================

type CourseDTO struct {
	CourseID          string    `json:"course_id"`
	CourseTitle       string    `json:"course_title"`
	CourseSlug        string    `json:"course_slug"`
	CourseDescription *string   `json:"course_description,omitempty"`
	CoursePrice       *float64  `json:"course_price,omitempty"`
	CourseIsFree      bool      `json:"course_is_free"`
	CourseIsPublished bool      `json:"course_is_published"`
	CourseCreatedAt   time.Time `json:"course_created_at"`
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:          m.CourseID.String(),
		CourseTitle:       m.CourseTitle,
		CourseSlug:        m.CourseSlug,
		CourseDescription: m.CourseDescription,
		CoursePrice:       m.CoursePrice,
		CourseIsFree:      m.IsFree(),
		CourseIsPublished: m.CourseIsPublished,
		CourseCreatedAt:   m.CourseCreatedAt,
	}
}
