package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseExamModel: join entity Course↔Exam first-class dengan lifecycle sendiri.
// Dimanipulasi hanya lewat insert/delete bertipe, tidak pernah raw SQL.
type CourseExamModel struct {
	CourseExamID       uuid.UUID `gorm:"column:course_exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_exam_id"`
	CourseExamCourseID uuid.UUID `gorm:"column:course_exam_course_id;type:uuid;not null;uniqueIndex:uq_course_exam_pair" json:"course_exam_course_id"`
	CourseExamExamID   uuid.UUID `gorm:"column:course_exam_exam_id;type:uuid;not null;uniqueIndex:uq_course_exam_pair" json:"course_exam_exam_id"`
	CourseExamCreatedAt time.Time `gorm:"column:course_exam_created_at;autoCreateTime" json:"course_exam_created_at"`
}

func (CourseExamModel) TableName() string {
	return "course_exams"
}
