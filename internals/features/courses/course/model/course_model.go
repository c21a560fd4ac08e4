package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	CourseID    uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTitle string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseSlug  string    `gorm:"column:course_slug;type:varchar(160);unique;not null" json:"course_slug"`

	CourseDescription *string `gorm:"column:course_description;type:text" json:"course_description,omitempty"`

	// nil berarti gratis
	CoursePrice *float64 `gorm:"column:course_price;type:numeric(12,2)" json:"course_price,omitempty"`

	CourseIsPublished bool `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	CourseCreatedBy uuid.UUID `gorm:"column:course_created_by;type:uuid;not null" json:"course_created_by"`

	CourseCreatedAt time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time  `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt *time.Time `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// IsFree: course tanpa harga dianggap gratis
func (m CourseModel) IsFree() bool {
	return m.CoursePrice == nil || *m.CoursePrice <= 0
}
