package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChapterModel struct {
	ChapterID       uuid.UUID `gorm:"column:chapter_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chapter_id"`
	ChapterCourseID uuid.UUID `gorm:"column:chapter_course_id;type:uuid;not null;index" json:"chapter_course_id"`
	ChapterTitle    string    `gorm:"column:chapter_title;type:varchar(255);not null" json:"chapter_title"`

	// Urutan tampil. Unik per course dijaga oleh engine (max+1 saat create),
	// bukan oleh constraint DB.
	ChapterPosition int `gorm:"column:chapter_position;not null;default:0" json:"chapter_position"`

	ChapterIsFree      bool `gorm:"column:chapter_is_free;not null;default:false" json:"chapter_is_free"`
	ChapterIsPublished bool `gorm:"column:chapter_is_published;not null;default:false" json:"chapter_is_published"`

	// FK eksplisit nullable; ON DELETE SET NULL supaya exam terhapus tidak
	// meninggalkan id gantung.
	ChapterExamID *uuid.UUID `gorm:"column:chapter_exam_id;type:uuid;constraint:OnDelete:SET NULL" json:"chapter_exam_id,omitempty"`

	// Payload bebas (deskripsi video, atribut tambahan tanpa migrasi)
	ChapterData datatypes.JSONMap `gorm:"column:chapter_data;type:jsonb" json:"chapter_data,omitempty"`

	ChapterCreatedAt time.Time  `gorm:"column:chapter_created_at;autoCreateTime" json:"chapter_created_at"`
	ChapterUpdatedAt time.Time  `gorm:"column:chapter_updated_at;autoUpdateTime" json:"chapter_updated_at"`
	ChapterDeletedAt *time.Time `gorm:"column:chapter_deleted_at;index" json:"chapter_deleted_at,omitempty"`
}

func (ChapterModel) TableName() string {
	return "chapters"
}
