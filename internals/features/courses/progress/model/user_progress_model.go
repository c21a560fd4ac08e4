package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProgressModel: pasangan (user, chapter) unik; dibuat/diupdate hanya oleh
// learner yang menyelesaikan (atau membatalkan selesai) chapter yang berhak
// dia lihat.
type UserProgressModel struct {
	UserProgressID        uuid.UUID `gorm:"column:user_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_progress_id"`
	UserProgressUserID    uuid.UUID `gorm:"column:user_progress_user_id;type:uuid;not null;uniqueIndex:uq_user_progress_pair" json:"user_progress_user_id"`
	UserProgressChapterID uuid.UUID `gorm:"column:user_progress_chapter_id;type:uuid;not null;uniqueIndex:uq_user_progress_pair" json:"user_progress_chapter_id"`

	UserProgressIsCompleted bool `gorm:"column:user_progress_is_completed;not null;default:false" json:"user_progress_is_completed"`

	UserProgressCreatedAt time.Time `gorm:"column:user_progress_created_at;autoCreateTime" json:"user_progress_created_at"`
	UserProgressUpdatedAt time.Time `gorm:"column:user_progress_updated_at;autoUpdateTime" json:"user_progress_updated_at"`
}

func (UserProgressModel) TableName() string {
	return "user_progress"
}
