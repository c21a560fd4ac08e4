package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	// Role menyimpan identitas role (bukan display name); dibandingkan
	// dengan RoleConfig saat permission check.
	Role string `gorm:"type:varchar(20);not null;default:'student'" json:"-"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`
	IsBanned bool `gorm:"not null;default:false" json:"is_banned"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
