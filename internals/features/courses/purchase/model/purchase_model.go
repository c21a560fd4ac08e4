package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel: pasangan (user, course) unik. Keberadaannya = entitlement ke
// semua chapter published pada course tsb, gratis maupun berbayar.
type PurchaseModel struct {
	PurchaseID       uuid.UUID `gorm:"column:purchase_id;type:uuid;default:gen_random_uuid();primaryKey" json:"purchase_id"`
	PurchaseUserID   uuid.UUID `gorm:"column:purchase_user_id;type:uuid;not null;uniqueIndex:uq_purchase_user_course" json:"purchase_user_id"`
	PurchaseCourseID uuid.UUID `gorm:"column:purchase_course_id;type:uuid;not null;uniqueIndex:uq_purchase_user_course" json:"purchase_course_id"`

	// Harga saat dibeli (snapshot; nil utk course gratis)
	PurchasePrice *float64 `gorm:"column:purchase_price;type:numeric(12,2)" json:"purchase_price,omitempty"`

	PurchaseCreatedAt time.Time `gorm:"column:purchase_created_at;autoCreateTime" json:"purchase_created_at"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}
