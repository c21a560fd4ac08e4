package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status dokumen validasi (append-only state machine)
const (
	StatusNoSubmitted = "NO_SUBMITTED"
	StatusPending     = "PENDING"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
)

// DocumentValidationModel: satu baris per user. History adalah log append-only
// dari setiap transisi — tidak pernah ditulis ulang, hanya ditambah, sehingga
// jejak approval selalu bisa direkonstruksi dari baris ini saja.
type DocumentValidationModel struct {
	DocValidationID        uuid.UUID      `gorm:"column:doc_validation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"doc_validation_id"`
	DocValidationUserID    uuid.UUID      `gorm:"column:doc_validation_user_id;type:uuid;not null;uniqueIndex:uq_doc_validation_user" json:"doc_validation_user_id"`
	DocValidationStatus    string         `gorm:"column:doc_validation_status;type:varchar(20);not null;default:'NO_SUBMITTED'" json:"doc_validation_status"`
	DocValidationHistory   datatypes.JSON `gorm:"column:doc_validation_history;type:jsonb" json:"doc_validation_history"`
	DocValidationCreatedAt time.Time      `gorm:"column:doc_validation_created_at;autoCreateTime" json:"doc_validation_created_at"`
	DocValidationUpdatedAt time.Time      `gorm:"column:doc_validation_updated_at;autoUpdateTime" json:"doc_validation_updated_at"`
}

func (DocumentValidationModel) TableName() string {
	return "document_validations"
}

// HistoryEntry: satu transisi pada log
type HistoryEntry struct {
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	Actor          string    `json:"actor"`
	Note           string    `json:"note,omitempty"`
	At             time.Time `json:"at"`
}
