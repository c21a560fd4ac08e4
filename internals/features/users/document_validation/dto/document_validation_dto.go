package dto

import (
	"encoding/json"
	"time"

	"kursusku_backend/internals/features/users/document_validation/model"
)

// ============================
// Request DTO
// ============================

type SubmitValidationRequest struct {
	Note string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type ReviewValidationRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ============================
// Response DTO
// ============================

type DocumentValidationDTO struct {
	DocValidationID     string               `json:"doc_validation_id"`
	DocValidationUserID string               `json:"doc_validation_user_id"`
	DocValidationStatus string               `json:"doc_validation_status"`
	History             []model.HistoryEntry `json:"history"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func ToDocumentValidationDTO(m model.DocumentValidationModel) DocumentValidationDTO {
	entries := []model.HistoryEntry{}
	if len(m.DocValidationHistory) > 0 {
		_ = json.Unmarshal(m.DocValidationHistory, &entries)
	}
	return DocumentValidationDTO{
		DocValidationID:     m.DocValidationID.String(),
		DocValidationUserID: m.DocValidationUserID.String(),
		DocValidationStatus: m.DocValidationStatus,
		History:             entries,
		UpdatedAt:           m.DocValidationUpdatedAt,
	}
}
