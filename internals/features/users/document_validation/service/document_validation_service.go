package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/document_validation/model"
)

var (
	ErrInvalidTransition = errors.New("transisi status tidak valid")
	ErrNotFound          = errors.New("dokumen validasi tidak ditemukan")
)

// ValidateTransition memeriksa apakah perpindahan status diizinkan:
// NO_SUBMITTED → PENDING → {APPROVED, REJECTED}; REJECTED → PENDING (resubmit).
// APPROVED terminal.
func ValidateTransition(from, to string) error {
	switch to {
	case model.StatusPending:
		if from == model.StatusNoSubmitted || from == model.StatusRejected {
			return nil
		}
	case model.StatusApproved, model.StatusRejected:
		if from == model.StatusPending {
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
}

// AppendHistory menambah tepat satu entry ke log (tidak pernah menulis ulang
// entry lama).
func AppendHistory(raw datatypes.JSON, entry model.HistoryEntry) (datatypes.JSON, error) {
	entries := []model.HistoryEntry{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			// log lama korup → jangan hilangkan, sisipkan apa adanya tidak mungkin;
			// fail loudly supaya tidak menimpa jejak approval
			return nil, fmt.Errorf("history korup: %w", err)
		}
	}
	entries = append(entries, entry)
	out, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

// GetOrInit mengambil record user; kalau belum ada, auto-create NO_SUBMITTED
// (default convenience pada query pertama, bukan efek samping logika validasi).
func GetOrInit(db *gorm.DB, userID uuid.UUID) (*model.DocumentValidationModel, error) {
	var rec model.DocumentValidationModel
	err := db.Where("doc_validation_user_id = ?", userID).First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rec = model.DocumentValidationModel{
		DocValidationUserID:  userID,
		DocValidationStatus:  model.StatusNoSubmitted,
		DocValidationHistory: datatypes.JSON([]byte("[]")),
	}
	if err := db.Create(&rec).Error; err != nil {
		// race: request lain keburu membuat baris yang sama → baca ulang
		var again model.DocumentValidationModel
		if e2 := db.Where("doc_validation_user_id = ?", userID).First(&again).Error; e2 == nil {
			return &again, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Transition memindahkan status + append satu history entry secara atomik.
func Transition(db *gorm.DB, userID uuid.UUID, to, actor, note string) (*model.DocumentValidationModel, error) {
	var out *model.DocumentValidationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		rec, err := GetOrInit(tx, userID)
		if err != nil {
			return err
		}

		if err := ValidateTransition(rec.DocValidationStatus, to); err != nil {
			return err
		}

		hist, err := AppendHistory(rec.DocValidationHistory, model.HistoryEntry{
			Status:         to,
			PreviousStatus: rec.DocValidationStatus,
			Actor:          actor,
			Note:           note,
			At:             time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		res := tx.Model(&model.DocumentValidationModel{}).
			Where("doc_validation_id = ? AND doc_validation_status = ?", rec.DocValidationID, rec.DocValidationStatus).
			Updates(map[string]interface{}{
				"doc_validation_status":  to,
				"doc_validation_history": hist,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// status berubah di bawah kita (request paralel) → tolak sebagai transisi invalid
			return fmt.Errorf("%w: status berubah saat diproses", ErrInvalidTransition)
		}

		rec.DocValidationStatus = to
		rec.DocValidationHistory = hist
		out = rec
		return nil
	})
	if err != nil {
		log.Printf("[DocValidation.Transition] user=%s to=%s err=%v", userID, to, err)
		return nil, err
	}
	return out, nil
}

// Submit: user mengajukan dokumen (NO_SUBMITTED/REJECTED → PENDING)
func Submit(db *gorm.DB, userID uuid.UUID, note string) (*model.DocumentValidationModel, error) {
	return Transition(db, userID, model.StatusPending, userID.String(), note)
}

// Approve: reviewer menyetujui (PENDING → APPROVED). Cek kapabilitas reviewer
// dilakukan di layer route/controller.
func Approve(db *gorm.DB, userID, reviewerID uuid.UUID, note string) (*model.DocumentValidationModel, error) {
	return Transition(db, userID, model.StatusApproved, reviewerID.String(), note)
}

// Reject: reviewer menolak (PENDING → REJECTED)
func Reject(db *gorm.DB, userID, reviewerID uuid.UUID, note string) (*model.DocumentValidationModel, error) {
	return Transition(db, userID, model.StatusRejected, reviewerID.String(), note)
}
