package service

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kursusku_backend/internals/features/users/document_validation/model"
)

func openDocValidationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka test db: %v", err)
	}
	if err := db.Exec(`CREATE TABLE document_validations (
		doc_validation_id TEXT PRIMARY KEY,
		doc_validation_user_id TEXT NOT NULL UNIQUE,
		doc_validation_status TEXT NOT NULL DEFAULT 'NO_SUBMITTED',
		doc_validation_history TEXT,
		doc_validation_created_at DATETIME,
		doc_validation_updated_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("buat tabel document_validations: %v", err)
	}
	return db
}

func seedValidation(t *testing.T, db *gorm.DB, userID uuid.UUID, status string) model.DocumentValidationModel {
	t.Helper()
	rec := model.DocumentValidationModel{
		DocValidationID:      uuid.New(),
		DocValidationUserID:  userID,
		DocValidationStatus:  status,
		DocValidationHistory: datatypes.JSON([]byte("[]")),
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed validasi: %v", err)
	}
	return rec
}

// Transisi penuh NO_SUBMITTED → PENDING → APPROVED: status dan history harus
// sampai ke DB, dan history hanya bertambah, tidak pernah ditulis ulang.
func TestTransitionPersistsStatusAndAppendsHistory(t *testing.T) {
	db := openDocValidationDB(t)
	userID, reviewerID := uuid.New(), uuid.New()
	seedValidation(t, db, userID, model.StatusNoSubmitted)

	if _, err := Submit(db, userID, "pengajuan awal"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := Approve(db, userID, reviewerID, "dokumen lengkap"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	var reloaded model.DocumentValidationModel
	if err := db.Where("doc_validation_user_id = ?", userID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DocValidationStatus != model.StatusApproved {
		t.Fatalf("status persisten harus APPROVED, dapat %s", reloaded.DocValidationStatus)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(reloaded.DocValidationHistory, &entries); err != nil {
		t.Fatalf("history korup: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history harus 2 entry, dapat %d", len(entries))
	}
	if entries[0].Status != model.StatusPending || entries[0].PreviousStatus != model.StatusNoSubmitted {
		t.Fatalf("entry pertama salah: %+v", entries[0])
	}
	if entries[1].Status != model.StatusApproved || entries[1].Actor != reviewerID.String() {
		t.Fatalf("entry kedua salah: %+v", entries[1])
	}
}

// APPROVED terminal: review ulang harus ditolak dan tidak menyentuh baris.
func TestTransitionGuardRejectsDoubleReview(t *testing.T) {
	db := openDocValidationDB(t)
	userID, reviewerID := uuid.New(), uuid.New()
	seedValidation(t, db, userID, model.StatusPending)

	if _, err := Approve(db, userID, reviewerID, "ok"); err != nil {
		t.Fatalf("approve pertama: %v", err)
	}
	if _, err := Approve(db, userID, reviewerID, "lagi"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approve kedua harus ErrInvalidTransition, dapat %v", err)
	}
	if _, err := Reject(db, userID, reviewerID, "berubah pikiran"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reject setelah approve harus ErrInvalidTransition, dapat %v", err)
	}

	var reloaded model.DocumentValidationModel
	if err := db.Where("doc_validation_user_id = ?", userID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DocValidationStatus != model.StatusApproved {
		t.Fatalf("review gagal tidak boleh mengubah status: %s", reloaded.DocValidationStatus)
	}
	var entries []model.HistoryEntry
	if err := json.Unmarshal(reloaded.DocValidationHistory, &entries); err != nil {
		t.Fatalf("history korup: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("review gagal tidak boleh menambah history: %d entry", len(entries))
	}
}

// Resubmit setelah ditolak: REJECTED → PENDING diizinkan dan jejak penolakan
// tetap ada di history.
func TestTransitionResubmitAfterReject(t *testing.T) {
	db := openDocValidationDB(t)
	userID, reviewerID := uuid.New(), uuid.New()
	seedValidation(t, db, userID, model.StatusPending)

	if _, err := Reject(db, userID, reviewerID, "kurang jelas"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	rec, err := Submit(db, userID, "upload ulang")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if rec.DocValidationStatus != model.StatusPending {
		t.Fatalf("resubmit harus PENDING, dapat %s", rec.DocValidationStatus)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(rec.DocValidationHistory, &entries); err != nil {
		t.Fatalf("history korup: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history harus menyimpan penolakan + resubmit, dapat %d entry", len(entries))
	}
}
