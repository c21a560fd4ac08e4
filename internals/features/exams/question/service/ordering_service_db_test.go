package service

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kursusku_backend/internals/features/exams/question/model"
)

func openQuestionDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka test db: %v", err)
	}
	if err := db.Exec(`CREATE TABLE questions (
		question_id TEXT PRIMARY KEY,
		question_exam_id TEXT NOT NULL,
		question_text TEXT NOT NULL,
		question_type TEXT NOT NULL DEFAULT 'single_choice',
		question_points INTEGER DEFAULT 1,
		question_order INTEGER DEFAULT 0,
		question_data TEXT,
		question_is_visible NUMERIC DEFAULT 1,
		question_created_at DATETIME,
		question_updated_at DATETIME,
		question_deleted_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("buat tabel questions: %v", err)
	}
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, examID uuid.UUID, order int, data datatypes.JSONMap) model.QuestionModel {
	t.Helper()
	q := model.QuestionModel{
		QuestionID:     uuid.New(),
		QuestionExamID: examID,
		QuestionText:   "soal",
		QuestionType:   model.QuestionTypeSingleChoice,
		QuestionPoints: 1,
		QuestionOrder:  order,
		QuestionData:   data,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed soal: %v", err)
	}
	return q
}

// Baris lama menyimpan urutan hanya di question_data["order"]. Menggeser satu
// soal tidak boleh menggeser soal lain: baris yang tidak ikut swap harus tetap
// di tempatnya setelah dibaca ulang dari DB.
func TestReorderLegacyRowsKeepsOthersInPlace(t *testing.T) {
	db := openQuestionDB(t)
	examID := uuid.New()

	first := seedQuestion(t, db, examID, 0, datatypes.JSONMap{"order": 10})
	middle := seedQuestion(t, db, examID, 0, datatypes.JSONMap{"order": 20})
	last := seedQuestion(t, db, examID, 0, datatypes.JSONMap{"order": 30})

	result, err := Reorder(db, examID, middle.QuestionID, DirectionDown)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	wantIDs := []uuid.UUID{first.QuestionID, last.QuestionID, middle.QuestionID}
	if len(result) != 3 {
		t.Fatalf("hasil harus 3 soal, dapat %d", len(result))
	}
	for i, id := range wantIDs {
		if result[i].QuestionID != id {
			t.Fatalf("posisi %d hasil return salah", i)
		}
	}

	// yang menentukan adalah urutan PERSISTEN, bukan slice in-memory
	var reloaded []model.QuestionModel
	if err := db.Where("question_exam_id = ?", examID).Find(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	SortByEffectiveOrder(reloaded)
	for i, id := range wantIDs {
		if reloaded[i].QuestionID != id {
			t.Fatalf("urutan persisten posisi %d salah", i)
		}
		if reloaded[i].QuestionOrder != i+1 {
			t.Fatalf("baris posisi %d belum ternormalisasi ke kolom: question_order=%d",
				i, reloaded[i].QuestionOrder)
		}
	}
}

func TestReorderTypedRowsPersistsBothSwapped(t *testing.T) {
	db := openQuestionDB(t)
	examID := uuid.New()

	q1 := seedQuestion(t, db, examID, 1, nil)
	q2 := seedQuestion(t, db, examID, 2, nil)
	q3 := seedQuestion(t, db, examID, 3, nil)

	if _, err := Reorder(db, examID, q1.QuestionID, DirectionDown); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	var reloaded []model.QuestionModel
	if err := db.Where("question_exam_id = ?", examID).Find(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	SortByEffectiveOrder(reloaded)

	wantIDs := []uuid.UUID{q2.QuestionID, q1.QuestionID, q3.QuestionID}
	for i, id := range wantIDs {
		if reloaded[i].QuestionID != id {
			t.Fatalf("urutan persisten posisi %d salah setelah swap", i)
		}
	}
}

func TestReorderBoundaryLeavesStoreUntouched(t *testing.T) {
	db := openQuestionDB(t)
	examID := uuid.New()

	q1 := seedQuestion(t, db, examID, 1, nil)
	q2 := seedQuestion(t, db, examID, 2, nil)

	if _, err := Reorder(db, examID, q1.QuestionID, DirectionUp); err == nil {
		t.Fatalf("soal teratas tidak boleh bisa naik")
	}

	var reloaded []model.QuestionModel
	if err := db.Where("question_exam_id = ?", examID).Find(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	SortByEffectiveOrder(reloaded)
	if reloaded[0].QuestionID != q1.QuestionID || reloaded[1].QuestionID != q2.QuestionID {
		t.Fatalf("reorder yang gagal tidak boleh mengubah urutan tersimpan")
	}
}
