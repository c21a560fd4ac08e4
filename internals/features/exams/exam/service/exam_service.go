package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/exam/model"
)

var (
	ErrExamNotFound = errors.New("exam tidak ditemukan")
	ErrNoQuestions  = errors.New("exam belum punya soal, tidak bisa dipublish")
)

// CanPublish: exam boleh dipublish hanya jika punya minimal satu soal hidup.
// Dipisah dari PublishExam supaya aturan murninya gampang diuji.
func CanPublish(questionCount int64) error {
	if questionCount < 1 {
		return ErrNoQuestions
	}
	return nil
}

// PublishExam menandai exam siap dipakai. Gagal dengan ErrNoQuestions
// kalau belum ada soal sama sekali.
func PublishExam(db *gorm.DB, examID uuid.UUID) (*model.ExamModel, error) {
	var exam model.ExamModel
	if err := db.Where("exam_id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	if exam.ExamIsPublished {
		return &exam, nil
	}

	var count int64
	if err := db.Table("questions").
		Where("question_exam_id = ? AND question_deleted_at IS NULL", examID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if err := CanPublish(count); err != nil {
		return nil, err
	}

	if err := db.Model(&exam).Update("exam_is_published", true).Error; err != nil {
		return nil, err
	}
	exam.ExamIsPublished = true
	return &exam, nil
}

// UnpublishExam menarik exam dari peredaran; attempt yang sedang jalan tidak disentuh.
func UnpublishExam(db *gorm.DB, examID uuid.UUID) (*model.ExamModel, error) {
	var exam model.ExamModel
	if err := db.Where("exam_id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if err := db.Model(&exam).Update("exam_is_published", false).Error; err != nil {
		return nil, err
	}
	exam.ExamIsPublished = false
	return &exam, nil
}
