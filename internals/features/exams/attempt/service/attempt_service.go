package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/attempt/model"
	questionModel "kursusku_backend/internals/features/exams/question/model"
)

var (
	ErrAttemptNotFound     = errors.New("attempt tidak ditemukan")
	ErrExamNotAvailable    = errors.New("exam tidak tersedia")
	ErrAlreadySubmitted    = errors.New("attempt sudah disubmit")
	ErrNotSubmitted        = errors.New("attempt belum disubmit, tidak bisa dinilai")
	ErrScoreOutOfRange     = errors.New("skor harus di rentang 0 sampai 100")
	ErrForeignQuestion     = errors.New("jawaban menunjuk soal di luar exam ini")
	ErrDuplicateAnswer     = errors.New("jawaban ganda untuk soal yang sama")
)

type AnswerInput struct {
	QuestionID      uuid.UUID
	SelectedOptions []uuid.UUID
	Text            *string
}

// ValidateScore: skor sah hanya di [0,100] inklusif.
func ValidateScore(score float64) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: %.2f", ErrScoreOutOfRange, score)
	}
	return nil
}

// ValidateAnswers memastikan semua jawaban menunjuk soal milik exam
// (examQuestionIDs) dan tidak ada soal dijawab dua kali. Dipanggil
// SEBELUM ada penulisan apa pun: satu jawaban nyasar membatalkan semuanya.
func ValidateAnswers(answers []AnswerInput, examQuestionIDs []uuid.UUID) error {
	known := make(map[uuid.UUID]bool, len(examQuestionIDs))
	for _, id := range examQuestionIDs {
		known[id] = true
	}

	seen := make(map[uuid.UUID]bool, len(answers))
	for _, ans := range answers {
		if !known[ans.QuestionID] {
			return fmt.Errorf("%w: %s", ErrForeignQuestion, ans.QuestionID)
		}
		if seen[ans.QuestionID] {
			return fmt.Errorf("%w: %s", ErrDuplicateAnswer, ans.QuestionID)
		}
		seen[ans.QuestionID] = true
	}
	return nil
}

// StartAttempt membuka attempt baru pada exam yang sudah published.
// Attempt in_progress yang sudah ada dipakai ulang, bukan digandakan.
func StartAttempt(db *gorm.DB, userID, examID uuid.UUID) (*model.ExamAttemptModel, error) {
	var count int64
	if err := db.Table("exams").
		Where("exam_id = ? AND exam_is_published = true AND exam_deleted_at IS NULL", examID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrExamNotAvailable
	}

	var existing model.ExamAttemptModel
	err := db.Where("attempt_user_id = ? AND attempt_exam_id = ? AND attempt_status = ?",
		userID, examID, model.AttemptStatusInProgress).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempt := model.ExamAttemptModel{
		AttemptUserID:    userID,
		AttemptExamID:    examID,
		AttemptStatus:    model.AttemptStatusInProgress,
		AttemptStartedAt: time.Now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitAttempt menyimpan semua jawaban lalu menutup attempt, atomik.
// is_correct dibiarkan NULL: penilaian datang belakangan dari pengajar.
func SubmitAttempt(db *gorm.DB, userID, attemptID uuid.UUID, answers []AnswerInput) (*model.ExamAttemptModel, error) {
	var attempt model.ExamAttemptModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ? AND attempt_user_id = ?", attemptID, userID).
			First(&attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttemptNotFound
			}
			return err
		}
		if attempt.AttemptStatus != model.AttemptStatusInProgress {
			return ErrAlreadySubmitted
		}

		var questionIDs []uuid.UUID
		if err := tx.Model(&questionModel.QuestionModel{}).
			Where("question_exam_id = ?", attempt.AttemptExamID).
			Pluck("question_id", &questionIDs).Error; err != nil {
			return err
		}
		if err := ValidateAnswers(answers, questionIDs); err != nil {
			return err
		}

		now := time.Now()
		for _, ans := range answers {
			selected := make(pq.StringArray, 0, len(ans.SelectedOptions))
			for _, id := range ans.SelectedOptions {
				selected = append(selected, id.String())
			}
			row := model.AttemptAnswerModel{
				AnswerAttemptID:       attemptID,
				AnswerQuestionID:      ans.QuestionID,
				AnswerSelectedOptions: selected,
				AnswerText:            ans.Text,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&model.ExamAttemptModel{}).
			Where("attempt_id = ? AND attempt_status = ?", attemptID, model.AttemptStatusInProgress).
			Updates(map[string]interface{}{
				"attempt_status":       model.AttemptStatusSubmitted,
				"attempt_submitted_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// status keburu berubah oleh request lain
			return ErrAlreadySubmitted
		}

		attempt.AttemptStatus = model.AttemptStatusSubmitted
		attempt.AttemptSubmittedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// ScoreAttempt menulis skor akhir pada attempt yang sudah disubmit.
// Boleh dipanggil berulang: nilai baru menimpa nilai lama.
func ScoreAttempt(db *gorm.DB, attemptID uuid.UUID, score float64) (*model.ExamAttemptModel, error) {
	if err := ValidateScore(score); err != nil {
		return nil, err
	}

	var attempt model.ExamAttemptModel
	if err := db.Where("attempt_id = ?", attemptID).First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.AttemptStatus != model.AttemptStatusSubmitted {
		return nil, ErrNotSubmitted
	}

	now := time.Now()
	if err := db.Model(&attempt).Updates(map[string]interface{}{
		"attempt_score":     score,
		"attempt_scored_at": now,
	}).Error; err != nil {
		return nil, err
	}

	attempt.AttemptScore = &score
	attempt.AttemptScoredAt = &now
	return &attempt, nil
}
