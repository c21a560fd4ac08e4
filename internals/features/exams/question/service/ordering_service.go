package service

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/exams/question/model"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

var (
	ErrQuestionNotFound = errors.New("soal tidak ditemukan")
	ErrAtBoundary       = errors.New("soal sudah di ujung, tidak bisa digeser lagi")
	ErrBadDirection     = errors.New("arah geser harus 'up' atau 'down'")
)

// EffectiveOrder membaca urutan soal: kolom question_order kalau terisi,
// fallback ke question_data["order"] untuk baris lama, terakhir 0.
func EffectiveOrder(q model.QuestionModel) int {
	if q.QuestionOrder != 0 {
		return q.QuestionOrder
	}
	if q.QuestionData != nil {
		switch v := q.QuestionData["order"].(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return 0
}

// SortByEffectiveOrder mengurutkan soal menaik; urutan sama di-tie-break
// pakai waktu dibuat supaya hasilnya stabil.
func SortByEffectiveOrder(questions []model.QuestionModel) {
	sort.SliceStable(questions, func(i, j int) bool {
		oi, oj := EffectiveOrder(questions[i]), EffectiveOrder(questions[j])
		if oi != oj {
			return oi < oj
		}
		return questions[i].QuestionCreatedAt.Before(questions[j].QuestionCreatedAt)
	})
}

// NextOrders menghasilkan n urutan berikutnya setelah lastOrder,
// dipakai saat append satu soal maupun bulk import.
func NextOrders(lastOrder, n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, lastOrder+i)
	}
	return out
}

// PlanSwap menentukan pasangan indeks yang ditukar kalau questionID digeser
// ke arah direction dalam daftar yang SUDAH terurut. Soal di ujung atas
// tidak bisa naik, di ujung bawah tidak bisa turun.
func PlanSwap(sorted []model.QuestionModel, questionID uuid.UUID, direction string) (int, int, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return 0, 0, ErrBadDirection
	}

	idx := -1
	for i := range sorted {
		if sorted[i].QuestionID == questionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, 0, ErrQuestionNotFound
	}

	if direction == DirectionUp {
		if idx == 0 {
			return 0, 0, ErrAtBoundary
		}
		return idx, idx - 1, nil
	}
	if idx == len(sorted)-1 {
		return 0, 0, ErrAtBoundary
	}
	return idx, idx + 1, nil
}

// Reorder menggeser satu soal satu langkah ke atas/bawah. Kedua baris yang
// bertukar posisi diubah dalam satu transaksi; kolom question_order selalu
// ditulis eksplisit sehingga baris lama yang masih mengandalkan
// question_data["order"] ikut ternormalisasi.
func Reorder(db *gorm.DB, examID, questionID uuid.UUID, direction string) ([]model.QuestionModel, error) {
	var result []model.QuestionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var questions []model.QuestionModel
		if err := tx.Where("question_exam_id = ?", examID).
			Find(&questions).Error; err != nil {
			return err
		}

		SortByEffectiveOrder(questions)

		// Normalisasi dulu ke 1..n supaya swap-nya bermakna
		for i := range questions {
			questions[i].QuestionOrder = i + 1
		}

		a, b, err := PlanSwap(questions, questionID, direction)
		if err != nil {
			return err
		}

		questions[a].QuestionOrder, questions[b].QuestionOrder = questions[b].QuestionOrder, questions[a].QuestionOrder

		// Urutan eksplisit ditulis untuk SEMUA baris, bukan cuma dua yang
		// bertukar: baris lama yang masih 0 di kolom tapi punya
		// question_data["order"] besar akan melompati hasil swap kalau
		// dibiarkan tidak ternormalisasi.
		for i := range questions {
			if err := tx.Model(&model.QuestionModel{}).
				Where("question_id = ?", questions[i].QuestionID).
				Update("question_order", questions[i].QuestionOrder).Error; err != nil {
				return err
			}
		}

		SortByEffectiveOrder(questions)
		result = questions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
