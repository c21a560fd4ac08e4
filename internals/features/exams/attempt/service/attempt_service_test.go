package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestValidateScoreAcceptsBoundaries(t *testing.T) {
	for _, s := range []float64{0, 0.5, 50, 99.99, 100} {
		if err := ValidateScore(s); err != nil {
			t.Fatalf("skor %.2f harus sah, dapat %v", s, err)
		}
	}
}

func TestValidateScoreRejectsOutOfRange(t *testing.T) {
	for _, s := range []float64{-1, -0.01, 100.01, 101, 1000} {
		if err := ValidateScore(s); !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("skor %.2f harus ditolak, dapat %v", s, err)
		}
	}
}

func TestValidateAnswersAcceptsOwnQuestions(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	answers := []AnswerInput{
		{QuestionID: q1},
		{QuestionID: q2},
	}
	if err := ValidateAnswers(answers, []uuid.UUID{q1, q2, uuid.New()}); err != nil {
		t.Fatalf("jawaban ke soal sendiri harus lolos: %v", err)
	}
}

func TestValidateAnswersRejectsForeignQuestion(t *testing.T) {
	q1 := uuid.New()
	answers := []AnswerInput{
		{QuestionID: q1},
		{QuestionID: uuid.New()}, // bukan soal exam ini
	}
	if err := ValidateAnswers(answers, []uuid.UUID{q1}); !errors.Is(err, ErrForeignQuestion) {
		t.Fatalf("soal asing harus ErrForeignQuestion, dapat %v", err)
	}
}

func TestValidateAnswersRejectsDuplicates(t *testing.T) {
	q1 := uuid.New()
	answers := []AnswerInput{
		{QuestionID: q1},
		{QuestionID: q1},
	}
	if err := ValidateAnswers(answers, []uuid.UUID{q1}); !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("jawaban ganda harus ErrDuplicateAnswer, dapat %v", err)
	}
}

func TestValidateAnswersEmptyIsFine(t *testing.T) {
	if err := ValidateAnswers(nil, []uuid.UUID{uuid.New()}); err != nil {
		t.Fatalf("tanpa jawaban harus sah: %v", err)
	}
}
