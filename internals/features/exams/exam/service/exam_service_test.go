package service

import (
	"errors"
	"testing"
)

func TestCanPublishRejectsZeroQuestions(t *testing.T) {
	if err := CanPublish(0); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("0 soal harus ErrNoQuestions, dapat %v", err)
	}
}

func TestCanPublishAllowsAtLeastOne(t *testing.T) {
	for _, n := range []int64{1, 2, 50} {
		if err := CanPublish(n); err != nil {
			t.Fatalf("%d soal harus lolos, dapat %v", n, err)
		}
	}
}
