package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"

	"kursusku_backend/internals/features/users/document_validation/model"
)

func TestValidateTransition_HappyPath(t *testing.T) {
	cases := [][2]string{
		{model.StatusNoSubmitted, model.StatusPending},
		{model.StatusPending, model.StatusApproved},
		{model.StatusPending, model.StatusRejected},
		{model.StatusRejected, model.StatusPending},
	}
	for _, cs := range cases {
		if err := ValidateTransition(cs[0], cs[1]); err != nil {
			t.Fatalf("%s → %s seharusnya valid: %v", cs[0], cs[1], err)
		}
	}
}

func TestValidateTransition_RejectsInvalid(t *testing.T) {
	cases := [][2]string{
		{model.StatusNoSubmitted, model.StatusApproved},
		{model.StatusNoSubmitted, model.StatusRejected},
		{model.StatusApproved, model.StatusPending},
		{model.StatusApproved, model.StatusApproved},
		{model.StatusRejected, model.StatusApproved},
		{model.StatusApproved, model.StatusRejected},
	}
	for _, cs := range cases {
		err := ValidateTransition(cs[0], cs[1])
		if err == nil {
			t.Fatalf("%s → %s seharusnya ditolak", cs[0], cs[1])
		}
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	}
}

func TestAppendHistory_AppendsExactlyOne(t *testing.T) {
	raw := datatypes.JSON([]byte("[]"))

	first := model.HistoryEntry{
		Status:         model.StatusPending,
		PreviousStatus: model.StatusNoSubmitted,
		Actor:          "user-1",
		At:             time.Now().UTC(),
	}
	out, err := AppendHistory(raw, first)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	second := model.HistoryEntry{
		Status:         model.StatusApproved,
		PreviousStatus: model.StatusPending,
		Actor:          "reviewer-1",
		Note:           "ok",
		At:             time.Now().UTC(),
	}
	out, err = AppendHistory(out, second)
	if err != nil {
		t.Fatalf("append kedua: %v", err)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// entry lama tidak boleh berubah
	if entries[0].Status != model.StatusPending || entries[0].PreviousStatus != model.StatusNoSubmitted {
		t.Fatalf("entry pertama berubah: %+v", entries[0])
	}
	if entries[1].Actor != "reviewer-1" || entries[1].Note != "ok" {
		t.Fatalf("entry kedua salah: %+v", entries[1])
	}
}

func TestAppendHistory_NilTreatedAsEmpty(t *testing.T) {
	out, err := AppendHistory(nil, model.HistoryEntry{
		Status:         model.StatusPending,
		PreviousStatus: model.StatusNoSubmitted,
		Actor:          "user-2",
		At:             time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("append nil: %v", err)
	}
	var entries []model.HistoryEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestAppendHistory_CorruptLogFailsLoudly(t *testing.T) {
	if _, err := AppendHistory(datatypes.JSON([]byte("{not json")), model.HistoryEntry{}); err == nil {
		t.Fatal("log korup seharusnya error, bukan ditimpa")
	}
}
