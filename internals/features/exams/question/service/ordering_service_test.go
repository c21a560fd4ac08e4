package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kursusku_backend/internals/features/exams/question/model"
)

func q(order int, data datatypes.JSONMap) model.QuestionModel {
	return model.QuestionModel{
		QuestionID:    uuid.New(),
		QuestionOrder: order,
		QuestionData:  data,
	}
}

func TestEffectiveOrderPrefersColumn(t *testing.T) {
	got := EffectiveOrder(q(7, datatypes.JSONMap{"order": float64(3)}))
	if got != 7 {
		t.Fatalf("kolom harus menang, dapat %d", got)
	}
}

func TestEffectiveOrderFallsBackToData(t *testing.T) {
	got := EffectiveOrder(q(0, datatypes.JSONMap{"order": float64(3)}))
	if got != 3 {
		t.Fatalf("fallback data[\"order\"] harus 3, dapat %d", got)
	}
}

func TestEffectiveOrderDefaultsToZero(t *testing.T) {
	if got := EffectiveOrder(q(0, nil)); got != 0 {
		t.Fatalf("tanpa kolom dan data harus 0, dapat %d", got)
	}
	if got := EffectiveOrder(q(0, datatypes.JSONMap{"order": "bukan angka"})); got != 0 {
		t.Fatalf("data non-angka harus 0, dapat %d", got)
	}
}

func TestSortByEffectiveOrderStable(t *testing.T) {
	base := time.Now()
	a := q(0, datatypes.JSONMap{"order": float64(2)})
	a.QuestionCreatedAt = base
	b := q(1, nil)
	b.QuestionCreatedAt = base.Add(time.Second)
	c := q(2, nil)
	c.QuestionCreatedAt = base.Add(2 * time.Second)
	d := q(2, nil) // urutan sama dengan c, dibuat lebih dulu
	d.QuestionCreatedAt = base.Add(time.Second)

	qs := []model.QuestionModel{c, a, d, b}
	SortByEffectiveOrder(qs)

	want := []uuid.UUID{b.QuestionID, a.QuestionID, d.QuestionID, c.QuestionID}
	for i, id := range want {
		if qs[i].QuestionID != id {
			t.Fatalf("posisi %d salah", i)
		}
	}
}

func TestNextOrdersAppends(t *testing.T) {
	got := NextOrders(5, 3)
	want := []int{6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("panjang salah: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NextOrders(5,3) = %v, mau %v", got, want)
		}
	}
}

func TestPlanSwapMiddle(t *testing.T) {
	qs := []model.QuestionModel{q(1, nil), q(2, nil), q(3, nil)}

	a, b, err := PlanSwap(qs, qs[1].QuestionID, DirectionUp)
	if err != nil {
		t.Fatalf("geser naik dari tengah harus bisa: %v", err)
	}
	if a != 1 || b != 0 {
		t.Fatalf("swap naik harus (1,0), dapat (%d,%d)", a, b)
	}

	a, b, err = PlanSwap(qs, qs[1].QuestionID, DirectionDown)
	if err != nil {
		t.Fatalf("geser turun dari tengah harus bisa: %v", err)
	}
	if a != 1 || b != 2 {
		t.Fatalf("swap turun harus (1,2), dapat (%d,%d)", a, b)
	}
}

func TestPlanSwapBoundaries(t *testing.T) {
	qs := []model.QuestionModel{q(1, nil), q(2, nil)}

	if _, _, err := PlanSwap(qs, qs[0].QuestionID, DirectionUp); !errors.Is(err, ErrAtBoundary) {
		t.Fatalf("soal teratas tidak bisa naik, dapat %v", err)
	}
	if _, _, err := PlanSwap(qs, qs[1].QuestionID, DirectionDown); !errors.Is(err, ErrAtBoundary) {
		t.Fatalf("soal terbawah tidak bisa turun, dapat %v", err)
	}
}

func TestPlanSwapRejectsUnknown(t *testing.T) {
	qs := []model.QuestionModel{q(1, nil)}

	if _, _, err := PlanSwap(qs, uuid.New(), DirectionUp); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("soal asing harus ErrQuestionNotFound, dapat %v", err)
	}
	if _, _, err := PlanSwap(qs, qs[0].QuestionID, "sideways"); !errors.Is(err, ErrBadDirection) {
		t.Fatalf("arah aneh harus ErrBadDirection, dapat %v", err)
	}
}
