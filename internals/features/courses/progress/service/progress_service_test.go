package service

import "testing"

func TestCourseProgressPercent_Basic(t *testing.T) {
	cases := []struct {
		completed, total int
		want             float64
	}{
		{0, 4, 0},
		{1, 4, 25},
		{2, 4, 50},
		{4, 4, 100},
		{3, 3, 100},
		{1, 3, 100.0 / 3},
	}
	for _, cs := range cases {
		got := CourseProgressPercent(cs.completed, cs.total)
		if got != cs.want {
			t.Fatalf("%d/%d: expected %v, got %v", cs.completed, cs.total, cs.want, got)
		}
	}
}

func TestCourseProgressPercent_ZeroChapters(t *testing.T) {
	// course tanpa chapter published: 0, bukan NaN/panic
	if got := CourseProgressPercent(0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := CourseProgressPercent(3, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCourseProgressPercent_ClampsOutOfRange(t *testing.T) {
	if got := CourseProgressPercent(-1, 4); got != 0 {
		t.Fatalf("completed negatif: expected 0, got %v", got)
	}
	// completed > total (mis. chapter di-unpublish setelah selesai)
	if got := CourseProgressPercent(5, 4); got != 100 {
		t.Fatalf("completed > total: expected 100, got %v", got)
	}
}
