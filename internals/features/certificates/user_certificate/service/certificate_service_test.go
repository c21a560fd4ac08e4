package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildCertificateCodeShape(t *testing.T) {
	courseID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	userID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	issuedAt := time.Unix(1700000000, 0)

	code := BuildCertificateCode(courseID, userID, issuedAt)

	if !strings.HasPrefix(code, "CERT-") {
		t.Fatalf("kode harus berawalan CERT-, dapat %q", code)
	}
	parts := strings.Split(code, "-")
	if len(parts) != 4 {
		t.Fatalf("kode harus 4 segmen, dapat %d (%q)", len(parts), code)
	}
	if parts[1] != "11111111" {
		t.Fatalf("segmen course salah: %q", parts[1])
	}
	if parts[2] != "AAAAAAAA" {
		t.Fatalf("segmen user salah: %q", parts[2])
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("kode harus huruf besar semua: %q", code)
	}
}

func TestBuildCertificateCodeDeterministicForSameInput(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	at := time.Now()

	a := BuildCertificateCode(courseID, userID, at)
	b := BuildCertificateCode(courseID, userID, at)
	if a != b {
		t.Fatalf("input sama harus menghasilkan kode sama: %q vs %q", a, b)
	}
}

func TestBuildCertificateCodeDiffersByTime(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()

	a := BuildCertificateCode(courseID, userID, time.Unix(1700000000, 0))
	b := BuildCertificateCode(courseID, userID, time.Unix(1700000001, 0))
	if a == b {
		t.Fatalf("waktu beda harus menghasilkan kode beda")
	}
}
