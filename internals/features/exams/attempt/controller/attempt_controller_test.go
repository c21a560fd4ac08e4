package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Tanpa login, handler harus tetap menjawab dengan amplop JSON standar
// (status "error" + message), bukan plain text bawaan fiber.
func TestAttemptEndpointsWithoutLoginReturnJSONEnvelope(t *testing.T) {
	app := fiber.New()
	ctrl := NewAttemptController(nil)
	app.Get("/api/u/attempts", ctrl.GetMyAttempts)
	app.Post("/api/u/exams/:examId/attempts", ctrl.StartAttempt)
	app.Post("/api/u/attempts/:attemptId/submit", ctrl.SubmitAttempt)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/u/attempts"},
		{"POST", "/api/u/exams/11111111-2222-3333-4444-555555555555/attempts"},
		{"POST", "/api/u/attempts/11111111-2222-3333-4444-555555555555/submit"},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s %s: status harus 401, dapat %d", tc.method, tc.path, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("%s %s: baca body: %v", tc.method, tc.path, err)
		}
		var payload struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("%s %s: body bukan JSON: %v (%s)", tc.method, tc.path, err, body)
		}
		if payload.Status != "error" {
			t.Fatalf("%s %s: status amplop harus \"error\", dapat %q", tc.method, tc.path, payload.Status)
		}
		if payload.Message == "" {
			t.Fatalf("%s %s: message tidak boleh kosong", tc.method, tc.path)
		}
	}
}
