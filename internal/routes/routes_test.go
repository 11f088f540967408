package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/GymScheduleBack/internal/config"
	"github.com/saeid-a/GymScheduleBack/internal/models"
	"github.com/saeid-a/GymScheduleBack/internal/services"
)

func send(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, target, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRegisterRoutesEndToEnd(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{AppEnv: "test", PayrollBaseRate: 25, PayrollBonusRate: 1.5}
	if err := RegisterRoutes(app, cfg, services.NewGymService("Athletic Centre")); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	steps := []struct {
		method string
		target string
		body   string
		status int
	}{
		{http.MethodPost, "/api/v1/instructors", `{"id": 1, "name": "Diane", "qualifications": ["Cardio 1"]}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/instructors", `{"id": 1, "name": "Diane"}`, http.StatusConflict},
		{http.MethodPost, "/api/v1/rooms", `{"name": "Room 1", "capacity": 1}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/rooms", `{"name": "Room 2", "capacity": 0}`, http.StatusBadRequest},
		{http.MethodPost, "/api/v1/workouts", `{"name": "Boot Camp", "required_qualifications": ["Cardio 1"]}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/offerings", `{"time": "2022-09-09T12:00:00Z", "room": "Room 1", "workout": "Boot Camp", "instructor_id": 1}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/offerings/register", `{"time": "2022-09-09T12:00:00Z", "client": "a@example.com", "workout": "Boot Camp"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/offerings/register", `{"time": "2022-09-09T12:00:00Z", "client": "b@example.com", "workout": "Boot Camp"}`, http.StatusConflict},
	}
	for _, step := range steps {
		resp := send(t, app, step.method, step.target, step.body)
		if resp.StatusCode != step.status {
			t.Fatalf("%s %s: expected %d, got %d", step.method, step.target, step.status, resp.StatusCode)
		}
	}

	resp := send(t, app, http.MethodGet, "/api/v1/reports/payroll?from=2022-09-09T12:00:00Z&to=2022-09-09T12:00:00Z", "")
	var payroll struct {
		Payroll []models.PayrollEntry `json:"payroll"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payroll); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(payroll.Payroll) != 1 || payroll.Payroll[0].Wages != 26.5 {
		t.Fatalf("unexpected payroll: %+v", payroll.Payroll)
	}

	resp = send(t, app, http.MethodGet, "/api/v1/schedule", "")
	var listing struct {
		Schedule []models.OfferingView `json:"schedule"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(listing.Schedule) != 1 || listing.Schedule[0].Registered != 1 || listing.Schedule[0].Available != 0 {
		t.Fatalf("unexpected schedule: %+v", listing.Schedule)
	}
}
