package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"barberpro-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func appointmentRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	ac := NewAppointmentController(db)
	r.POST("/appointments", ac.CreateAppointment)
	r.GET("/appointments", ac.GetAppointments)
	r.GET("/appointments/:id", ac.GetAppointment)
	r.PUT("/appointments/:id/status", ac.UpdateAppointmentStatus)
	r.DELETE("/appointments/:id", ac.DeleteAppointment)
	return r
}

func bookAppointment(t *testing.T, db *gorm.DB, r *gin.Engine) models.Appointment {
	t.Helper()
	client := seedClient(t, db, "Jorge", "11988880002")
	service := seedService(t, db, "Haircut", 25.00)

	body := fmt.Sprintf(`{"clientId":"%s","serviceId":"%s","date":"2026-09-15","time":"14:30","staff":"Rafael"}`, client.ID, service.ID)
	w := performRequest(r, http.MethodPost, "/appointments", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var appointment models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appointment); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return appointment
}

func TestStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.AppointmentScheduled, models.AppointmentConfirmed, true},
		{models.AppointmentScheduled, models.AppointmentCancelled, true},
		{models.AppointmentScheduled, models.AppointmentCompleted, false},
		{models.AppointmentConfirmed, models.AppointmentCompleted, true},
		{models.AppointmentConfirmed, models.AppointmentCancelled, true},
		{models.AppointmentConfirmed, models.AppointmentScheduled, false},
		{models.AppointmentCompleted, models.AppointmentCancelled, false},
		{models.AppointmentCompleted, models.AppointmentConfirmed, false},
		{models.AppointmentCancelled, models.AppointmentConfirmed, false},
		{models.AppointmentCancelled, models.AppointmentScheduled, false},
	}
	for _, tc := range cases {
		if got := models.CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestConfirmThenCompleteAppointment(t *testing.T) {
	db := setupTestDB(t)
	r := appointmentRouter(db)
	appointment := bookAppointment(t, db, r)

	w := performRequest(r, http.MethodPut, "/appointments/"+appointment.ID.String()+"/status", `{"status":"confirmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200 got %d: %s", w.Code, w.Body.String())
	}

	w = performRequest(r, http.MethodPut, "/appointments/"+appointment.ID.String()+"/status", `{"status":"completed","paid":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var got models.Appointment
	if err := db.First(&got, "id = ?", appointment.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.AppointmentCompleted || !got.Paid {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestConfirmCancelledAppointmentRejected(t *testing.T) {
	db := setupTestDB(t)
	r := appointmentRouter(db)
	appointment := bookAppointment(t, db, r)

	w := performRequest(r, http.MethodPut, "/appointments/"+appointment.ID.String()+"/status", `{"status":"cancelled"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200 got %d", w.Code)
	}

	w = performRequest(r, http.MethodPut, "/appointments/"+appointment.ID.String()+"/status", `{"status":"confirmed"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", w.Code)
	}

	var got models.Appointment
	if err := db.First(&got, "id = ?", appointment.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.AppointmentCancelled {
		t.Fatalf("status changed to %s", got.Status)
	}
}

func TestAppointmentPriceSnapshot(t *testing.T) {
	db := setupTestDB(t)
	r := appointmentRouter(db)
	appointment := bookAppointment(t, db, r)

	// Raise the catalog price after booking
	if err := db.Model(&models.Service{}).Where("id = ?", appointment.ServiceID).
		Update("price", 40.00).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	var got models.Appointment
	if err := db.First(&got, "id = ?", appointment.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Price != 25.00 {
		t.Fatalf("expected snapshotted price 25.00 got %.2f", got.Price)
	}
}

func TestDeleteAppointmentFromAnyState(t *testing.T) {
	db := setupTestDB(t)
	r := appointmentRouter(db)
	appointment := bookAppointment(t, db, r)

	w := performRequest(r, http.MethodPut, "/appointments/"+appointment.ID.String()+"/status", `{"status":"cancelled"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200 got %d", w.Code)
	}

	w = performRequest(r, http.MethodDelete, "/appointments/"+appointment.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}

	var count int64
	db.Model(&models.Appointment{}).Where("id = ?", appointment.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected hard delete, row still present")
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	db := setupTestDB(t)
	r := appointmentRouter(db)
	bookAppointment(t, db, r)

	w := performRequest(r, http.MethodGet, "/appointments?date=2026-09-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var list []models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment got %d", len(list))
	}

	w = performRequest(r, http.MethodGet, "/appointments?date=2026-09-16", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list got %d", len(list))
	}
}
