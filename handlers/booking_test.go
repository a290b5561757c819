package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"harwin/database/repository"
	"harwin/models"
	"harwin/services/booking"
	"harwin/utils"
)

type fakeNotifier struct {
	sent []models.Booking
	err  error
}

func (f *fakeNotifier) SendStatusUpdate(b models.Booking) error {
	f.sent = append(f.sent, b)
	return f.err
}

// newTestRouter wires the full stack over the in-memory repository, with
// the booking routes registered the same way main does.
func newTestRouter(notifier *fakeNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &booking.DefaultBookingService{
		Repo:         repository.NewMemoryBookingRepo(),
		Notification: notifier,
	}
	h := NewBookingHandler(svc, utils.GetLogger())

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	api := r.Group("/api/bookings")
	api.GET("", h.GetBookingsHandler)
	api.POST("", h.CreateBookingHandler)
	api.PUT("/:id", h.UpdateBookingHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{"subcontractor":"Acme Co","company":"Harwin","deliveryType":"Concrete","email":"a@x.com","date":"2024-05-01","time":"09:00"}`

func TestListBookingsEmpty(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty array, got %d entries", len(got))
	}
}

func TestCreateAndListBooking(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Booking submitted" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	var bookings []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	b := bookings[0]
	if b.Status != models.StatusPending {
		t.Fatalf("expected status Pending, got %q", b.Status)
	}
	if b.Notes != "" {
		t.Fatalf("expected notes defaulted to empty, got %q", b.Notes)
	}
	if b.DeliveryType != "Concrete" {
		t.Fatalf("expected deliveryType Concrete, got %q", b.DeliveryType)
	}
}

func TestCreateBookingSerializesCamelCase(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})
	doJSON(t, r, http.MethodPost, "/api/bookings", createBody)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	body := w.Body.String()
	if !strings.Contains(body, `"deliveryType":"Concrete"`) {
		t.Fatalf("expected camelCase deliveryType in %s", body)
	}
	if strings.Contains(body, "delivery_type") {
		t.Fatalf("snake_case field leaked into response: %s", body)
	}
}

func TestCreateBookingMissingFieldReturns400(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", `{"subcontractor":"Acme Co"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// Nothing should have been inserted.
	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	var bookings []models.Booking
	_ = json.Unmarshal(w.Body.Bytes(), &bookings)
	if len(bookings) != 0 {
		t.Fatalf("rejected create must not insert, got %d bookings", len(bookings))
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newTestRouter(notifier)
	doJSON(t, r, http.MethodPost, "/api/bookings", createBody)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1", `{"status":"Approved"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Booking updated and email sent" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Email != "a@x.com" {
		t.Fatalf("expected one notification to the submitter, got %+v", notifier.sent)
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	var bookings []models.Booking
	_ = json.Unmarshal(w.Body.Bytes(), &bookings)
	if bookings[0].Status != "Approved" {
		t.Fatalf("expected status Approved, got %q", bookings[0].Status)
	}
}

func TestUpdateBookingUnknownIDReturns404(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})

	w := doJSON(t, r, http.MethodPut, "/api/bookings/99", `{"status":"Approved"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Not found"}` {
		t.Fatalf("unexpected body %s", body)
	}

	// A failed update must not create a record.
	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	var bookings []models.Booking
	_ = json.Unmarshal(w.Body.Bytes(), &bookings)
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
}

func TestUpdateBookingNonIntegerIDReturns400(t *testing.T) {
	r := newTestRouter(&fakeNotifier{})

	w := doJSON(t, r, http.MethodPut, "/api/bookings/abc", `{"status":"Approved"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateBookingMailFailureStillReports200(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("relay unreachable")}
	r := newTestRouter(notifier)
	doJSON(t, r, http.MethodPost, "/api/bookings", createBody)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1", `{"status":"Rejected"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite mail failure, got %d", w.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Booking updated and email sent" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings", "")
	var bookings []models.Booking
	_ = json.Unmarshal(w.Body.Bytes(), &bookings)
	if bookings[0].Status != "Rejected" {
		t.Fatalf("status change must not roll back, got %q", bookings[0].Status)
	}
}
