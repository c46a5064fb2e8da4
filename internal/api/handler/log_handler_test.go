package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type stubDispatcher struct {
	enqueued []ports.MaintenanceLogInput
}

func (d *stubDispatcher) Enqueue(in ports.MaintenanceLogInput) {
	d.enqueued = append(d.enqueued, in)
}

func (d *stubDispatcher) EnqueueBatch(ins []ports.MaintenanceLogInput) {
	d.enqueued = append(d.enqueued, ins...)
}

type stubLogService struct {
	logs []domain.MaintenanceLog
}

func (s *stubLogService) Process(ctx context.Context, in ports.MaintenanceLogInput) error {
	return nil
}

func (s *stubLogService) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error) {
	return s.logs, nil
}

func TestLogHandler_Receive_Accepted(t *testing.T) {
	e := newEcho()
	dispatcher := &stubDispatcher{}
	handler := NewLogHandler(dispatcher, &stubLogService{})

	body := strings.NewReader(`{"equipment_id":"eq1","action":"oil change","timestamp":1756400000}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/logs", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued entry, got %d", len(dispatcher.enqueued))
	}
	if got := dispatcher.enqueued[0]; got.EquipmentID != "eq1" || got.Action != "oil change" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestLogHandler_Receive_MissingFields(t *testing.T) {
	e := newEcho()
	dispatcher := &stubDispatcher{}
	handler := NewLogHandler(dispatcher, &stubLogService{})

	body := strings.NewReader(`{"equipment_id":"eq1"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/logs", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Receive(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatal("invalid entry must not be enqueued")
	}
}

func TestLogHandler_ReceiveBatch_Accepted(t *testing.T) {
	e := newEcho()
	dispatcher := &stubDispatcher{}
	handler := NewLogHandler(dispatcher, &stubLogService{})

	body := strings.NewReader(`[
		{"equipment_id":"eq1","action":"oil change","timestamp":1756400000},
		{"equipment_id":"eq2","action":"filter swap","timestamp":1756400100}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/v1/logs/batch", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 2 {
		t.Fatalf("expected 2 enqueued entries, got %d", len(dispatcher.enqueued))
	}
}

func TestLogHandler_ReceiveBatch_Empty(t *testing.T) {
	e := newEcho()
	handler := NewLogHandler(&stubDispatcher{}, &stubLogService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/logs/batch", strings.NewReader(`[]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveBatch(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLogHandler_ReceiveBatch_RejectsWholeBatchOnBadEntry(t *testing.T) {
	e := newEcho()
	dispatcher := &stubDispatcher{}
	handler := NewLogHandler(dispatcher, &stubLogService{})

	body := strings.NewReader(`[
		{"equipment_id":"eq1","action":"oil change","timestamp":1756400000},
		{"equipment_id":"","action":"","timestamp":0}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/v1/logs/batch", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveBatch(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatal("no entry may be enqueued when the batch is rejected")
	}
}
