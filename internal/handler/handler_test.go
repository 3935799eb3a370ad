package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/CarBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCarSvc, *hmocks.MockAvailabilitySvc, *hmocks.MockRentalSvc, *hmocks.MockCustomerSvc, http.Handler) {
	t.Helper()
	carSvc := hmocks.NewMockCarSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	rentalSvc := hmocks.NewMockRentalSvc(t)
	customerSvc := hmocks.NewMockCustomerSvc(t)

	h := NewHandler(carSvc, availabilitySvc, rentalSvc, customerSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/cars", h.CreateCar)
		api.GET("/cars", h.ListCars)
		api.GET("/cars/available", h.ListAvailableCars)
		api.GET("/cars/:id", h.GetCar)
		api.POST("/cars/:id/maintenance", h.ScheduleMaintenance)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id", h.UpdateReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/complete", h.CompleteReservation)
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id/reservations", h.GetCustomerReservations)
	}

	return carSvc, availabilitySvc, rentalSvc, customerSvc, r
}

func testInterval(t *testing.T, start, end string) domain.Interval {
	t.Helper()
	s, err := time.Parse(dto.DateLayout, start)
	require.NoError(t, err)
	e, err := time.Parse(dto.DateLayout, end)
	require.NoError(t, err)
	interval, err := domain.NewInterval(s, e)
	require.NoError(t, err)
	return interval
}

// --- Cars ---

func TestHandler_CreateCar_Success(t *testing.T) {
	carSvc, _, _, _, r := setupRouter(t)

	car := &domain.Car{
		ID:        uuid.New().String(),
		Type:      "sedan",
		Model:     "Camry",
		DailyRate: 50,
		Status:    domain.CarStatusAvailable,
		CreatedAt: time.Now(),
	}

	carSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(car, nil)

	body, _ := json.Marshal(dto.CreateCarRequest{Type: "sedan", Model: "Camry", DailyRate: 50})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Camry", resp.Model)
	assert.Equal(t, "available", resp.Status)
}

func TestHandler_CreateCar_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"type":"sedan"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCar_NotFound(t *testing.T) {
	carSvc, _, _, _, r := setupRouter(t)

	carID := uuid.New().String()
	carSvc.EXPECT().GetByID(mock.Anything, carID).Return(nil, domain.ErrCarNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+carID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCar_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableCars_Success(t *testing.T) {
	_, availabilitySvc, _, _, r := setupRouter(t)

	interval := testInterval(t, "2026-09-10", "2026-09-15")
	cars := []*domain.Car{
		{ID: uuid.New().String(), Type: "sedan", Model: "Camry", DailyRate: 50, Status: domain.CarStatusAvailable, CreatedAt: time.Now()},
	}

	availabilitySvc.EXPECT().ListAvailable(mock.Anything, interval, "sedan", "").Return(cars, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/available?start=2026-09-10&end=2026-09-15&type=sedan", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListAvailableCars_BadDates(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/available?start=garbage&end=2026-09-15", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableCars_ReversedRange(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/available?start=2026-09-15&end=2026-09-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ScheduleMaintenance_Conflict(t *testing.T) {
	carSvc, _, _, _, r := setupRouter(t)

	carID := uuid.New().String()
	carSvc.EXPECT().ScheduleMaintenance(mock.Anything, carID, mock.Anything, 3).
		Return(domain.Interval{}, domain.ErrOverlappingMaintenance)

	body, _ := json.Marshal(dto.ScheduleMaintenanceRequest{StartDate: "2026-09-10", DurationDays: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cars/"+carID+"/maintenance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	customerID := uuid.New().String()
	carID := uuid.New().String()
	interval := testInterval(t, "2026-09-10", "2026-09-15")

	res := &domain.Reservation{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		CarID:      carID,
		Period:     interval,
		DailyRate:  50,
		TotalCost:  250,
		Status:     domain.ReservationStatusReserved,
		CreatedAt:  time.Now(),
	}

	rentalSvc.EXPECT().Create(mock.Anything, customerID, carID, interval).Return(res, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: customerID,
		CarID:      carID,
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-15",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp.TotalCost)
	assert.Equal(t, "reserved", resp.Status)
}

func TestHandler_CreateReservation_CarBusy(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	customerID := uuid.New().String()
	carID := uuid.New().String()

	rentalSvc.EXPECT().Create(mock.Anything, customerID, carID, mock.Anything).
		Return(nil, domain.ErrCarNotAvailable)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: customerID,
		CarID:      carID,
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-15",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_ReversedDates(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CustomerID: uuid.New().String(),
		CarID:      uuid.New().String(),
		StartDate:  "2026-09-15",
		EndDate:    "2026-09-10",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateReservation_Success(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	resID := uuid.New().String()
	newCarID := uuid.New().String()
	interval := testInterval(t, "2026-09-10", "2026-09-18")

	res := &domain.Reservation{
		ID:        resID,
		CarID:     newCarID,
		Period:    interval,
		DailyRate: 80,
		TotalCost: 640,
		Status:    domain.ReservationStatusActive,
		CreatedAt: time.Now(),
	}

	rentalSvc.EXPECT().
		Update(mock.Anything, resID, mock.Anything, mock.Anything, newCarID).
		Return(res, nil)

	end := "2026-09-18"
	body, _ := json.Marshal(dto.UpdateReservationRequest{EndDate: &end, CarID: newCarID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+resID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, newCarID, resp.CarID)
}

func TestHandler_UpdateReservation_NotActive(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	resID := uuid.New().String()
	rentalSvc.EXPECT().
		Update(mock.Anything, resID, mock.Anything, mock.Anything, "").
		Return(nil, domain.ErrReservationNotActive)

	end := "2026-09-18"
	body, _ := json.Marshal(dto.UpdateReservationRequest{EndDate: &end})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+resID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	resID := uuid.New().String()
	res := &domain.Reservation{
		ID:        resID,
		Period:    testInterval(t, "2026-09-10", "2026-09-15"),
		Status:    domain.ReservationStatusCancelled,
		CreatedAt: time.Now(),
	}

	rentalSvc.EXPECT().Cancel(mock.Anything, resID).Return(res, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+resID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CompleteReservation_EmptyBody(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	resID := uuid.New().String()
	returned := testInterval(t, "2026-09-14", "2026-09-15").Start
	res := &domain.Reservation{
		ID:               resID,
		Period:           testInterval(t, "2026-09-10", "2026-09-15"),
		Status:           domain.ReservationStatusCompleted,
		ActualReturnDate: &returned,
		CreatedAt:        time.Now(),
	}

	// пустое тело — сервис получает нулевую дату и подставляет сегодня
	rentalSvc.EXPECT().Complete(mock.Anything, resID, time.Time{}).Return(res, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+resID+"/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.ActualReturnDate)
	assert.Equal(t, "2026-09-14", *resp.ActualReturnDate)
}

func TestHandler_CompleteReservation_MalformedBody(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	resID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+resID+"/complete",
		bytes.NewBufferString(`{"actual_return_date":`))
	r.ServeHTTP(w, req)

	// битое тело не должно молча завершать бронь сегодняшним днём
	assert.Equal(t, http.StatusBadRequest, w.Code)
	rentalSvc.AssertNotCalled(t, "Complete")
}

// --- Customers ---

func TestHandler_CreateCustomer_Success(t *testing.T) {
	_, _, _, customerSvc, r := setupRouter(t)

	customer := &domain.Customer{
		ID:        uuid.New().String(),
		FullName:  "Ivan Petrov",
		CreatedAt: time.Now(),
	}

	customerSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(customer, nil)

	body, _ := json.Marshal(dto.CreateCustomerRequest{FullName: "Ivan Petrov"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_GetCustomerReservations_Success(t *testing.T) {
	_, _, rentalSvc, _, r := setupRouter(t)

	customerID := uuid.New().String()
	reservations := []*domain.Reservation{
		{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			Period:     testInterval(t, "2026-09-10", "2026-09-15"),
			Status:     domain.ReservationStatusActive,
			CreatedAt:  time.Now(),
		},
	}

	rentalSvc.EXPECT().ListByCustomer(mock.Anything, customerID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/"+customerID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}
