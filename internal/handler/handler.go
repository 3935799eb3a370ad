package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CarSvc interface {
	Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	ScheduleMaintenance(ctx context.Context, carID string, start time.Time, durationDays int) (domain.Interval, error)
}

type AvailabilitySvc interface {
	ListAvailable(ctx context.Context, interval domain.Interval, typeFilter, modelFilter string) ([]*domain.Car, error)
}

type RentalSvc interface {
	Create(ctx context.Context, customerID, carID string, interval domain.Interval) (*domain.Reservation, error)
	Update(ctx context.Context, id string, newStart, newEnd *time.Time, newCarID string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Complete(ctx context.Context, id string, actualReturn time.Time) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error)
}

type CustomerSvc interface {
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

type Handler struct {
	carService      CarSvc
	availability    AvailabilitySvc
	rentalService   RentalSvc
	customerService CustomerSvc
}

func NewHandler(carService CarSvc, availability AvailabilitySvc, rentalService RentalSvc, customerService CustomerSvc) *Handler {
	return &Handler{
		carService:      carService,
		availability:    availability,
		rentalService:   rentalService,
		customerService: customerService,
	}
}

// Cars

func (h *Handler) CreateCar(c *ginext.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	car, err := h.carService.Create(c.Request.Context(), domain.CreateCarInput{
		Type:      req.Type,
		Model:     req.Model,
		DailyRate: req.DailyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

func (h *Handler) GetCar(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *Handler) ListCars(c *ginext.Context) {
	cars, err := h.carService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

// ListAvailableCars — GET /api/cars/available?start=...&end=...&type=...&model=...
func (h *Handler) ListAvailableCars(c *ginext.Context) {
	start, err := time.Parse(dto.DateLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dto.DateLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end date, expected YYYY-MM-DD"})
		return
	}

	interval, err := domain.NewInterval(start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	cars, err := h.availability.ListAvailable(c.Request.Context(), interval, c.Query("type"), c.Query("model"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ScheduleMaintenance(c *ginext.Context) {
	carID := c.Param("id")
	if _, err := uuid.Parse(carID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid car id"})
		return
	}

	var req dto.ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}

	window, err := h.carService.ScheduleMaintenance(c.Request.Context(), carID, start, req.DurationDays)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIntervalResponse(window))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	interval, err := domain.NewInterval(start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.rentalService.Create(c.Request.Context(), req.CustomerID, req.CarID, interval)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.rentalService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var newStart, newEnd *time.Time
	if req.StartDate != nil {
		t, err := time.Parse(dto.DateLayout, *req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		newStart = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse(dto.DateLayout, *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		newEnd = &t
	}

	res, err := h.rentalService.Update(c.Request.Context(), id, newStart, newEnd, req.CarID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.rentalService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CompleteReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	// тело необязательно: пустое завершение = возврат сегодня,
	// но непустое тело обязано быть корректным JSON
	var req dto.CompleteReservationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	var actualReturn time.Time
	if req.ActualReturnDate != "" {
		t, err := time.Parse(dto.DateLayout, req.ActualReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid actual_return_date, expected YYYY-MM-DD"})
			return
		}
		actualReturn = t
	}

	res, err := h.rentalService.Complete(c.Request.Context(), id, actualReturn)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// Customers

func (h *Handler) CreateCustomer(c *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), domain.CreateCustomerInput{
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *Handler) ListCustomers(c *ginext.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, dto.ToCustomerResponse(customer))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCustomerReservations(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	reservations, err := h.rentalService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCarNotAvailable),
		errors.Is(err, domain.ErrOverlappingMaintenance),
		errors.Is(err, domain.ErrReservationNotActive),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
