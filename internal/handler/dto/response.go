package dto

import (
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CarResponse struct {
	ID                 string             `json:"id"`
	Type               string             `json:"type"`
	Model              string             `json:"model"`
	DailyRate          float64            `json:"daily_rate"`
	Status             string             `json:"status"`
	MaintenanceWindows []IntervalResponse `json:"maintenance_windows"`
	CreatedAt          string             `json:"created_at"`
}

type ReservationResponse struct {
	ID               string           `json:"id"`
	CustomerID       string           `json:"customer_id"`
	CarID            string           `json:"car_id"`
	Period           IntervalResponse `json:"period"`
	DailyRate        float64          `json:"daily_rate"`
	TotalCost        float64          `json:"total_cost"`
	Status           string           `json:"status"`
	ActualReturnDate *string          `json:"actual_return_date,omitempty"`
	CreatedAt        string           `json:"created_at"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToIntervalResponse(i domain.Interval) IntervalResponse {
	return IntervalResponse{
		Start: i.Start.Format(DateLayout),
		End:   i.End.Format(DateLayout),
	}
}

func ToCarResponse(c *domain.Car) CarResponse {
	windows := make([]IntervalResponse, 0, len(c.MaintenanceWindows))
	for _, w := range c.MaintenanceWindows {
		windows = append(windows, ToIntervalResponse(w))
	}

	return CarResponse{
		ID:                 c.ID,
		Type:               c.Type,
		Model:              c.Model,
		DailyRate:          c.DailyRate,
		Status:             string(c.Status),
		MaintenanceWindows: windows,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		CarID:      r.CarID,
		Period:     ToIntervalResponse(r.Period),
		DailyRate:  r.DailyRate,
		TotalCost:  r.TotalCost,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.ActualReturnDate != nil {
		d := r.ActualReturnDate.Format(DateLayout)
		resp.ActualReturnDate = &d
	}
	return resp
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
