package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusReserved  ReservationStatus = "reserved"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// BlockingStatuses — статусы, занимающие календарь машины.
// Отменённая бронь интервал не держит.
var BlockingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusReserved,
	ReservationStatusConfirmed,
	ReservationStatusActive,
	ReservationStatusCompleted,
}

// PendingStatuses — статусы до активации.
var PendingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusReserved,
	ReservationStatusConfirmed,
}

type Reservation struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	CarID      string            `json:"car_id"`
	Period     Interval          `json:"period"`
	DailyRate  float64           `json:"daily_rate"`
	TotalCost  float64           `json:"total_cost"`
	Status     ReservationStatus `json:"status"`
	// ActualReturnDate заполняется при завершении аренды.
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	events []Event
}

// NewReservation создаёт бронь со ставкой машины на момент создания.
// Ставка фиксируется: последующее изменение тарифа машины на цену не влияет.
func NewReservation(id, customerID, carID string, period Interval, dailyRate float64) *Reservation {
	now := time.Now().UTC()
	r := &Reservation{
		ID:         id,
		CustomerID: customerID,
		CarID:      carID,
		Period:     period,
		DailyRate:  dailyRate,
		TotalCost:  dailyRate * float64(period.DurationDays()),
		Status:     ReservationStatusReserved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.events = append(r.events, ReservationCreated{
		ReservationID: id,
		CarID:         carID,
		CustomerID:    customerID,
		Period:        period,
		TotalCost:     r.TotalCost,
		At:            now,
	})
	return r
}

func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusActive
}

func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationStatusCompleted || r.Status == ReservationStatusCancelled
}

func (r *Reservation) Activate() error {
	switch r.Status {
	case ReservationStatusPending, ReservationStatusReserved, ReservationStatusConfirmed:
		r.Status = ReservationStatusActive
		r.touch()
		return nil
	default:
		return fmt.Errorf("%w: cannot activate reservation in status %q", ErrInvalidStateTransition, r.Status)
	}
}

func (r *Reservation) UpdateDates(period Interval) error {
	if !r.IsActive() {
		return ErrReservationNotActive
	}

	r.Period = period
	r.TotalCost = r.DailyRate * float64(period.DurationDays())
	r.touch()
	r.events = append(r.events, ReservationPeriodChanged{
		ReservationID: r.ID,
		CarID:         r.CarID,
		Period:        period,
		TotalCost:     r.TotalCost,
		At:            time.Now().UTC(),
	})
	return nil
}

func (r *Reservation) ChangeCar(newCarID string, newDailyRate float64) error {
	if !r.IsActive() {
		return ErrReservationNotActive
	}

	oldCarID := r.CarID
	r.CarID = newCarID
	r.DailyRate = newDailyRate
	r.TotalCost = newDailyRate * float64(r.Period.DurationDays())
	r.touch()
	r.events = append(r.events, ReservationCarChanged{
		ReservationID: r.ID,
		OldCarID:      oldCarID,
		NewCarID:      newCarID,
		At:            time.Now().UTC(),
	})
	return nil
}

func (r *Reservation) Cancel() error {
	if !r.IsActive() {
		return ErrReservationNotActive
	}

	r.Status = ReservationStatusCancelled
	r.touch()
	r.events = append(r.events, ReservationCancelled{
		ReservationID: r.ID,
		CarID:         r.CarID,
		CustomerID:    r.CustomerID,
		At:            time.Now().UTC(),
	})
	return nil
}

// Complete завершает аренду. Пустая дата возврата — сегодня (UTC).
func (r *Reservation) Complete(actualReturn time.Time) error {
	if !r.IsActive() {
		return ErrReservationNotActive
	}

	if actualReturn.IsZero() {
		actualReturn = time.Now()
	}
	returnDate := DateOf(actualReturn)

	r.Status = ReservationStatusCompleted
	r.ActualReturnDate = &returnDate
	r.touch()
	r.events = append(r.events, ReservationCompleted{
		ReservationID:    r.ID,
		CarID:            r.CarID,
		CustomerID:       r.CustomerID,
		ActualReturnDate: returnDate,
		At:               time.Now().UTC(),
	})
	return nil
}

// PullEvents отдаёт накопленные события ровно один раз.
func (r *Reservation) PullEvents() []Event {
	events := r.events
	r.events = nil
	return events
}

func (r *Reservation) touch() {
	r.UpdatedAt = time.Now().UTC()
}
