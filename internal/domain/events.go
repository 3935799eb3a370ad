package domain

import "time"

// Event — неизменяемый факт об изменении агрегата.
// Агрегаты копят события, сервис публикует их после успешного коммита.
type Event interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

const (
	EventReservationCreated       = "reservation.created"
	EventReservationCancelled     = "reservation.cancelled"
	EventReservationCompleted     = "reservation.completed"
	EventReservationCarChanged    = "reservation.car_changed"
	EventReservationPeriodChanged = "reservation.period_changed"
	EventCarReleased              = "car.released"
)

type ReservationCreated struct {
	ReservationID string
	CarID         string
	CustomerID    string
	Period        Interval
	TotalCost     float64
	At            time.Time
}

func (e ReservationCreated) EventName() string     { return EventReservationCreated }
func (e ReservationCreated) AggregateID() string   { return e.ReservationID }
func (e ReservationCreated) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ReservationID string
	CarID         string
	CustomerID    string
	At            time.Time
}

func (e ReservationCancelled) EventName() string     { return EventReservationCancelled }
func (e ReservationCancelled) AggregateID() string   { return e.ReservationID }
func (e ReservationCancelled) OccurredAt() time.Time { return e.At }

type ReservationCompleted struct {
	ReservationID    string
	CarID            string
	CustomerID       string
	ActualReturnDate time.Time
	At               time.Time
}

func (e ReservationCompleted) EventName() string     { return EventReservationCompleted }
func (e ReservationCompleted) AggregateID() string   { return e.ReservationID }
func (e ReservationCompleted) OccurredAt() time.Time { return e.At }

type ReservationCarChanged struct {
	ReservationID string
	OldCarID      string
	NewCarID      string
	At            time.Time
}

func (e ReservationCarChanged) EventName() string     { return EventReservationCarChanged }
func (e ReservationCarChanged) AggregateID() string   { return e.ReservationID }
func (e ReservationCarChanged) OccurredAt() time.Time { return e.At }

type ReservationPeriodChanged struct {
	ReservationID string
	CarID         string
	Period        Interval
	TotalCost     float64
	At            time.Time
}

func (e ReservationPeriodChanged) EventName() string     { return EventReservationPeriodChanged }
func (e ReservationPeriodChanged) AggregateID() string   { return e.ReservationID }
func (e ReservationPeriodChanged) OccurredAt() time.Time { return e.At }

type CarReleased struct {
	CarID string
	At    time.Time
}

func (e CarReleased) EventName() string     { return EventCarReleased }
func (e CarReleased) AggregateID() string   { return e.CarID }
func (e CarReleased) OccurredAt() time.Time { return e.At }
