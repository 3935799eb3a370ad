package domain

import (
	"fmt"
	"time"
)

type CarStatus string

const (
	CarStatusAvailable       CarStatus = "available"
	CarStatusReserved        CarStatus = "reserved"
	CarStatusRented          CarStatus = "rented"
	CarStatusInMaintenance   CarStatus = "in_maintenance"
	CarStatusPendingCleaning CarStatus = "pending_cleaning"
	CarStatusInactive        CarStatus = "inactive"
)

type Car struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	Model              string     `json:"model"`
	DailyRate          float64    `json:"daily_rate"`
	Status             CarStatus  `json:"status"`
	MaintenanceWindows []Interval `json:"maintenance_windows"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	events []Event
}

// ScheduleMaintenance добавляет окно обслуживания.
// Окна одной машины не могут пересекаться.
func (c *Car) ScheduleMaintenance(start time.Time, durationDays int) (Interval, error) {
	if c.Status == CarStatusRented {
		return Interval{}, fmt.Errorf("%w: rented car must be released before maintenance", ErrInvalidStateTransition)
	}

	window, err := NewInterval(start, start.AddDate(0, 0, durationDays))
	if err != nil {
		return Interval{}, err
	}

	for _, w := range c.MaintenanceWindows {
		if w.Overlaps(window) {
			return Interval{}, ErrOverlappingMaintenance
		}
	}

	c.MaintenanceWindows = append(c.MaintenanceWindows, window)
	return window, nil
}

func (c *Car) MarkRented() error {
	if c.Status != CarStatusAvailable {
		return fmt.Errorf("%w: cannot rent car in status %q", ErrInvalidStateTransition, c.Status)
	}
	c.Status = CarStatusRented
	return nil
}

// MarkAvailable идемпотентен: повторный вызов на свободной машине — no-op.
func (c *Car) MarkAvailable() {
	if c.Status == CarStatusAvailable {
		return
	}
	c.Status = CarStatusAvailable
	c.events = append(c.events, CarReleased{CarID: c.ID, At: time.Now().UTC()})
}

func (c *Car) MarkInMaintenance() error {
	if c.Status == CarStatusRented {
		return fmt.Errorf("%w: rented car must be released before maintenance", ErrInvalidStateTransition)
	}
	c.Status = CarStatusInMaintenance
	return nil
}

func (c *Car) MarkInactive() error {
	if c.Status == CarStatusRented {
		return fmt.Errorf("%w: rented car cannot be deactivated", ErrInvalidStateTransition)
	}
	c.Status = CarStatusInactive
	return nil
}

func (c *Car) IsInMaintenanceDuring(interval Interval) bool {
	for _, w := range c.MaintenanceWindows {
		if w.Overlaps(interval) {
			return true
		}
	}
	return false
}

// MaintenanceEndedBy сообщает, закончились ли все окна обслуживания к moment.
func (c *Car) MaintenanceEndedBy(moment time.Time) bool {
	moment = DateOf(moment)
	for _, w := range c.MaintenanceWindows {
		if w.End.After(moment) {
			return false
		}
	}
	return true
}

// PullEvents отдаёт накопленные события ровно один раз.
func (c *Car) PullEvents() []Event {
	events := c.events
	c.events = nil
	return events
}
