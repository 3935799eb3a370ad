package domain

import (
	"fmt"
	"time"
)

// Interval — полуоткрытый диапазон дат [Start, End).
// Бронь, заканчивающаяся в день D, и бронь, начинающаяся в день D,
// соседние, а не конфликтующие.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterval(start, end time.Time) (Interval, error) {
	start = DateOf(start)
	end = DateOf(end)

	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}

	return Interval{Start: start, End: end}, nil
}

func (i Interval) Overlaps(other Interval) bool {
	return i.OverlapsRange(other.Start, other.End)
}

func (i Interval) OverlapsRange(start, end time.Time) bool {
	return i.Start.Before(end) && i.End.After(start)
}

func (i Interval) DurationDays() int {
	return int(i.End.Sub(i.Start).Hours() / 24)
}

func (i Interval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}

// DateOf обрезает время до начала суток в UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
