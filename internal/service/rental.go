package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/locker"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RentalService — оркестратор жизненного цикла броней.
// Критическая секция «проверка доступности + запись» сериализуется
// по id машины, финальная запись дополнительно защищена условной
// вставкой в репозитории (ErrConcurrencyConflict).
type RentalService struct {
	reservationRepo ports.ReservationRepo
	carRepo         ports.CarRepo
	customerRepo    ports.CustomerRepo
	availability    *AvailabilityService
	tx              ports.TxManager
	publisher       ports.EventPublisher
	locks           *locker.KeyedMutex
	logger          logger.Logger
}

func NewRentalService(
	reservationRepo ports.ReservationRepo,
	carRepo ports.CarRepo,
	customerRepo ports.CustomerRepo,
	availability *AvailabilityService,
	tx ports.TxManager,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *RentalService {
	return &RentalService{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		customerRepo:    customerRepo,
		availability:    availability,
		tx:              tx,
		publisher:       publisher,
		locks:           locker.New(),
		logger:          logger,
	}
}

func (s *RentalService) Create(ctx context.Context, customerID, carID string, interval domain.Interval) (*domain.Reservation, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}

	unlock := s.locks.Lock(carID)
	defer unlock()

	res, err := s.tryCreate(ctx, customerID, carID, interval)
	if errors.Is(err, domain.ErrConcurrencyConflict) {
		// гонка на коммите: перепроверяем доступность один раз
		res, err = s.tryCreate(ctx, customerID, carID, interval)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			return nil, domain.ErrCarNotAvailable
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("car_id", carID),
		logger.String("customer_id", customerID),
	)

	return res, nil
}

func (s *RentalService) tryCreate(ctx context.Context, customerID, carID string, interval domain.Interval) (*domain.Reservation, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}

	available, err := s.availability.IsCarAvailable(ctx, car, interval, nil)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, domain.ErrCarNotAvailable
	}

	res := domain.NewReservation(uuid.New().String(), customerID, carID, interval, car.DailyRate)

	// бронь, начинающаяся сегодня или раньше, сразу занимает машину;
	// будущую активирует планировщик в день начала
	startsNow := !interval.Start.After(domain.DateOf(time.Now()))
	if startsNow {
		if err = res.Activate(); err != nil {
			return nil, err
		}
		if err = car.MarkRented(); err != nil {
			return nil, err
		}
	}

	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	if err = uow.Reservations().Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	if startsNow {
		if err = uow.Cars().Update(ctx, car); err != nil {
			return nil, fmt.Errorf("occupy car: %w", err)
		}
	}
	if err = uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publisher.Publish(ctx, res.PullEvents()...)

	return res, nil
}

// Update переносит даты и/или пересаживает бронь на другую машину.
func (s *RentalService) Update(ctx context.Context, id string, newStart, newEnd *time.Time, newCarID string) (*domain.Reservation, error) {
	// первая загрузка только ради id машин для блокировки
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	targetCarID := res.CarID
	if newCarID != "" {
		targetCarID = newCarID
	}

	unlock := s.locks.LockAll(res.CarID, targetCarID)
	defer unlock()

	res, err = s.tryUpdate(ctx, id, targetCarID, newStart, newEnd)
	if errors.Is(err, domain.ErrConcurrencyConflict) {
		res, err = s.tryUpdate(ctx, id, targetCarID, newStart, newEnd)
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			return nil, domain.ErrCarNotAvailable
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation updated",
		logger.String("reservation_id", res.ID),
		logger.String("car_id", res.CarID),
	)

	return res, nil
}

func (s *RentalService) tryUpdate(ctx context.Context, id, targetCarID string, newStart, newEnd *time.Time) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !res.IsActive() {
		return nil, domain.ErrReservationNotActive
	}

	start := res.Period.Start
	end := res.Period.End
	if newStart != nil {
		start = *newStart
	}
	if newEnd != nil {
		end = *newEnd
	}
	interval, err := domain.NewInterval(start, end)
	if err != nil {
		return nil, err
	}

	targetCar, err := s.carRepo.GetByID(ctx, targetCarID)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}

	available, err := s.availability.IsCarAvailable(ctx, targetCar, interval, res)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, domain.ErrCarNotAvailable
	}

	carChanged := targetCarID != res.CarID

	var oldCar *domain.Car
	if carChanged {
		oldCar, err = s.carRepo.GetByID(ctx, res.CarID)
		if err != nil {
			return nil, fmt.Errorf("load old car: %w", err)
		}

		if err = res.ChangeCar(targetCarID, targetCar.DailyRate); err != nil {
			return nil, err
		}
		oldCar.MarkAvailable()
		if err = targetCar.MarkRented(); err != nil {
			return nil, err
		}
	}

	if !interval.Start.Equal(res.Period.Start) || !interval.End.Equal(res.Period.End) {
		if err = res.UpdateDates(interval); err != nil {
			return nil, err
		}
	}

	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	if err = uow.Reservations().Update(ctx, res); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	if carChanged {
		if err = uow.Cars().Update(ctx, oldCar); err != nil {
			return nil, fmt.Errorf("release old car: %w", err)
		}
		if err = uow.Cars().Update(ctx, targetCar); err != nil {
			return nil, fmt.Errorf("occupy new car: %w", err)
		}
	}
	if err = uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	events := res.PullEvents()
	if oldCar != nil {
		events = append(events, oldCar.PullEvents()...)
	}
	s.publisher.Publish(ctx, events...)

	return res, nil
}

// Cancel отменяет активную бронь. Машину освобождает обработчик
// события ReservationCancelled, а не оркестратор.
func (s *RentalService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err = res.Cancel(); err != nil {
		return nil, err
	}

	if err = s.commitReservation(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("car_id", res.CarID),
	)

	return res, nil
}

// Complete завершает аренду; машина освобождается тем же событийным
// путём, что и при отмене.
func (s *RentalService) Complete(ctx context.Context, id string, actualReturn time.Time) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err = res.Complete(actualReturn); err != nil {
		return nil, err
	}

	if err = s.commitReservation(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("reservation completed",
		logger.String("reservation_id", res.ID),
		logger.String("car_id", res.CarID),
	)

	return res, nil
}

func (s *RentalService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *RentalService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByCustomer(ctx, customerID)
}

// ActivateDue активирует ожидающие брони, чья дата начала наступила.
// Вызывается планировщиком; каждая бронь обрабатывается независимо.
func (s *RentalService) ActivateDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	due, err := s.reservationRepo.ListDue(ctx, domain.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("list due: %w", err)
	}

	var activated []*domain.Reservation
	for _, res := range due {
		if err := s.activateOne(ctx, res); err != nil {
			s.logger.Error("failed to activate due reservation",
				logger.String("reservation_id", res.ID),
				logger.String("car_id", res.CarID),
				logger.String("error", err.Error()),
			)
			continue
		}
		activated = append(activated, res)
	}

	return activated, nil
}

func (s *RentalService) activateOne(ctx context.Context, res *domain.Reservation) error {
	unlock := s.locks.Lock(res.CarID)
	defer unlock()

	car, err := s.carRepo.GetByID(ctx, res.CarID)
	if err != nil {
		return fmt.Errorf("load car: %w", err)
	}
	if err = car.MarkRented(); err != nil {
		return err
	}
	if err = res.Activate(); err != nil {
		return err
	}

	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	if err = uow.Reservations().Update(ctx, res); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if err = uow.Cars().Update(ctx, car); err != nil {
		return fmt.Errorf("occupy car: %w", err)
	}
	if err = uow.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.publisher.Publish(ctx, res.PullEvents()...)

	return nil
}

func (s *RentalService) commitReservation(ctx context.Context, res *domain.Reservation) error {
	uow, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer uow.Rollback()

	if err = uow.Reservations().Update(ctx, res); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if err = uow.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.publisher.Publish(ctx, res.PullEvents()...)

	return nil
}
