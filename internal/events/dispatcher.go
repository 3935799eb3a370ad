package events

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Handler — внутрипроцессный обработчик доменных событий.
// Обработчики обязаны быть идемпотентными: доставка at-least-once.
type Handler interface {
	EventNames() []string
	Handle(ctx context.Context, event domain.Event) error
}

// Dispatcher — реестр обработчиков по имени события.
// Новые типы событий добавляются регистрацией, без central switch.
type Dispatcher struct {
	handlers map[string][]Handler
	logger   logger.Logger
}

func NewDispatcher(logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (d *Dispatcher) Register(h Handler) {
	for _, name := range h.EventNames() {
		d.handlers[name] = append(d.handlers[name], h)
	}
}

// Publish синхронно доставляет события обработчикам. Ошибка обработчика
// логируется и не прерывает ни остальных обработчиков, ни вызывающего:
// коммит уже состоялся.
func (d *Dispatcher) Publish(ctx context.Context, events ...domain.Event) {
	for _, event := range events {
		for _, h := range d.handlers[event.EventName()] {
			if err := h.Handle(ctx, event); err != nil {
				d.logger.Error("event handler failed",
					logger.String("event", event.EventName()),
					logger.String("aggregate_id", event.AggregateID()),
					logger.String("error", err.Error()),
				)
			}
		}
	}
}
