package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

// EventPublisher доставляет доменные события внутрипроцессным обработчикам.
// Вызывается после успешного коммита; обработчики обязаны быть идемпотентными.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event)
}
