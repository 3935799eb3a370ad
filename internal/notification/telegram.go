package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, customer *domain.Customer, e domain.ReservationCreated) {
	text := fmt.Sprintf(
		"*Бронь оформлена!*\n\n"+"Период: %s — %s\n"+"Стоимость: %.2f",
		e.Period.Start.Format(dateLayout),
		e.Period.End.Format(dateLayout),
		e.TotalCost,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, customer *domain.Customer, e domain.ReservationCancelled) {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\n"+"Номер брони: %s",
		e.ReservationID,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCompleted(ctx context.Context, customer *domain.Customer, e domain.ReservationCompleted) {
	text := fmt.Sprintf(
		"*Аренда завершена*\n\n"+"Дата возврата: %s\n"+"Спасибо, что выбрали нас!",
		e.ActualReturnDate.Format(dateLayout),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
