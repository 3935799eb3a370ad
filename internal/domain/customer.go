package domain

import "time"

type Customer struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateCustomerInput struct {
	FullName       string
	TelegramChatID *int64
}

type CreateCarInput struct {
	Type      string
	Model     string
	DailyRate float64
}
