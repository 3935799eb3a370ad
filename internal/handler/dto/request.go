package dto

// DateLayout — формат дат в API: бронь оперирует календарными днями.
const DateLayout = "2006-01-02"

type CreateCarRequest struct {
	Type      string  `json:"type" binding:"required"`
	Model     string  `json:"model" binding:"required"`
	DailyRate float64 `json:"daily_rate" binding:"required,gt=0"`
}

type ScheduleMaintenanceRequest struct {
	StartDate    string `json:"start_date" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,gt=0"`
}

type CreateReservationRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	CarID      string `json:"car_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type UpdateReservationRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	CarID     string  `json:"car_id" binding:"omitempty,uuid"`
}

type CompleteReservationRequest struct {
	ActualReturnDate string `json:"actual_return_date"`
}

type CreateCustomerRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
