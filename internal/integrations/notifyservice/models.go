package notifyservice

// BookingConfirmedEvent уведомление об успешном бронировании
type BookingConfirmedEvent struct {
	AppointmentID int64   `json:"appointmentId"`
	ClientID      int64   `json:"clientId"`
	SalonID       int64   `json:"salonId"`
	ServiceName   string  `json:"serviceName"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	Price         float64 `json:"price"`
}
