package domain

import "time"

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Subscribe bool
}

// BookingRequest сохранённая заявка на консультацию
type BookingRequest struct {
	ID        int64
	Reference string
	Form      BookingForm
	CreatedAt time.Time
}

// ContactRequest сохранённое обращение из формы обратной связи
type ContactRequest struct {
	ID        int64
	Reference string
	Message   ContactMessage
	CreatedAt time.Time
}
