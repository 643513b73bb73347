package leadservice

import "time"

// Типы заявок
const (
	LeadTypeBooking = "booking"
	LeadTypeContact = "contact"
)

// Lead конверт заявки, отправляемый во внешний сервис
type Lead struct {
	Type        string       `json:"type"`
	Reference   string       `json:"reference"`
	SubmittedAt time.Time    `json:"submitted_at"`
	Booking     *BookingLead `json:"booking,omitempty"`
	Contact     *ContactLead `json:"contact,omitempty"`
}

// BookingLead заявка на консультацию
type BookingLead struct {
	ServiceType     string   `json:"service_type"`
	ServiceCategory string   `json:"service_category,omitempty"`
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Pincode         string   `json:"pincode,omitempty"`
	PreferredDate   string   `json:"preferred_date"`
	PreferredTime   string   `json:"preferred_time"`
	Urgency         string   `json:"urgency"`
	ProjectType     string   `json:"project_type"`
	Area            string   `json:"area,omitempty"`
	Budget          string   `json:"budget,omitempty"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
	ContactMethods  []string `json:"contact_methods"`
	Newsletter      bool     `json:"newsletter"`
}

// ContactLead обращение из формы обратной связи
type ContactLead struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Subscribe bool   `json:"subscribe"`
}

// ErrorResponse модель ошибки от сервиса заявок
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
