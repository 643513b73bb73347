package submit_contact

import "time"

// MsgSubmitFailed сообщение для пользователя при неудачной отправке
const MsgSubmitFailed = "Something went wrong. Please try again."

// Request обращение из формы обратной связи
type Request struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Subscribe *bool  `json:"subscribe,omitempty"` // по умолчанию true
}

// Response результат отправки
type Response struct {
	Success     bool      `json:"success"`
	SubmittedAt time.Time `json:"submittedAt"`
}
