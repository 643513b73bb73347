package submit_contact

import (
	"time"

	submitContact "github.com/m04kA/SMC-InteriorStudio/internal/usecase/submit_contact"
)

// ContactMessageRequest HTTP request model
type ContactMessageRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Subscribe *bool  `json:"subscribe,omitempty"`
}

// ContactMessageResponse HTTP response model
type ContactMessageResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactMessageRequest) ToUseCaseRequest() *submitContact.Request {
	return &submitContact.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		Subscribe: r.Subscribe,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitContact.Response) *ContactMessageResponse {
	return &ContactMessageResponse{
		Success:     resp.Success,
		Message:     msgSuccess,
		SubmittedAt: resp.SubmittedAt.Format(time.RFC3339),
	}
}
