package create_booking_session

import (
	"net/url"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
)

// CreateBookingSessionRequest необязательное тело запроса
type CreateBookingSessionRequest struct {
	ServiceType     *string `json:"serviceType,omitempty"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
}

// ToServiceRequest объединяет тело и query (?service=&category=), тело приоритетнее
func (r *CreateBookingSessionRequest) ToServiceRequest(query url.Values) *models.CreateSessionRequest {
	req := &models.CreateSessionRequest{
		ServiceType:     r.ServiceType,
		ServiceCategory: r.ServiceCategory,
	}

	if req.ServiceType == nil && query.Has("service") {
		v := query.Get("service")
		req.ServiceType = &v
	}
	if req.ServiceCategory == nil && query.Has("category") {
		v := query.Get("category")
		req.ServiceCategory = &v
	}

	return req
}
