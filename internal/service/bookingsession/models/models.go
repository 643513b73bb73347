package models

import (
	"time"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	"github.com/m04kA/SMC-InteriorStudio/internal/wizard"
)

// Request модели

// CreateSessionRequest запрос на открытие мастера (предзаполнение из ?service=&category=)
type CreateSessionRequest struct {
	ServiceType     *string `json:"serviceType,omitempty"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
}

// UpdateFormRequest частичное обновление формы
type UpdateFormRequest struct {
	ServiceType     *string   `json:"serviceType,omitempty"`
	ServiceCategory *string   `json:"serviceCategory,omitempty"`
	FullName        *string   `json:"fullName,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	City            *string   `json:"city,omitempty"`
	Pincode         *string   `json:"pincode,omitempty"`
	PreferredDate   *string   `json:"preferredDate,omitempty"`
	PreferredTime   *string   `json:"preferredTime,omitempty"`
	Urgency         *string   `json:"urgency,omitempty"`
	ProjectType     *string   `json:"projectType,omitempty"`
	Area            *string   `json:"area,omitempty"`
	Budget          *string   `json:"budget,omitempty"`
	AdditionalNotes *string   `json:"additionalNotes,omitempty"`
	ContactMethods  *[]string `json:"contactMethods,omitempty"`
	Newsletter      *bool     `json:"newsletter,omitempty"`
	TermsAccepted   *bool     `json:"termsAccepted,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain.FormPatch
func (r *UpdateFormRequest) ToDomainPatch() domain.FormPatch {
	patch := domain.FormPatch{
		ServiceType:     r.ServiceType,
		ServiceCategory: r.ServiceCategory,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		City:            r.City,
		Pincode:         r.Pincode,
		PreferredDate:   r.PreferredDate,
		PreferredTime:   r.PreferredTime,
		Area:            r.Area,
		Budget:          r.Budget,
		AdditionalNotes: r.AdditionalNotes,
		Newsletter:      r.Newsletter,
		TermsAccepted:   r.TermsAccepted,
	}

	if r.Urgency != nil {
		u := domain.Urgency(*r.Urgency)
		patch.Urgency = &u
	}
	if r.ProjectType != nil {
		p := domain.ProjectType(*r.ProjectType)
		patch.ProjectType = &p
	}
	if r.ContactMethods != nil {
		methods := make([]domain.ContactMethod, len(*r.ContactMethods))
		for i, m := range *r.ContactMethods {
			methods[i] = domain.ContactMethod(m)
		}
		patch.ContactMethods = &methods
	}

	return patch
}

// Response модели

// FormResponse форма записи
type FormResponse struct {
	ServiceType     string   `json:"serviceType"`
	ServiceCategory string   `json:"serviceCategory"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Pincode         string   `json:"pincode"`
	PreferredDate   string   `json:"preferredDate"`
	PreferredTime   string   `json:"preferredTime"`
	Urgency         string   `json:"urgency"`
	ProjectType     string   `json:"projectType"`
	Area            string   `json:"area"`
	Budget          string   `json:"budget"`
	AdditionalNotes string   `json:"additionalNotes"`
	ContactMethods  []string `json:"contactMethods"`
	Newsletter      bool     `json:"newsletter"`
	TermsAccepted   bool     `json:"termsAccepted"`
}

// SessionResponse снимок состояния мастера
type SessionResponse struct {
	ID            string       `json:"id"`
	Step          int          `json:"step"`
	TotalSteps    int          `json:"totalSteps"`
	StepTitle     string       `json:"stepTitle"`
	Phase         string       `json:"phase"`
	Loading       bool         `json:"loading"`
	Success       bool         `json:"success"`
	Error         string       `json:"error,omitempty"`
	Form          FormResponse `json:"form"`
	MissingFields []string     `json:"missingFields"`
	CanContinue   bool         `json:"canContinue"`
	CanSubmit     bool         `json:"canSubmit"`
	SubmittedAt   *time.Time   `json:"submittedAt,omitempty"`
	ResetAt       *time.Time   `json:"resetAt,omitempty"`
}

// FromWizardState конвертирует снимок мастера в ответ
func FromWizardState(id string, s wizard.State) *SessionResponse {
	resp := &SessionResponse{
		ID:            id,
		Step:          int(s.Step),
		TotalSteps:    wizard.TotalSteps,
		StepTitle:     s.Step.Title(),
		Phase:         string(s.Phase),
		Loading:       s.Loading,
		Success:       s.Success,
		Error:         s.Error,
		Form:          FromDomainForm(s.Form),
		MissingFields: s.MissingFields,
		CanContinue:   s.CanContinue,
		CanSubmit:     s.CanSubmit,
	}
	if resp.MissingFields == nil {
		resp.MissingFields = []string{}
	}
	if !s.SubmittedAt.IsZero() {
		submittedAt := s.SubmittedAt
		resp.SubmittedAt = &submittedAt
	}
	if !s.ResetAt.IsZero() {
		resetAt := s.ResetAt
		resp.ResetAt = &resetAt
	}
	return resp
}

// FromDomainForm конвертирует domain.BookingForm в ответ
func FromDomainForm(f domain.BookingForm) FormResponse {
	methods := make([]string, 0, len(domain.ContactMethods))
	for _, m := range f.ContactMethods.List() {
		methods = append(methods, string(m))
	}

	return FormResponse{
		ServiceType:     f.ServiceType,
		ServiceCategory: f.ServiceCategory,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Address:         f.Address,
		City:            f.City,
		Pincode:         f.Pincode,
		PreferredDate:   f.PreferredDate,
		PreferredTime:   f.PreferredTime,
		Urgency:         string(f.Urgency),
		ProjectType:     string(f.ProjectType),
		Area:            f.Area,
		Budget:          f.Budget,
		AdditionalNotes: f.AdditionalNotes,
		ContactMethods:  methods,
		Newsletter:      f.Newsletter,
		TermsAccepted:   f.TermsAccepted,
	}
}
