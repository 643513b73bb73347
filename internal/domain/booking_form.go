package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidField возвращается, когда значение поля формы не проходит валидацию
var ErrInvalidField = errors.New("domain: invalid form field")

// Urgency срочность выполнения работ
type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
	UrgencyFlexible Urgency = "flexible"
)

// Urgencies все допустимые значения срочности в порядке отображения
var Urgencies = []Urgency{UrgencyUrgent, UrgencyNormal, UrgencyFlexible}

// IsValid проверяет, что значение входит в перечисление
func (u Urgency) IsValid() bool {
	for _, v := range Urgencies {
		if u == v {
			return true
		}
	}
	return false
}

// ProjectType тип объекта
type ProjectType string

const (
	ProjectResidential ProjectType = "residential"
	ProjectCommercial  ProjectType = "commercial"
	ProjectOffice      ProjectType = "office"
	ProjectRetail      ProjectType = "retail"
	ProjectHospitality ProjectType = "hospitality"
)

// ProjectTypes все допустимые типы объектов в порядке отображения
var ProjectTypes = []ProjectType{
	ProjectResidential,
	ProjectCommercial,
	ProjectOffice,
	ProjectRetail,
	ProjectHospitality,
}

// IsValid проверяет, что значение входит в перечисление
func (p ProjectType) IsValid() bool {
	for _, v := range ProjectTypes {
		if p == v {
			return true
		}
	}
	return false
}

// ContactMethod предпочитаемый способ связи
type ContactMethod string

const (
	ContactPhone    ContactMethod = "phone"
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
	ContactSMS      ContactMethod = "sms"
)

// ContactMethods все способы связи в каноническом порядке
var ContactMethods = []ContactMethod{ContactPhone, ContactWhatsApp, ContactEmail, ContactSMS}

func (m ContactMethod) bit() (ContactMethodSet, bool) {
	for i, v := range ContactMethods {
		if m == v {
			return 1 << i, true
		}
	}
	return 0, false
}

// IsValid проверяет, что значение входит в перечисление
func (m ContactMethod) IsValid() bool {
	_, ok := m.bit()
	return ok
}

// ContactMethodSet множество способов связи (битовая маска по ContactMethods)
type ContactMethodSet uint8

// NewContactMethodSet собирает множество из списка, неизвестные значения отбрасываются
func NewContactMethodSet(methods ...ContactMethod) ContactMethodSet {
	var s ContactMethodSet
	for _, m := range methods {
		if b, ok := m.bit(); ok {
			s |= b
		}
	}
	return s
}

// Has проверяет наличие способа связи в множестве
func (s ContactMethodSet) Has(m ContactMethod) bool {
	b, ok := m.bit()
	return ok && s&b != 0
}

// Toggle добавляет способ связи, если его нет, иначе убирает.
// Двойной вызов возвращает множество в исходное состояние.
func (s ContactMethodSet) Toggle(m ContactMethod) (ContactMethodSet, error) {
	b, ok := m.bit()
	if !ok {
		return s, fmt.Errorf("%w: unknown contact method %q", ErrInvalidField, m)
	}
	return s ^ b, nil
}

// List возвращает способы связи в каноническом порядке
func (s ContactMethodSet) List() []ContactMethod {
	list := make([]ContactMethod, 0, len(ContactMethods))
	for _, m := range ContactMethods {
		if s.Has(m) {
			list = append(list, m)
		}
	}
	return list
}

// BookingForm состояние формы записи на консультацию
type BookingForm struct {
	// Шаг 1: выбор услуги
	ServiceType     string
	ServiceCategory string

	// Шаг 2: личные данные
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	Pincode  string

	// Шаг 3: дата и время
	PreferredDate string // YYYY-MM-DD
	PreferredTime string // HH:MM
	Urgency       Urgency

	// Шаг 4: детали проекта
	ProjectType     ProjectType
	Area            string // необязательное число, кв. футы
	Budget          string // необязательное число
	AdditionalNotes string

	// Шаг 5: предпочтения связи
	ContactMethods ContactMethodSet
	Newsletter     bool
	TermsAccepted  bool
}

// NewBookingForm возвращает пустую форму со значениями по умолчанию
func NewBookingForm() BookingForm {
	return BookingForm{
		Urgency:        UrgencyNormal,
		ProjectType:    ProjectResidential,
		ContactMethods: NewContactMethodSet(ContactPhone),
		Newsletter:     true,
	}
}

// FormPatch частичное обновление формы. nil означает "не менять".
type FormPatch struct {
	ServiceType     *string
	ServiceCategory *string
	FullName        *string
	Email           *string
	Phone           *string
	Address         *string
	City            *string
	Pincode         *string
	PreferredDate   *string
	PreferredTime   *string
	Urgency         *Urgency
	ProjectType     *ProjectType
	Area            *string
	Budget          *string
	AdditionalNotes *string
	ContactMethods  *[]ContactMethod
	Newsletter      *bool
	TermsAccepted   *bool
}

// IsEmpty возвращает true, если патч ничего не меняет
func (p FormPatch) IsEmpty() bool {
	return p == FormPatch{}
}

// Apply применяет патч к копии формы и возвращает её.
// При ошибке валидации исходная форма не меняется.
func (f BookingForm) Apply(p FormPatch) (BookingForm, error) {
	next := f

	texts := []struct {
		name  string
		src   *string
		dst   *string
		limit int
	}{
		{"serviceType", p.ServiceType, &next.ServiceType, MaxFieldLength},
		{"serviceCategory", p.ServiceCategory, &next.ServiceCategory, MaxFieldLength},
		{"fullName", p.FullName, &next.FullName, MaxFieldLength},
		{"email", p.Email, &next.Email, MaxFieldLength},
		{"phone", p.Phone, &next.Phone, MaxFieldLength},
		{"address", p.Address, &next.Address, MaxFieldLength},
		{"city", p.City, &next.City, MaxFieldLength},
		{"pincode", p.Pincode, &next.Pincode, MaxFieldLength},
		{"additionalNotes", p.AdditionalNotes, &next.AdditionalNotes, MaxNotesLength},
	}
	for _, t := range texts {
		if t.src == nil {
			continue
		}
		if len(*t.src) > t.limit {
			return f, fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidField, t.name, t.limit)
		}
		*t.dst = *t.src
	}

	if p.PreferredDate != nil {
		if err := validateOptionalTime("preferredDate", *p.PreferredDate, DateFormat); err != nil {
			return f, err
		}
		next.PreferredDate = *p.PreferredDate
	}

	if p.PreferredTime != nil {
		if err := validateOptionalTime("preferredTime", *p.PreferredTime, TimeFormat); err != nil {
			return f, err
		}
		next.PreferredTime = *p.PreferredTime
	}

	if p.Urgency != nil {
		if !p.Urgency.IsValid() {
			return f, fmt.Errorf("%w: unknown urgency %q", ErrInvalidField, *p.Urgency)
		}
		next.Urgency = *p.Urgency
	}

	if p.ProjectType != nil {
		if !p.ProjectType.IsValid() {
			return f, fmt.Errorf("%w: unknown project type %q", ErrInvalidField, *p.ProjectType)
		}
		next.ProjectType = *p.ProjectType
	}

	if p.Area != nil {
		if err := validateOptionalNumber("area", *p.Area); err != nil {
			return f, err
		}
		next.Area = *p.Area
	}

	if p.Budget != nil {
		if err := validateOptionalNumber("budget", *p.Budget); err != nil {
			return f, err
		}
		next.Budget = *p.Budget
	}

	if p.ContactMethods != nil {
		for _, m := range *p.ContactMethods {
			if !m.IsValid() {
				return f, fmt.Errorf("%w: unknown contact method %q", ErrInvalidField, m)
			}
		}
		next.ContactMethods = NewContactMethodSet(*p.ContactMethods...)
	}

	if p.Newsletter != nil {
		next.Newsletter = *p.Newsletter
	}

	if p.TermsAccepted != nil {
		next.TermsAccepted = *p.TermsAccepted
	}

	return next, nil
}

// IsPopulated проверяет, что строковое поле заполнено (не пусто после обрезки пробелов)
func IsPopulated(value string) bool {
	return strings.TrimSpace(value) != ""
}

func validateOptionalTime(field, value, layout string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(layout, value); err != nil {
		return fmt.Errorf("%w: %s must match %s", ErrInvalidField, field, layout)
	}
	return nil
}

func validateOptionalNumber(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidField, field)
	}
	return nil
}
