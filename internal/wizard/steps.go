package wizard

import "github.com/m04kA/SMC-InteriorStudio/internal/domain"

// Step номер шага мастера (1..5)
type Step int

const (
	StepService      Step = iota + 1 // 1
	StepPersonal                     // 2
	StepAppointment                  // 3
	StepProject                      // 4
	StepConfirmation                 // 5
)

const (
	FirstStep  = StepService
	LastStep   = StepConfirmation
	TotalSteps = int(LastStep)
)

// Title возвращает название шага
func (s Step) Title() string {
	if s < FirstStep || s > LastStep {
		return ""
	}
	return domain.StepTitles[s-1]
}

type requirement struct {
	field string
	value func(f *domain.BookingForm) string
}

// requirements обязательные поля для перехода с шага вперёд
var requirements = map[Step][]requirement{
	StepService: {
		{"serviceType", func(f *domain.BookingForm) string { return f.ServiceType }},
	},
	StepPersonal: {
		{"fullName", func(f *domain.BookingForm) string { return f.FullName }},
		{"email", func(f *domain.BookingForm) string { return f.Email }},
		{"phone", func(f *domain.BookingForm) string { return f.Phone }},
		{"address", func(f *domain.BookingForm) string { return f.Address }},
		{"city", func(f *domain.BookingForm) string { return f.City }},
	},
	StepAppointment: {
		{"preferredDate", func(f *domain.BookingForm) string { return f.PreferredDate }},
		{"preferredTime", func(f *domain.BookingForm) string { return f.PreferredTime }},
	},
}

// RequiredFields возвращает имена обязательных полей шага
func RequiredFields(step Step) []string {
	reqs := requirements[step]
	fields := make([]string, len(reqs))
	for i, r := range reqs {
		fields[i] = r.field
	}
	return fields
}

// MissingFields возвращает незаполненные обязательные поля шага.
// Для последнего шага проверяется согласие с условиями.
func MissingFields(step Step, form *domain.BookingForm) []string {
	var missing []string
	for _, r := range requirements[step] {
		if !domain.IsPopulated(r.value(form)) {
			missing = append(missing, r.field)
		}
	}
	if step == StepConfirmation && !form.TermsAccepted {
		missing = append(missing, "termsAccepted")
	}
	return missing
}
