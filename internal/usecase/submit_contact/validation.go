package submit_contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// emailPattern пробельными считает и \v, и пробелы Unicode (NBSP, BOM, разделители строк)
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}@]+@[^\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}@]+\.[^\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}@]+$`)

// validateRequest проверяет поля формы и собирает все ошибки сразу
func validateRequest(req *Request) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	} else if len(req.Name) > domain.MaxFieldLength {
		fields["name"] = fmt.Sprintf("Name must be at most %d characters", domain.MaxFieldLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) || len(req.Email) > domain.MaxFieldLength {
		fields["email"] = "Please enter a valid email"
	}

	if len(req.Phone) > domain.MaxFieldLength {
		fields["phone"] = fmt.Sprintf("Phone must be at most %d characters", domain.MaxFieldLength)
	}

	if strings.TrimSpace(req.Subject) == "" {
		fields["subject"] = "Subject is required"
	} else if len(req.Subject) > domain.MaxFieldLength {
		fields["subject"] = fmt.Sprintf("Subject must be at most %d characters", domain.MaxFieldLength)
	}

	switch n := utf8.RuneCountInString(req.Message); {
	case strings.TrimSpace(req.Message) == "":
		fields["message"] = "Message is required"
	case n < domain.MinContactMessageLen:
		fields["message"] = fmt.Sprintf("Message must be at least %d characters", domain.MinContactMessageLen)
	case n > domain.MaxContactMessageLen:
		fields["message"] = fmt.Sprintf("Message must be at most %d characters", domain.MaxContactMessageLen)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
