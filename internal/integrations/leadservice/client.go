package leadservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего сервиса заявок (CRM webhook)
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
	now        func() time.Time
}

// NewClient создает новый экземпляр клиента
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		now: time.Now,
	}
}

// SubmitBooking отправляет заявку на консультацию
func (c *Client) SubmitBooking(ctx context.Context, form domain.BookingForm) error {
	methods := make([]string, 0, len(domain.ContactMethods))
	for _, m := range form.ContactMethods.List() {
		methods = append(methods, string(m))
	}

	return c.send(ctx, Lead{
		Type: LeadTypeBooking,
		Booking: &BookingLead{
			ServiceType:     form.ServiceType,
			ServiceCategory: form.ServiceCategory,
			FullName:        form.FullName,
			Email:           form.Email,
			Phone:           form.Phone,
			Address:         form.Address,
			City:            form.City,
			Pincode:         form.Pincode,
			PreferredDate:   form.PreferredDate,
			PreferredTime:   form.PreferredTime,
			Urgency:         string(form.Urgency),
			ProjectType:     string(form.ProjectType),
			Area:            form.Area,
			Budget:          form.Budget,
			AdditionalNotes: form.AdditionalNotes,
			ContactMethods:  methods,
			Newsletter:      form.Newsletter,
		},
	})
}

// SubmitContact отправляет обращение из формы обратной связи
func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	return c.send(ctx, Lead{
		Type: LeadTypeContact,
		Contact: &ContactLead{
			Name:      msg.Name,
			Email:     msg.Email,
			Phone:     msg.Phone,
			Subject:   msg.Subject,
			Message:   msg.Message,
			Subscribe: msg.Subscribe,
		},
	})
}

func (c *Client) send(ctx context.Context, lead Lead) error {
	lead.Reference = uuid.NewString()
	lead.SubmittedAt = c.now().UTC()

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("%w: failed to encode lead: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", lead.Reference)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("LeadService: type=%s reference=%s request failed: %v", lead.Type, lead.Reference, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.log.Info("LeadService: type=%s reference=%s accepted", lead.Type, lead.Reference)
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, readError(resp.Body))
	default:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readError(resp.Body))
	}
}

func readError(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
