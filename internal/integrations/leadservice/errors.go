package leadservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("leadservice client: internal error")

	// ErrRejected возвращается, когда сервис заявок отклонил данные (4xx)
	ErrRejected = errors.New("leadservice client: lead rejected")

	// ErrUnavailable возвращается, когда сервис заявок недоступен (5xx, таймаут, сеть)
	ErrUnavailable = errors.New("leadservice client: service unavailable")
)
