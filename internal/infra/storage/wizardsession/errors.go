package wizardsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizardsession.repository: session not found")

	// ErrSessionExists возвращается при повторном сохранении с тем же ID
	ErrSessionExists = errors.New("wizardsession.repository: session already exists")

	// ErrTooManySessions возвращается при достижении лимита сессий
	ErrTooManySessions = errors.New("wizardsession.repository: session limit reached")
)
