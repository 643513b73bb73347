package bookingsession

import "github.com/m04kA/SMC-InteriorStudio/internal/wizard"

// SessionRepository хранилище живых мастеров
type SessionRepository interface {
	Save(id string, w *wizard.Wizard) error
	Get(id string) (*wizard.Wizard, error)
	Delete(id string) error
	EvictExpired() int
	Len() int
	CloseAll() int
}

// MetricsRecorder метрики мастера
type MetricsRecorder interface {
	ObserveTransition(action, result string)
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
