package estimate_price

// MetricsRecorder интерфейс для метрик расчётов
type MetricsRecorder interface {
	ObserveEstimate(complexity, material string, total int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
