package domain

import "time"

// Тайминги мастера бронирования по умолчанию
const (
	DefaultSubmitLatency = 2000 * time.Millisecond
	DefaultResetDelay    = 5000 * time.Millisecond
)

// Границы калькулятора стоимости (совпадают с границами слайдера на сайте)
const (
	MinArea         = 50
	MaxArea         = 1000
	AreaStep        = 10
	BaseRatePerSqFt = 150
	LightingAddon   = 5000
)

// Ограничения бизнес-валидации
const (
	MaxFieldLength       = 200
	MaxNotesLength       = 2000
	MinContactMessageLen = 10
	MaxContactMessageLen = 5000
)

// Параметры подбора ближайших дат для записи
const (
	AvailableDatesCount  = 5
	AvailableDatesWindow = 14 // дней вперёд, начиная с завтрашнего
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
