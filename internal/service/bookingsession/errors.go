package bookingsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена, истекла или закрыта
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrSessionLimit возвращается при достижении лимита открытых сессий
	ErrSessionLimit = errors.New("too many open booking sessions")

	// ErrInvalidInput возвращается при некорректных значениях полей формы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStepIncomplete возвращается, когда не заполнены обязательные поля шага
	ErrStepIncomplete = errors.New("required fields are missing")

	// ErrTermsNotAccepted возвращается при отправке без согласия с условиями
	ErrTermsNotAccepted = errors.New("terms must be accepted")

	// ErrNoNextStep возвращается на последнем шаге при попытке перейти дальше
	ErrNoNextStep = errors.New("already at the last step")

	// ErrNoPreviousStep возвращается на первом шаге при попытке вернуться
	ErrNoPreviousStep = errors.New("already at the first step")

	// ErrNotFinalStep возвращается при отправке не с последнего шага
	ErrNotFinalStep = errors.New("booking can only be submitted from the last step")

	// ErrBusy возвращается, пока идёт отправка
	ErrBusy = errors.New("submission in progress")

	// ErrAlreadySubmitted возвращается после успешной отправки до автосброса
	ErrAlreadySubmitted = errors.New("booking already submitted")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
