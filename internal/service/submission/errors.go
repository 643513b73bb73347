package submission

import "errors"

var (
	// ErrStoreBooking возвращается при ошибке сохранения заявки
	ErrStoreBooking = errors.New("submission: failed to store booking request")

	// ErrStoreContact возвращается при ошибке сохранения обращения
	ErrStoreContact = errors.New("submission: failed to store contact request")
)
