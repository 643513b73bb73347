package catalog

import "errors"

var (
	// ErrHeadlineNotFound возвращается, когда заголовок не найден
	ErrHeadlineNotFound = errors.New("headline not found")

	// ErrUnknownCategory возвращается для категории, которой нет в фильтрах
	ErrUnknownCategory = errors.New("unknown category")
)
